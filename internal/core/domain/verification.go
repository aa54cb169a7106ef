package domain

// VerificationResult reports whether an artifact is present in the private repository.
type VerificationResult struct {
	Artifact ResolvedArtifact
	Exists   bool
}

// Missing filters the results down to artifacts absent from the repository,
// preserving their order.
func Missing(results []VerificationResult) []ResolvedArtifact {
	var missing []ResolvedArtifact
	for _, r := range results {
		if !r.Exists {
			missing = append(missing, r.Artifact)
		}
	}
	return missing
}

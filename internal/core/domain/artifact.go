package domain

// HashAlgorithmSHA256 is the only digest algorithm reported by the registry.
const HashAlgorithmSHA256 = "SHA-256"

// Hash is a content digest of a published gem archive.
type Hash struct {
	// Algorithm is the digest algorithm, always HashAlgorithmSHA256.
	Algorithm string

	// Content is the hex-encoded digest.
	Content string
}

// ResolvedArtifact is a pinned source enriched with registry metadata.
type ResolvedArtifact struct {
	Name        string
	Version     string
	Author      string
	Description string
	Hash        Hash
	PackageURL  string

	// License is nil when the registry reported no license.
	License *License
}

// Licenses returns the artifact license as a list of zero or one entries.
func (a ResolvedArtifact) Licenses() []License {
	if a.License == nil {
		return nil
	}
	return []License{*a.License}
}

// PackageURL builds the purl of a gem: "pkg:gem/<name>@<version>", followed by
// "?platform=<platform>" when a platform was pinned. Components are used as
// written in the lockfile, without percent-encoding.
func PackageURL(name, version, platform string) string {
	purl := "pkg:gem/" + name + "@" + version
	if platform != "" {
		purl += "?platform=" + platform
	}
	return purl
}

// NewResolvedArtifact assembles an artifact for the given source.
func NewResolvedArtifact(src PinnedSource, author, description, sha string, license *License) ResolvedArtifact {
	return ResolvedArtifact{
		Name:        src.Name,
		Version:     src.Version,
		Author:      author,
		Description: description,
		Hash:        Hash{Algorithm: HashAlgorithmSHA256, Content: sha},
		PackageURL:  PackageURL(src.Name, src.Version, src.Platform),
		License:     license,
	}
}

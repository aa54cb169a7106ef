package rubygems

// genericPlatform is the platform rubygems reports for pure-Ruby releases.
const genericPlatform = "ruby"

// versionDescriptor is one element of the /api/v1/versions/<name>.json listing.
type versionDescriptor struct {
	Authors  string   `json:"authors"`
	Number   string   `json:"number"`
	Platform string   `json:"platform"`
	Summary  string   `json:"summary"`
	SHA      string   `json:"sha"`
	Licenses []string `json:"licenses"`
}

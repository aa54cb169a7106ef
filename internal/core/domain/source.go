package domain

// PinnedSource is a single gem entry read from the GEM section of a lockfile.
type PinnedSource struct {
	// Name is the gem name (e.g., "nokogiri").
	Name string

	// Version is the exact pinned version (e.g., "1.16.5").
	Version string

	// Platform is the optional platform suffix (e.g., "arm64-darwin").
	// It is empty for platform-independent gems.
	Platform string
}

// HasPlatform reports whether the source was pinned to a specific platform.
func (s PinnedSource) HasPlatform() bool {
	return s.Platform != ""
}

// String returns the lockfile notation of the source, e.g. "nokogiri (1.16.5-arm64-darwin)".
func (s PinnedSource) String() string {
	if s.HasPlatform() {
		return s.Name + " (" + s.Version + "-" + s.Platform + ")"
	}
	return s.Name + " (" + s.Version + ")"
}

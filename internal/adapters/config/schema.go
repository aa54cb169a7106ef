package config

// File is the on-disk layout of gembom.yaml and its TOML equivalent.
// Pointer fields distinguish an omitted key from an explicit zero.
type File struct {
	Registry   RegistrySection   `yaml:"registry" toml:"registry"`
	Repository RepositorySection `yaml:"repository" toml:"repository"`
	Output     OutputSection     `yaml:"output" toml:"output"`
}

// StageSection holds the keys shared by both pipeline stages.
type StageSection struct {
	URL         *string `yaml:"url" toml:"url"`
	Concurrency *int    `yaml:"concurrency" toml:"concurrency"`
	MaxRetries  *int    `yaml:"max_retries" toml:"max_retries"`
	BackoffMin  *string `yaml:"backoff_min" toml:"backoff_min"`
	BackoffMax  *string `yaml:"backoff_max" toml:"backoff_max"`
}

// RegistrySection configures resolution.
type RegistrySection struct {
	StageSection     `yaml:",inline"`
	PlatformFallback *bool `yaml:"platform_fallback" toml:"platform_fallback"`
}

// RepositorySection configures verification.
type RepositorySection struct {
	StageSection `yaml:",inline"`
	Username     *string `yaml:"username" toml:"username"`
	Password     *string `yaml:"password" toml:"password"`
}

// OutputSection configures the generated document.
type OutputSection struct {
	Format *string `yaml:"format" toml:"format"`
}

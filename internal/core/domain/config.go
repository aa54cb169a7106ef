package domain

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Format is the serialization of the generated document.
type Format string

const (
	// FormatJSON selects the CycloneDX JSON serialization.
	FormatJSON Format = "json"
	// FormatXML selects the CycloneDX XML serialization.
	FormatXML Format = "xml"
)

// ParseFormat normalizes a user-provided format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatXML:
		return f, nil
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", s)
	}
}

// Extension returns the file extension used for documents of this format.
func (f Format) Extension() string {
	return string(f)
}

const (
	// DefaultRegistryURL is the public gem registry.
	DefaultRegistryURL = "https://rubygems.org"
	// DefaultRegistryConcurrency is the in-flight ceiling of the resolution stage.
	DefaultRegistryConcurrency = 50
	// DefaultRegistryMaxRetries is the retry count of the resolution stage.
	DefaultRegistryMaxRetries = 3
	// DefaultRepositoryConcurrency is the in-flight ceiling of the verification stage.
	DefaultRepositoryConcurrency = 20
	// DefaultRepositoryMaxRetries is the retry count of the verification stage.
	DefaultRepositoryMaxRetries = 5
	// DefaultBackoffMin is the first retry delay.
	DefaultBackoffMin = time.Second
	// DefaultBackoffMax caps the exponential retry delay.
	DefaultBackoffMax = 30 * time.Second
)

// StageConfig holds the concurrency and retry settings of one pipeline stage.
type StageConfig struct {
	URL         string
	Concurrency int
	MaxRetries  int
	BackoffMin  time.Duration
	BackoffMax  time.Duration
}

// Attempts returns the attempt budget: the first try plus every retry.
func (s StageConfig) Attempts() int {
	return s.MaxRetries + 1
}

// RegistryConfig configures resolution against the public registry.
type RegistryConfig struct {
	StageConfig

	// PlatformFallback accepts the generic "ruby" platform release when the
	// pinned platform is not published.
	PlatformFallback bool
}

// RepositoryConfig configures verification against a private repository.
// An empty URL disables verification.
type RepositoryConfig struct {
	StageConfig

	Username string
	Password string
}

// Enabled reports whether a repository was configured.
func (r RepositoryConfig) Enabled() bool {
	return r.URL != ""
}

// Config is the effective configuration of a run.
type Config struct {
	// InputDir is the directory containing the lockfile.
	InputDir string
	// OutputDir is the directory receiving the document. Defaults to InputDir.
	OutputDir string
	Format    Format
	Verbose   bool

	Registry   RegistryConfig
	Repository RepositoryConfig
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		InputDir: ".",
		Format:   FormatJSON,
		Registry: RegistryConfig{
			StageConfig: StageConfig{
				URL:         DefaultRegistryURL,
				Concurrency: DefaultRegistryConcurrency,
				MaxRetries:  DefaultRegistryMaxRetries,
				BackoffMin:  DefaultBackoffMin,
				BackoffMax:  DefaultBackoffMax,
			},
		},
		Repository: RepositoryConfig{
			StageConfig: StageConfig{
				Concurrency: DefaultRepositoryConcurrency,
				MaxRetries:  DefaultRepositoryMaxRetries,
				BackoffMin:  DefaultBackoffMin,
				BackoffMax:  DefaultBackoffMax,
			},
		},
	}
}

// LockfilePath returns the path of the lockfile to read.
func (c Config) LockfilePath() string {
	return filepath.Join(c.InputDir, LockfileName)
}

// OutputPath returns the path of the document to write.
func (c Config) OutputPath() string {
	dir := c.OutputDir
	if dir == "" {
		dir = c.InputDir
	}
	return filepath.Join(dir, OutputBaseName+"."+c.Format.Extension())
}

// Validate checks the configuration before any network activity takes place.
func (c Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return zerr.Wrap(err, ErrInvalidConfig.Error())
	}
	if err := c.Registry.validate("registry"); err != nil {
		return err
	}
	if _, err := parseAbsoluteURL(c.Registry.URL); err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidConfig.Error()), "field", "registry.url")
	}
	if !c.Repository.Enabled() {
		return nil
	}
	if err := c.Repository.validate("repository"); err != nil {
		return err
	}
	if _, err := parseAbsoluteURL(c.Repository.URL); err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidConfig.Error()), "field", "repository.url")
	}
	return nil
}

func (s StageConfig) validate(stage string) error {
	switch {
	case s.Concurrency < 1:
		return zerr.With(zerr.With(ErrInvalidConfig, "field", stage+".concurrency"), "value", s.Concurrency)
	case s.MaxRetries < 0:
		return zerr.With(zerr.With(ErrInvalidConfig, "field", stage+".max_retries"), "value", s.MaxRetries)
	case s.BackoffMin < 0 || s.BackoffMax < s.BackoffMin:
		err := zerr.With(ErrInvalidConfig, "field", stage+".backoff")
		err = zerr.With(err, "min", s.BackoffMin.String())
		return zerr.With(err, "max", s.BackoffMax.String())
	}
	return nil
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, zerr.With(zerr.New("url must use http or https"), "url", raw)
	}
	if u.Host == "" {
		return nil, zerr.With(zerr.New("url must include a host"), "url", raw)
	}
	return u, nil
}

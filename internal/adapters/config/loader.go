// Package config provides the configuration loader for gembom.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted after the config file.
const (
	EnvRegistryURL        = domain.EnvPrefix + "REGISTRY_URL"
	EnvRepositoryURL      = domain.EnvPrefix + "REPOSITORY_URL"
	EnvRepositoryUsername = domain.EnvPrefix + "REPOSITORY_USERNAME"
	EnvRepositoryPassword = domain.EnvPrefix + "REPOSITORY_PASSWORD"
)

// Loader implements ports.ConfigLoader.
// It layers the config file and the environment over domain.DefaultConfig.
type Loader struct {
	Logger ports.Logger

	// Dir is where the default config file and the .env file are looked up.
	Dir string

	// LookupEnv reads the process environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader rooted at the working directory.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log, Dir: ".", LookupEnv: os.LookupEnv}
}

// Load builds the configuration. An empty path selects the default file,
// which may be absent. An explicit path must exist.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(l.Dir, domain.DefaultConfigFile)
	}

	file, err := readFile(path)
	switch {
	case err == nil:
		l.Logger.Debug("loaded config file", "path", path)
		if err := file.apply(&cfg); err != nil {
			return domain.Config{}, zerr.With(err, "path", path)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return domain.Config{}, err
	}

	env, err := l.environment()
	if err != nil {
		return domain.Config{}, err
	}
	env.apply(&cfg)

	return cfg, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigRead.Error()), "path", path)
	}

	var file File
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", path)
	}
	return &file, nil
}

func (f *File) apply(cfg *domain.Config) error {
	if err := f.Registry.StageSection.apply(&cfg.Registry.StageConfig, "registry"); err != nil {
		return err
	}
	if f.Registry.PlatformFallback != nil {
		cfg.Registry.PlatformFallback = *f.Registry.PlatformFallback
	}

	if err := f.Repository.StageSection.apply(&cfg.Repository.StageConfig, "repository"); err != nil {
		return err
	}
	setString(&cfg.Repository.Username, f.Repository.Username)
	setString(&cfg.Repository.Password, f.Repository.Password)

	if f.Output.Format != nil {
		format, err := domain.ParseFormat(*f.Output.Format)
		if err != nil {
			return err
		}
		cfg.Format = format
	}
	return nil
}

func (s StageSection) apply(stage *domain.StageConfig, section string) error {
	setString(&stage.URL, s.URL)
	if s.Concurrency != nil {
		stage.Concurrency = *s.Concurrency
	}
	if s.MaxRetries != nil {
		stage.MaxRetries = *s.MaxRetries
	}
	if err := setDuration(&stage.BackoffMin, s.BackoffMin, section+".backoff_min"); err != nil {
		return err
	}
	return setDuration(&stage.BackoffMax, s.BackoffMax, section+".backoff_max")
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string, key string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "key", key)
	}
	*dst = d
	return nil
}

// environment merges the .env file under the real environment, which wins.
type environment map[string]string

func (l *Loader) environment() (environment, error) {
	env := environment{}

	dotenv := filepath.Join(l.Dir, domain.EnvFile)
	values, err := godotenv.Read(dotenv)
	switch {
	case err == nil:
		l.Logger.Debug("loaded env file", "path", dotenv)
		for k, v := range values {
			env[k] = v
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", dotenv)
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{EnvRegistryURL, EnvRepositoryURL, EnvRepositoryUsername, EnvRepositoryPassword} {
		if v, ok := lookup(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func (e environment) apply(cfg *domain.Config) {
	if v, ok := e[EnvRegistryURL]; ok {
		cfg.Registry.URL = v
	}
	if v, ok := e[EnvRepositoryURL]; ok {
		cfg.Repository.URL = v
	}
	if v, ok := e[EnvRepositoryUsername]; ok {
		cfg.Repository.Username = v
	}
	if v, ok := e[EnvRepositoryPassword]; ok {
		cfg.Repository.Password = v
	}
}

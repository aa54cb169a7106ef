// Package app implements the application layer for gembom.
package app

import (
	"context"
	"errors"

	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
	"go.trai.ch/gembom/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App turns a lockfile into a bill of materials.
type App struct {
	configLoader ports.ConfigLoader
	files        ports.FileStore
	parser       ports.LockfileParser
	registries   ports.RegistryFactory
	repositories ports.RepositoryFactory
	encoder      ports.Encoder
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	files ports.FileStore,
	parser ports.LockfileParser,
	registries ports.RegistryFactory,
	repositories ports.RepositoryFactory,
	encoder ports.Encoder,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		files:        files,
		parser:       parser,
		registries:   registries,
		repositories: repositories,
		encoder:      encoder,
		reporter:     reporter,
		telemetry:    telemetry,
		logger:       log,
	}
}

// RunOptions carries command-line overrides. Zero values leave the loaded
// configuration untouched.
type RunOptions struct {
	ConfigPath            string
	InputDir              string
	OutputDir             string
	Format                string
	Verbose               bool
	RepositoryURL         string
	RegistryConcurrency   *int
	RepositoryConcurrency *int
}

// Run generates the document for the configured lockfile and, when a
// repository is configured, verifies the resolved gems against it.
// Per-gem failures are logged and reported but never returned. A cancelled
// ctx aborts the run without writing or reporting partial results.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Build and validate the effective configuration
	cfg, err := a.configure(opts)
	if err != nil {
		return err
	}

	// 2. Read the lockfile
	content, err := a.files.ReadLockfile(cfg.LockfilePath())
	if err != nil {
		return err
	}
	sources := a.parser.Parse(content)
	a.logger.Debug("parsed lockfile", "path", cfg.LockfilePath(), "gems", len(sources))

	// 3. Build clients before any request is sent
	registry, err := a.registries.NewRegistry(cfg.Registry)
	if err != nil {
		return err
	}
	var repository ports.Repository
	if cfg.Repository.Enabled() {
		if repository, err = a.repositories.NewRepository(cfg.Repository); err != nil {
			return err
		}
	}

	// 4. Resolve
	resolution := pipeline.NewStage(
		pipeline.Config{Name: "resolve", Limit: cfg.Registry.Concurrency, Telemetry: a.telemetry},
		registry.Resolve,
		domain.PinnedSource.String,
	).Run(ctx, sources)
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInterrupted.Error()), "stage", "resolve")
	}
	a.logFailures("failed to resolve gem", resolution.Failures)
	a.reporter.Resolution(resolution)

	// 5. Encode and write
	doc, err := a.encoder.Encode(resolution.Values, cfg.Format)
	if err != nil {
		return err
	}
	path := cfg.OutputPath()
	if err := a.files.WriteDocument(path, doc); err != nil {
		return err
	}
	a.reporter.Written(path)

	// 6. Verify
	if repository == nil {
		return nil
	}
	verification := pipeline.NewStage(
		pipeline.Config{Name: "verify", Limit: cfg.Repository.Concurrency, Telemetry: a.telemetry},
		repository.Verify,
		artifactLabel,
	).Run(ctx, resolution.Values)
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInterrupted.Error()), "stage", "verify")
	}
	a.logFailures("failed to verify gem", verification.Failures)
	a.reporter.Verification(verification)

	return nil
}

func (a *App) configure(opts RunOptions) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, err
	}

	if opts.InputDir != "" {
		cfg.InputDir = opts.InputDir
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Format != "" {
		format, err := domain.ParseFormat(opts.Format)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Format = format
	}
	if opts.RepositoryURL != "" {
		cfg.Repository.URL = opts.RepositoryURL
	}
	if opts.RegistryConcurrency != nil {
		cfg.Registry.Concurrency = *opts.RegistryConcurrency
	}
	if opts.RepositoryConcurrency != nil {
		cfg.Repository.Concurrency = *opts.RepositoryConcurrency
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	if cfg.Verbose {
		a.logger.SetLevel(domain.LogLevelDebug)
	}
	a.logger.Debug("effective configuration",
		"lockfile", cfg.LockfilePath(),
		"output", cfg.OutputPath(),
		"format", string(cfg.Format),
		"registry_url", cfg.Registry.URL,
		"registry_concurrency", cfg.Registry.Concurrency,
		"registry_attempts", cfg.Registry.Attempts(),
		"platform_fallback", cfg.Registry.PlatformFallback,
		"repository_url", cfg.Repository.URL,
		"repository_concurrency", cfg.Repository.Concurrency,
		"repository_attempts", cfg.Repository.Attempts(),
	)
	return cfg, nil
}

// logFailures logs each per-item failure with the gem it belongs to.
func (a *App) logFailures(msg string, failures []error) {
	for _, err := range failures {
		var (
			rerr *domain.ResolutionError
			verr *domain.VerificationError
		)
		switch {
		case errors.As(err, &rerr):
			a.logger.Warn(msg,
				"gem", rerr.Name,
				"version", rerr.Version,
				"platform", rerr.Platform,
				"kind", rerr.Kind.String(),
				"status", rerr.Status,
				"error", err.Error(),
			)
		case errors.As(err, &verr):
			a.logger.Warn(msg,
				"gem", verr.Name,
				"version", verr.Version,
				"kind", verr.Kind.String(),
				"status", verr.Status,
				"error", err.Error(),
			)
		default:
			a.logger.Warn(msg, "error", zerr.Wrap(err, "item not processed").Error())
		}
	}
}

func artifactLabel(a domain.ResolvedArtifact) string {
	return a.Name + " (" + a.Version + ")"
}

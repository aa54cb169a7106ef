package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileNotFound is returned when the lockfile does not exist.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrLockfilePermission is returned when the lockfile cannot be read due to permissions.
	ErrLockfilePermission = zerr.New("permission denied reading lockfile")

	// ErrLockfileRead is returned when the lockfile cannot be read for any other reason.
	ErrLockfileRead = zerr.New("failed to read lockfile")

	// ErrOutputWrite is returned when the generated document cannot be written.
	ErrOutputWrite = zerr.New("failed to write output document")

	// ErrInvalidConfig is returned when the effective configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigRead is returned when an explicitly requested config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file is malformed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrUnsupportedFormat is returned when an unknown output format is requested.
	ErrUnsupportedFormat = zerr.New("unsupported output format")

	// ErrEncodeDocument is returned when the bill of materials cannot be serialized.
	ErrEncodeDocument = zerr.New("failed to encode document")

	// ErrInterrupted is returned when the run is cancelled before a stage completes.
	ErrInterrupted = zerr.New("run interrupted")

	// ErrBuildRegistryClient is returned when the registry client cannot be constructed.
	ErrBuildRegistryClient = zerr.New("failed to build registry client")

	// ErrBuildRepositoryClient is returned when the repository client cannot be constructed.
	ErrBuildRepositoryClient = zerr.New("failed to build repository client")
)

package domain

import "os"

const (
	// LockfileName is the name of the Bundler lockfile inside the input directory.
	LockfileName = "Gemfile.lock"

	// OutputBaseName is the file name, without extension, of the generated document.
	OutputBaseName = "bom"

	// DefaultConfigFile is the config file looked up in the working directory.
	DefaultConfigFile = "gembom.yaml"

	// EnvFile is the dotenv file loaded from the working directory.
	EnvFile = ".env"

	// EnvPrefix prefixes every environment variable read by gembom.
	EnvPrefix = "GEMBOM_"

	// OutputFilePerm is the permission of the generated document.
	OutputFilePerm os.FileMode = 0o644

	// OutputDirPerm is the permission of an output directory created on demand.
	OutputDirPerm os.FileMode = 0o750
)

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gembom/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve the gems of a Gemfile.lock and write bom.json or bom.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			path, _ := flags.GetString("path")
			output, _ := flags.GetString("output")
			format, _ := flags.GetString("format")
			verbose, _ := flags.GetBool("verbose")
			nexusURL, _ := flags.GetString("nexus-url")
			configPath, _ := flags.GetString("config")

			opts := app.RunOptions{
				ConfigPath:    configPath,
				InputDir:      path,
				OutputDir:     output,
				Format:        format,
				Verbose:       verbose,
				RepositoryURL: nexusURL,
			}
			// Only explicit flags override the config file.
			if flags.Changed("registry-concurrency") {
				n, _ := flags.GetInt("registry-concurrency")
				opts.RegistryConcurrency = &n
			}
			if flags.Changed("repository-concurrency") {
				n, _ := flags.GetInt("repository-concurrency")
				opts.RepositoryConcurrency = &n
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("path", "p", "", "Directory containing Gemfile.lock (default: current directory)")
	cmd.Flags().StringP("output", "o", "", "Directory to write the document to (default: the lockfile directory)")
	cmd.Flags().StringP("format", "f", "", "Output format: json or xml (default: json)")
	cmd.Flags().BoolP("verbose", "v", false, "Print the effective parameters and every request attempt")
	cmd.Flags().StringP("nexus-url", "n", "", "Nexus repository URL to verify resolved gems against")
	cmd.Flags().StringP("config", "c", "", "Config file (default: gembom.yaml if present)")
	cmd.Flags().Int("registry-concurrency", 0, "Maximum concurrent registry lookups (default: 50)")
	cmd.Flags().Int("repository-concurrency", 0, "Maximum concurrent repository lookups (default: 20)")
	return cmd
}

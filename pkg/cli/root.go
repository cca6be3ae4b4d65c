package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the blueprint-ci root command with all
// subcommands registered.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "blueprint-ci",
		Short:   "CI checks for Home Assistant blueprint repositories",
		Version: version,
		Long: `blueprint-ci validates the blueprints of a Home Assistant blueprint
repository: YAML syntax and blueprint structure, documentation completeness,
README cross-references, and a simulated blueprint import.

All checks read the fixed repository layout: blueprint YAML files under
'blueprints/', documentation under 'docs/'. Exit code 0 means every checked
file passed; 1 means at least one file failed at least one check.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewDocsCommand())
	rootCmd.AddCommand(NewReadmeCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewAllCommand())

	return rootCmd
}

// Package cli implements the blueprint-ci subcommands: validate, docs,
// readme, import, and all. Each command prints one status line per file per
// check and a final summary line; a command returns an error iff at least
// one checked file failed, which the root command maps to exit code 1.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/home-assistant-community/blueprint-ci/pkg/blueprint"
	"github.com/home-assistant-community/blueprint-ci/pkg/console"
	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/fileutil"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
	"github.com/home-assistant-community/blueprint-ci/pkg/parser"
)

var validateLog = logger.New("cli:validate")

// ValidateConfig holds configuration for validate command execution
type ValidateConfig struct {
	Root   string // repository root; defaults to the working directory
	Strict bool   // additionally validate metadata against the JSON schema
	Watch  bool   // re-run on file changes instead of exiting
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate blueprint YAML syntax and structure",
		Long: `Validate every blueprint YAML file under the blueprints directory.

Checks YAML syntax (tolerating the Home Assistant custom tags !input,
!include, !include_dir_merge_list and !secret) and the blueprint structure:
required metadata fields, domain, input declarations and selectors, and the
trigger/action sections automation blueprints must carry.

Exit code is 0 when every file passes and 1 when at least one fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			watch, _ := cmd.Flags().GetBool("watch")
			return RunValidate(ValidateConfig{Root: ".", Strict: strict, Watch: watch})
		},
	}

	cmd.Flags().Bool("strict", false, "Also validate blueprint metadata against the JSON schema")
	cmd.Flags().Bool("watch", false, "Watch the blueprints directory and re-validate on changes")

	return cmd
}

// RunValidate executes the validate command with the given configuration
func RunValidate(config ValidateConfig) error {
	if config.Watch {
		return runValidateWatch(config)
	}
	return runValidateOnce(config)
}

// runValidateOnce validates every discovered blueprint file sequentially.
// Syntax and I/O errors are caught per file: the file is counted as failed
// and the run continues with the next one.
func runValidateOnce(config ValidateConfig) error {
	root := filepath.Join(config.Root, constants.BlueprintsDir)
	validateLog.Printf("Validating blueprints: root=%s, strict=%v", root, config.Strict)

	files, err := fileutil.FindYAMLFiles(root)
	if err != nil {
		return fmt.Errorf("failed to discover blueprint files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("No blueprint files found under '%s', nothing to validate", root)))
		return nil
	}

	loader := parser.NewTagged()
	passed := 0

	for _, file := range files {
		display := displayPath(config.Root, file)

		doc, err := loader.LoadFile(file)
		if err != nil {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: %v", display, err)))
			continue
		}

		errors := blueprint.Validate(doc)
		if config.Strict {
			schemaErrors, schemaErr := blueprint.ValidateMetadataSchema(doc)
			if schemaErr != nil {
				return fmt.Errorf("schema validation unavailable: %w", schemaErr)
			}
			errors = append(errors, schemaErrors...)
		}

		if len(errors) == 0 {
			fmt.Println(console.FormatSuccessMessage(display))
			passed++
			continue
		}

		fmt.Println(console.FormatErrorMessage(display))
		for _, msg := range errors {
			fmt.Printf("    %s\n", msg)
		}
	}

	fmt.Println(console.FormatCountSummary(passed, len(files), "files passed validation"))

	if passed != len(files) {
		return fmt.Errorf("%d of %d blueprint files failed validation", len(files)-passed, len(files))
	}
	return nil
}

// displayPath renders a file path relative to the repository root for
// status lines, falling back to the full path.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

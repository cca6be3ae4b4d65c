package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/home-assistant-community/blueprint-ci/pkg/console"
	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/fileutil"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
	"github.com/home-assistant-community/blueprint-ci/pkg/stringutil"
)

var readmeLog = logger.New("cli:readme")

// ReadmeConfig holds configuration for readme command execution
type ReadmeConfig struct {
	Root string
}

// NewReadmeCommand creates the readme command
func NewReadmeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "readme",
		Short: "Check that the documentation README links every blueprint",
		Long: `Check that docs/README.md contains a link to the documentation file of
every blueprint, i.e. the literal substring "(<doc-name>.md)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunReadme(ReadmeConfig{Root: "."})
		},
	}
}

// RunReadme executes the readme command with the given configuration
func RunReadme(config ReadmeConfig) error {
	blueprintsRoot := filepath.Join(config.Root, constants.BlueprintsDir)
	readmePath := filepath.Join(config.Root, constants.DocsDir, constants.ReadmeFile)
	readmeLog.Printf("Checking README index: %s", readmePath)

	files, err := fileutil.FindYAMLFiles(blueprintsRoot)
	if err != nil {
		return fmt.Errorf("failed to discover blueprint files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("No blueprint files found under '%s', nothing to check", blueprintsRoot)))
		return nil
	}

	readme, err := os.ReadFile(readmePath)
	if err != nil {
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf("Cannot read %s: %v", readmePath, err)))
		return fmt.Errorf("%d of %d blueprints missing from README index", len(files), len(files))
	}
	index := string(readme)

	passed := 0
	for _, file := range files {
		display := displayPath(config.Root, file)
		relPath, err := filepath.Rel(blueprintsRoot, file)
		if err != nil {
			relPath = filepath.Base(file)
		}

		link := "(" + stringutil.BlueprintToDocFile(relPath) + ")"
		if strings.Contains(index, link) {
			fmt.Println(console.FormatSuccessMessage(display))
			passed++
		} else {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: no README link %s", display, link)))
		}
	}

	fmt.Println(console.FormatCountSummary(passed, len(files), "blueprints indexed in README"))

	if passed != len(files) {
		return fmt.Errorf("%d of %d blueprints missing from README index", len(files)-passed, len(files))
	}
	return nil
}

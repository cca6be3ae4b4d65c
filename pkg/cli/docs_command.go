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

var docsLog = logger.New("cli:docs")

// DocsConfig holds configuration for docs command execution
type DocsConfig struct {
	Root string
}

// NewDocsCommand creates the docs command
func NewDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Check that every blueprint has complete documentation",
		Long: `Check that every blueprint has a documentation file and that it covers
the required sections.

The expected documentation file name is derived from the blueprint path:
path separators become '-' and the YAML extension is stripped, e.g.
blueprints/automation/motion_light.yaml is documented by
docs/automation-motion_light.md. Each documentation file must mention the
sections: ` + strings.Join(constants.DocSectionKeywords, ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDocs(DocsConfig{Root: "."})
		},
	}
}

// RunDocs executes the docs command with the given configuration
func RunDocs(config DocsConfig) error {
	blueprintsRoot := filepath.Join(config.Root, constants.BlueprintsDir)
	docsRoot := filepath.Join(config.Root, constants.DocsDir)
	docsLog.Printf("Checking documentation: blueprints=%s, docs=%s", blueprintsRoot, docsRoot)

	files, err := fileutil.FindYAMLFiles(blueprintsRoot)
	if err != nil {
		return fmt.Errorf("failed to discover blueprint files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("No blueprint files found under '%s', nothing to check", blueprintsRoot)))
		return nil
	}

	passed := 0
	for _, file := range files {
		display := displayPath(config.Root, file)
		relPath, err := filepath.Rel(blueprintsRoot, file)
		if err != nil {
			relPath = filepath.Base(file)
		}

		docFile := stringutil.BlueprintToDocFile(relPath)
		docPath := filepath.Join(docsRoot, docFile)

		if !fileutil.FileExists(docPath) {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: missing documentation file '%s'", display, docFile)))
			continue
		}

		missing, err := missingDocSections(docPath)
		if err != nil {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: %v", display, err)))
			continue
		}
		if len(missing) > 0 {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: documentation '%s' is incomplete", display, docFile)))
			for _, section := range missing {
				fmt.Println("    " + console.FormatWarningMessage(fmt.Sprintf("missing section: %s", section)))
			}
			continue
		}

		fmt.Println(console.FormatSuccessMessage(display))
		passed++
	}

	fmt.Println(console.FormatCountSummary(passed, len(files), "blueprints fully documented"))

	if passed != len(files) {
		return fmt.Errorf("%d of %d blueprints have missing or incomplete documentation", len(files)-passed, len(files))
	}
	return nil
}

// missingDocSections returns the required section keywords absent from the
// documentation file (matched anywhere in its lowercased text).
func missingDocSections(docPath string) ([]string, error) {
	content, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read documentation: %w", err)
	}

	text := strings.ToLower(string(content))
	var missing []string
	for _, keyword := range constants.DocSectionKeywords {
		if !strings.Contains(text, keyword) {
			missing = append(missing, keyword)
		}
	}
	return missing, nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/home-assistant-community/blueprint-ci/pkg/blueprint"
	"github.com/home-assistant-community/blueprint-ci/pkg/console"
	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/fileutil"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
	"github.com/home-assistant-community/blueprint-ci/pkg/parser"
)

var importLog = logger.New("cli:import")

// syntheticConfiguration is the minimal configuration.yaml written into the
// scratch Home Assistant tree. It carries no custom tags, so the strict
// loader parses it.
const syntheticConfiguration = `homeassistant:
  name: Blueprint CI
  unit_system: metric
`

// ImportConfig holds configuration for import command execution
type ImportConfig struct {
	Root string
}

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Simulate importing every blueprint into Home Assistant",
		Long: `Simulate a blueprint import: copy each blueprint into a synthetic Home
Assistant configuration tree in a temporary directory, re-parse it, and
require the re-parsed structure to match the original exactly.

Also runs advisory input checks (missing input names, malformed selectors,
boolean selectors without defaults). Advisory findings are warnings and
never fail the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunImport(ImportConfig{Root: "."})
		},
	}
}

// RunImport executes the import command with the given configuration
func RunImport(config ImportConfig) error {
	blueprintsRoot := filepath.Join(config.Root, constants.BlueprintsDir)
	importLog.Printf("Simulating blueprint imports: root=%s", blueprintsRoot)

	files, err := fileutil.FindYAMLFiles(blueprintsRoot)
	if err != nil {
		return fmt.Errorf("failed to discover blueprint files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("No blueprint files found under '%s', nothing to import", blueprintsRoot)))
		return nil
	}

	scratch, err := os.MkdirTemp("", "blueprint-import-")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(scratch) }()
	importLog.Printf("Scratch configuration tree: %s", scratch)

	if err := writeSyntheticConfig(scratch); err != nil {
		return err
	}

	tagged := parser.NewTagged()
	passed := 0

	for _, file := range files {
		display := displayPath(config.Root, file)

		warnings, err := simulateImport(tagged, scratch, file)
		if err != nil {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: %v", display, err)))
			continue
		}

		fmt.Println(console.FormatSuccessMessage(display))
		for _, warning := range warnings {
			fmt.Println("    " + console.FormatWarningMessage(warning))
		}
		passed++
	}

	fmt.Println(console.FormatCountSummary(passed, len(files), "blueprints imported successfully"))

	if passed != len(files) {
		return fmt.Errorf("%d of %d blueprints failed import simulation", len(files)-passed, len(files))
	}
	return nil
}

// writeSyntheticConfig lays down the minimal Home Assistant configuration
// and verifies it with the strict loader.
func writeSyntheticConfig(scratch string) error {
	configDir := filepath.Join(scratch, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "configuration.yaml")
	if err := os.WriteFile(configPath, []byte(syntheticConfiguration), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration.yaml: %w", err)
	}
	if _, err := parser.NewStrict().LoadFile(configPath); err != nil {
		return fmt.Errorf("synthetic configuration is not parseable: %w", err)
	}
	return nil
}

// simulateImport copies one blueprint into the scratch tree and round-trips
// it: the re-parsed document must be structurally identical to the original
// parse. Returns the advisory input warnings on success.
func simulateImport(loader *parser.Loader, scratch, file string) ([]string, error) {
	original, err := loader.LoadFile(file)
	if err != nil {
		return nil, err
	}

	domain := blueprintDomain(original)
	targetDir := filepath.Join(scratch, "config", constants.BlueprintsDir, domain, "community")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create import directory: %w", err)
	}

	target := filepath.Join(targetDir, filepath.Base(file))
	if err := fileutil.CopyFile(file, target); err != nil {
		return nil, fmt.Errorf("failed to copy blueprint: %w", err)
	}

	imported, err := loader.LoadFile(target)
	if err != nil {
		return nil, fmt.Errorf("imported copy failed to parse: %w", err)
	}

	if !reflect.DeepEqual(original, imported) {
		return nil, fmt.Errorf("imported blueprint does not match the original structure")
	}

	return blueprint.CheckInputs(original), nil
}

// blueprintDomain extracts the declared domain for the import path, falling
// back to automation when it is absent or malformed.
func blueprintDomain(doc any) string {
	if root, ok := doc.(map[string]any); ok {
		if descriptor, ok := root["blueprint"].(map[string]any); ok {
			if domain, ok := descriptor["domain"].(string); ok && domain != "" {
				return domain
			}
		}
	}
	return "automation"
}

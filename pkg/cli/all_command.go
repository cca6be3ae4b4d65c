package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/home-assistant-community/blueprint-ci/pkg/console"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var allLog = logger.New("cli:all")

// NewAllCommand creates the all command
func NewAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every blueprint check",
		Long: `Run validate, docs, readme and import in order.

Every check always runs; exit code is 1 if any of them failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			return RunAll(".", strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Also validate blueprint metadata against the JSON schema")

	return cmd
}

// RunAll runs every check against the given repository root. No check
// aborts the ones after it.
func RunAll(root string, strict bool) error {
	checks := []struct {
		name string
		run  func() error
	}{
		{"validate", func() error { return RunValidate(ValidateConfig{Root: root, Strict: strict}) }},
		{"docs", func() error { return RunDocs(DocsConfig{Root: root}) }},
		{"readme", func() error { return RunReadme(ReadmeConfig{Root: root}) }},
		{"import", func() error { return RunImport(ImportConfig{Root: root}) }},
	}

	var failed []string
	for _, check := range checks {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("== %s ==", check.name)))
		if err := check.run(); err != nil {
			allLog.Printf("Check %s failed: %v", check.name, err)
			failed = append(failed, check.name)
		}
		fmt.Println()
	}

	if len(failed) > 0 {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Checks failed: %s", strings.Join(failed, ", "))))
		return fmt.Errorf("%d of %d checks failed", len(failed), len(checks))
	}

	fmt.Println(console.FormatSuccessMessage("All checks passed"))
	return nil
}

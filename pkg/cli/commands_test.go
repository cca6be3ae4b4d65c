//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBlueprint = `blueprint:
  name: Motion Light
  description: Turn on a light when motion is detected
  domain: automation
  input:
    motion_entity:
      name: Motion Sensor
      selector:
        entity:
          domain: binary_sensor
trigger:
  - platform: state
    entity_id: !input motion_entity
action:
  - service: light.turn_on
`

const invalidBlueprint = `blueprint:
  name: Broken
  domain: vacuum
`

const completeDoc = `# Motion Light

## Overview
Turns on a light.

## Configuration
Pick the motion sensor.

## Setup
Import the blueprint.

## Usage
It just works.

## Troubleshooting
Check the sensor.
`

// writeRepo lays out a repository fixture in a temp dir.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestRunValidatePassing(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
	})
	require.NoError(t, RunValidate(ValidateConfig{Root: root}))
}

func TestRunValidateFailing(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/broken.yaml": invalidBlueprint,
	})
	err := RunValidate(ValidateConfig{Root: root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
}

func TestRunValidateSyntaxErrorDoesNotAbortRun(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/a_broken.yaml": "blueprint: [unclosed\n  name: x",
		"blueprints/automation/b_valid.yaml":  validBlueprint,
	})
	err := RunValidate(ValidateConfig{Root: root})
	require.Error(t, err, "broken file must fail the run")
	assert.Contains(t, err.Error(), "1 of 2", "valid file after the broken one must still be processed")
}

func TestRunValidateMissingBlueprintsDir(t *testing.T) {
	// No blueprints directory: warning, nothing checked, exit success.
	require.NoError(t, RunValidate(ValidateConfig{Root: t.TempDir()}))
}

func TestRunValidateStrictCatchesTypeErrors(t *testing.T) {
	// Structurally fine (all required fields present) but name is not a
	// string; only the schema tier rejects it.
	content := `blueprint:
  name: 123
  description: d
  domain: script
`
	root := writeRepo(t, map[string]string{
		"blueprints/script/odd.yaml": content,
	})
	require.NoError(t, RunValidate(ValidateConfig{Root: root}))
	require.Error(t, RunValidate(ValidateConfig{Root: root, Strict: true}))
}

func TestRunDocsComplete(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
		"docs/automation-motion_light.md":         completeDoc,
	})
	require.NoError(t, RunDocs(DocsConfig{Root: root}))
}

func TestRunDocsMissingFile(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
	})
	err := RunDocs(DocsConfig{Root: root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
}

func TestRunDocsIncompleteSections(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
		"docs/automation-motion_light.md":         "# Motion Light\n\n## Overview\nOnly an overview.\n",
	})
	require.Error(t, RunDocs(DocsConfig{Root: root}))
}

func TestRunReadmeIndexed(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
		"docs/README.md":                          "# Blueprints\n\n- [Motion Light](automation-motion_light.md)\n",
	})
	require.NoError(t, RunReadme(ReadmeConfig{Root: root}))
}

func TestRunReadmeMissingLink(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
		"docs/README.md":                          "# Blueprints\n\nNothing linked here.\n",
	})
	require.Error(t, RunReadme(ReadmeConfig{Root: root}))
}

func TestRunReadmeMissingReadme(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
	})
	require.Error(t, RunReadme(ReadmeConfig{Root: root}))
}

func TestRunImportRoundTrip(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
	})
	require.NoError(t, RunImport(ImportConfig{Root: root}))
}

func TestRunImportAdvisoryWarningsDoNotFail(t *testing.T) {
	// Boolean selector without default: advisory warning only.
	content := `blueprint:
  name: Toggle
  description: d
  domain: script
  input:
    enabled:
      name: Enabled
      selector:
        boolean: {}
`
	root := writeRepo(t, map[string]string{
		"blueprints/script/toggle.yaml": content,
	})
	require.NoError(t, RunImport(ImportConfig{Root: root}))
}

func TestRunImportUnparseableBlueprintFails(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/broken.yaml": "blueprint: [unclosed\n  name: x",
	})
	err := RunImport(ImportConfig{Root: root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
}

func TestRunAllAggregates(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
		"docs/automation-motion_light.md":         completeDoc,
		"docs/README.md":                          "- [Motion Light](automation-motion_light.md)\n",
	})
	require.NoError(t, RunAll(root, false))
}

func TestRunAllReportsFailedChecks(t *testing.T) {
	// Valid blueprint, but no documentation and no README.
	root := writeRepo(t, map[string]string{
		"blueprints/automation/motion_light.yaml": validBlueprint,
	})
	err := RunAll(root, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 4")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCommand("test")
	expected := []string{"validate", "docs", "readme", "import", "all"}
	for _, name := range expected {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %q", name)
	}
}

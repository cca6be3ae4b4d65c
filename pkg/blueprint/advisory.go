package blueprint

import (
	"fmt"
)

// CheckInputs applies the relaxed, advisory input rules used by the import
// simulator. The returned strings are warnings: they never fail a run.
//
// Rules, per input declaration:
//   - a missing 'name' field
//   - a selector that is present but not a single-key mapping
//   - a boolean selector without a 'default' value
func CheckInputs(doc any) []string {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	descriptor, ok := root["blueprint"].(map[string]any)
	if !ok {
		return nil
	}
	inputs, ok := descriptor["input"].(map[string]any)
	if !ok {
		return nil
	}

	var warnings []string
	for _, name := range sortedKeys(inputs) {
		declaration, ok := inputs[name].(map[string]any)
		if !ok {
			continue
		}
		if !hasKey(declaration, "name") {
			warnings = append(warnings, fmt.Sprintf("Input '%s' has no 'name' field", name))
		}
		selector, hasSelector := declaration["selector"]
		if !hasSelector {
			continue
		}
		selectorType, ok := singleSelectorKey(selector)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Input '%s' selector is not a single-key mapping", name))
			continue
		}
		if selectorType == "boolean" && !hasKey(declaration, "default") {
			warnings = append(warnings, fmt.Sprintf("Boolean input '%s' has no default value", name))
		}
	}
	return warnings
}

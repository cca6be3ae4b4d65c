// Package blueprint implements the schema-validation rules for Home
// Assistant blueprint documents: the hard structural rule set used by the
// validate command, the relaxed advisory input checks used by the import
// simulator, and an optional JSON-schema check of blueprint metadata.
package blueprint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/home-assistant-community/blueprint-ci/pkg/constants"
	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var validateLog = logger.New("blueprint:validator")

var validSelectorTypes = buildSelectorTypeSet()

func buildSelectorTypeSet() map[string]bool {
	set := make(map[string]bool, len(constants.ValidSelectorTypes))
	for _, t := range constants.ValidSelectorTypes {
		set[t] = true
	}
	return set
}

// Validate applies the blueprint structure rules to a parsed document and
// returns the ordered list of rule violations. An empty list means the
// document is a valid blueprint. Validate is a pure function of the
// document: no printing, no side effects, identical input yields identical
// output.
//
// Rules are independent of each other except the top-level presence check,
// which short-circuits: a document without a 'blueprint' section has nothing
// further to validate against.
func Validate(doc any) []string {
	root, ok := doc.(map[string]any)
	if !ok || !hasKey(root, "blueprint") {
		return []string{"Missing required 'blueprint' section"}
	}

	var errors []string

	descriptor, ok := root["blueprint"].(map[string]any)
	if !ok {
		// Nothing below is checkable against a non-mapping descriptor.
		return []string{"Blueprint section must be a mapping"}
	}

	for _, field := range constants.RequiredBlueprintFields {
		if !hasKey(descriptor, field) {
			errors = append(errors, fmt.Sprintf("Missing required blueprint field: '%s'", field))
		}
	}

	domain, hasDomain := descriptor["domain"]
	if hasDomain && !slices.Contains(constants.ValidDomains, fmt.Sprint(domain)) {
		errors = append(errors, fmt.Sprintf("Invalid domain: '%v' (must be one of: %s)",
			domain, strings.Join(constants.ValidDomains, ", ")))
	}

	if inputSection, hasInput := descriptor["input"]; hasInput {
		errors = append(errors, validateInputs(inputSection)...)
	}

	if domainStr, ok := domain.(string); ok && domainStr == "automation" {
		for _, field := range constants.RequiredAutomationFields {
			if !hasKey(root, field) {
				errors = append(errors, fmt.Sprintf("Missing required automation field: '%s'", field))
			}
		}
	}

	validateLog.Printf("Validation complete: %d error(s)", len(errors))
	return errors
}

// validateInputs checks the blueprint 'input' section. A failure in one
// input declaration does not stop checking of the others.
func validateInputs(section any) []string {
	inputs, ok := section.(map[string]any)
	if !ok {
		return []string{"Blueprint 'input' section must be a mapping"}
	}

	var errors []string
	for _, name := range sortedKeys(inputs) {
		declaration, ok := inputs[name].(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Input '%s' must be a mapping", name))
			continue
		}
		if !hasKey(declaration, "name") {
			errors = append(errors, fmt.Sprintf("Input '%s' is missing required field: 'name'", name))
		}
		if selector, hasSelector := declaration["selector"]; hasSelector {
			errors = append(errors, validateSelector(name, selector)...)
		}
	}
	return errors
}

// validateSelector checks the selector shape (a mapping with exactly one
// key) and that the single key names a known selector type.
func validateSelector(inputName string, selector any) []string {
	selectorType, ok := singleSelectorKey(selector)
	if !ok {
		return []string{fmt.Sprintf("Input '%s' selector must be a mapping with exactly one key", inputName)}
	}
	if !validSelectorTypes[selectorType] {
		return []string{fmt.Sprintf("Input '%s' has invalid selector type: '%s'", inputName, selectorType)}
	}
	return nil
}

// singleSelectorKey returns the selector type name when the selector is a
// mapping with exactly one key.
func singleSelectorKey(selector any) (string, bool) {
	m, ok := selector.(map[string]any)
	if !ok || len(m) != 1 {
		return "", false
	}
	for key := range m {
		return key, true
	}
	return "", false
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// sortedKeys returns map keys in sorted order so repeated validation of the
// same document yields identical error sequences.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

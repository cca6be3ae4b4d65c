package blueprint

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/home-assistant-community/blueprint-ci/pkg/logger"
)

var schemaLog = logger.New("blueprint:schema")

//go:embed schemas/blueprint.schema.json
var schemaFS embed.FS

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// metadataSchema compiles the embedded blueprint metadata schema once and
// reuses it for every document.
func metadataSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schemas/blueprint.schema.json")
		if err != nil {
			compileSchemaErr = fmt.Errorf("failed to read embedded schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileSchemaErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("blueprint.schema.json", doc); err != nil {
			compileSchemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = compiler.Compile("blueprint.schema.json")
	})
	return compiledSchema, compileSchemaErr
}

// ValidateMetadataSchema validates blueprint metadata against the embedded
// JSON schema (the strict tier layered on top of the structural rules).
// Schema violations come back as error strings for the file; the error
// return is reserved for schema compilation or document conversion failures.
func ValidateMetadataSchema(doc any) ([]string, error) {
	schema, err := metadataSchema()
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so YAML-native value types (int64/uint64
	// scalars) normalize to the number representation the validator expects.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document for schema validation: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode document for schema validation: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		schemaLog.Printf("Schema validation failed: %v", err)
		return flattenSchemaError(err), nil
	}
	return nil, nil
}

// flattenSchemaError converts a jsonschema validation error tree into
// per-line error strings.
func flattenSchemaError(err error) []string {
	var out []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

//go:build !integration

package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMetadataSchemaAcceptsValidBlueprint(t *testing.T) {
	errors, err := ValidateMetadataSchema(validAutomation())
	require.NoError(t, err)
	assert.Empty(t, errors)
}

func TestValidateMetadataSchemaRejectsWrongTypes(t *testing.T) {
	doc := map[string]any{
		"blueprint": map[string]any{
			"name":        123,
			"description": "d",
			"domain":      "automation",
		},
		"trigger": []any{},
		"action":  []any{},
	}
	errors, err := ValidateMetadataSchema(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, errors, "non-string name should fail the schema")
}

func TestValidateMetadataSchemaRejectsUnknownDomain(t *testing.T) {
	doc := map[string]any{
		"blueprint": map[string]any{
			"name":        "n",
			"description": "d",
			"domain":      "sensor",
		},
	}
	errors, err := ValidateMetadataSchema(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, errors)
}

func TestValidateMetadataSchemaRejectsMultiKeySelector(t *testing.T) {
	doc := validAutomation()
	descriptor := doc["blueprint"].(map[string]any)
	descriptor["input"] = map[string]any{
		"foo": map[string]any{
			"name": "Foo",
			"selector": map[string]any{
				"boolean": map[string]any{},
				"text":    map[string]any{},
			},
		},
	}
	errors, err := ValidateMetadataSchema(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, errors)
}

func TestValidateMetadataSchemaReusesCompiledSchema(t *testing.T) {
	for i := 0; i < 3; i++ {
		errors, err := ValidateMetadataSchema(validAutomation())
		require.NoError(t, err)
		assert.Empty(t, errors)
	}
}

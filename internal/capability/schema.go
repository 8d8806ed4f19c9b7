// ABOUTME: JSON Schema rendering for tool descriptors
// ABOUTME: Produces the inputSchema advertised in tools/list
package capability

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema renders the tool's parameters as an object schema.
func (t Tool) InputSchema() *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(t.Params)),
	}

	for _, p := range t.Params {
		prop := &jsonschema.Schema{
			Type:        p.Type,
			Description: p.Description,
		}
		for _, v := range p.Enum {
			prop.Enum = append(prop.Enum, v)
		}
		if p.Default != "" {
			// Marshalling a string cannot fail.
			prop.Default, _ = json.Marshal(p.Default)
		}
		schema.Properties[p.Name] = prop

		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}

	return schema
}

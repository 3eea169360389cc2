package submission

// valueSchema describes one submitted value: a scalar, an array, a
// series object or a table object.
var valueSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"type": []any{"number", "string", "boolean", "null"}},
		map[string]any{"type": "array"},
		map[string]any{"$ref": "#/$defs/series"},
		map[string]any{"$ref": "#/$defs/table"},
	},
}

var numberOrNull = map[string]any{"type": []any{"number", "null"}}

// definition is the submission schema: an object whose every property is
// a value. Names are not constrained here; the problem reports missing and
// unexpected names together as one usage error.
func definition() map[string]any {
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": valueSchema,
		"$defs": map[string]any{
			"series": map[string]any{
				"type":     "object",
				"required": []any{"index", "values"},
				"properties": map[string]any{
					"name":   map[string]any{"type": "string"},
					"index":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"values": map[string]any{"type": "array", "items": numberOrNull},
				},
				"additionalProperties": false,
			},
			"table": map[string]any{
				"type":     "object",
				"required": []any{"index", "columns"},
				"properties": map[string]any{
					"index": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"columns": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "array", "items": numberOrNull},
					},
				},
				"additionalProperties": false,
			},
		},
	}
}

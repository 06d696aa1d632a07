package vision

// BuildExtractionJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// model response must match on the strict path. We pass it to the model as a
// formatting instruction and use it locally to validate.
func BuildExtractionJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"amount":     map[string]any{"type": []string{"number", "string"}},
			"itemName":   map[string]any{"type": "string"},
			"currency":   map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"amount"},
	}
}

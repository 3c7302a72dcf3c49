package verifier

// BuildVerdictJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is passed to the model as a structured-output constraint and
// used locally to validate the sanitized answer.
func BuildVerdictJSONSchema() map[string]any {
	mismatch := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"field":         map[string]any{"type": "string", "minLength": 1},
			"expectedValue": map[string]any{"type": "string"},
			"pdfValue":      map[string]any{"type": "string"},
			"reason":        map[string]any{"type": "string"},
		},
		"required": []string{"field", "expectedValue", "pdfValue"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"isValid":    map[string]any{"type": "boolean"},
			"message":    map[string]any{"type": "string"},
			"mismatches": map[string]any{"type": "array", "items": mismatch},
		},
		"required": []string{"isValid", "mismatches"},
	}
}

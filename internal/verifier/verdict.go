package verifier

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"targetcheck/internal/common"
	"targetcheck/internal/entity"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseVerdict decodes a sanitized verifier answer. Schema validation runs
// first so a missing required key fails the same way as invalid JSON: with
// ErrVerifierParse.
func ParseVerdict(sanitized []byte) (Verdict, error) {
	if err := ValidateJSONAgainstSchema(BuildVerdictJSONSchema(), sanitized); err != nil {
		return Verdict{}, common.NewAppError("VERIFIER_PARSE", "verdict failed schema validation", fmt.Errorf("%w: %w", common.ErrVerifierParse, err))
	}
	var v Verdict
	if err := json.Unmarshal(sanitized, &v); err != nil {
		return Verdict{}, common.NewAppError("VERIFIER_PARSE", "verdict decode failed", fmt.Errorf("%w: %w", common.ErrVerifierParse, err))
	}
	if v.Mismatches == nil {
		v.Mismatches = []entity.FieldMismatch{}
	}
	return v, nil
}

package verifier

import (
	"context"

	"targetcheck/internal/entity"
)

// VerifyRequest carries everything the external verifier needs to read a
// document against its expected record.
type VerifyRequest struct {
	Document string                   // normalized document text
	Expected entity.ExpectedRecord    // ground truth
	Fields   entity.ExtractedFieldSet // diagnostic extraction, prompt hints only
}

// Verdict is the verifier's parsed answer, before reconciliation.
type Verdict struct {
	IsValid    bool                   `json:"isValid"`
	Message    string                 `json:"message"`
	Mismatches []entity.FieldMismatch `json:"mismatches"`
}

// Verifier is the interface the validation pipeline depends on. The second
// return value is the raw (sanitized) response body, kept for diagnostics.
type Verifier interface {
	Verify(ctx context.Context, req VerifyRequest) (Verdict, []byte, error)
}

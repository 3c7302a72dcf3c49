package entity

// Mismatch field names used across the pipeline.
const (
	FieldAgentName    = "AgentName"
	FieldCustomerName = "CustomerName"
	FieldSignature    = "Signature"
)

// Fixed result messages.
const (
	MessageValid   = "Document matches the expected record."
	MessageInvalid = "Document does not match the expected record."
)

// FieldMismatch is a discrepancy the verifier claims between the expected
// record and the document. Reconciliation may rewrite PdfValue and Reason when
// the difference turns out to be an extraction artifact; a genuinely different
// value is never dropped.
type FieldMismatch struct {
	Field         string `json:"field"`
	ExpectedValue string `json:"expectedValue"`
	PdfValue      string `json:"pdfValue"`
	Reason        string `json:"reason"`
}

// ValidationResult is the terminal object returned to the caller.
type ValidationResult struct {
	Valid      bool            `json:"isValid"`
	Message    string          `json:"message"`
	Mismatches []FieldMismatch `json:"mismatches"`
}

// HasField reports whether a mismatch for the named field is present.
func (r ValidationResult) HasField(field string) bool {
	for _, m := range r.Mismatches {
		if m.Field == field {
			return true
		}
	}
	return false
}

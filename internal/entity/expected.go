package entity

// TargetLine is one product row of the expected target table.
type TargetLine struct {
	ProductLabel string `json:"productLabel"`
	TargetAmount int64  `json:"targetAmount"`
}

// ExpectedRecord is the ground truth a document is validated against.
// Immutable for the duration of a validation request.
type ExpectedRecord struct {
	AgentName         string       `json:"agentName"`
	CustomerName      string       `json:"customerName"`
	Targets           []TargetLine `json:"targets"`
	SignatureRequired bool         `json:"signatureRequired"`
}

// TargetFor returns the expected amount for a product label.
func (r ExpectedRecord) TargetFor(productLabel string) (int64, bool) {
	for _, t := range r.Targets {
		if t.ProductLabel == productLabel {
			return t.TargetAmount, true
		}
	}
	return 0, false
}

package entity

// ExtractedFieldSet is the best-effort structured view of a normalized
// document. Diagnostic only: it feeds prompt construction and plausibility
// logging, never the final verdict.
type ExtractedFieldSet struct {
	AgentName        string            `json:"agentName,omitempty"`
	Region           string            `json:"region,omitempty"`
	CustomerName     string            `json:"customerName,omitempty"`
	SalesOffice      string            `json:"salesOffice,omitempty"`
	PerProductTarget map[string]string `json:"perProductTarget,omitempty"`
}

package verifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the system message: the verifier reads a
// normalized sales-target document, compares it to the expected record, and
// answers with the verdict JSON only.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a sales-target document verifier. Return ONLY JSON that matches the provided JSON Schema.",
		"Compare the document text against the expected record field by field: agent name, customer name, and each product's Target 2026 amount.",
		"For every field that does not match, add an entry to 'mismatches' with the field name, the expected value, the value you read from the document ('pdfValue'), and a short reason.",
		"Numbers in the document may use Indian digit grouping (70,00,000 = 7000000); compare numeric values, not formatting.",
		"Use field names 'AgentName' and 'CustomerName' for the name fields and the product label for target rows.",
		"Set 'isValid' to true only when every field matches.",
		"Never output null. If there are no mismatches, return an empty 'mismatches' array.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the expected record and document text. The
// diagnostic field extraction is included as hints; the verifier must still
// read the document itself.
func BuildUserPrompt(req VerifyRequest) string {
	expected, _ := json.Marshal(req.Expected)
	var b strings.Builder
	b.WriteString("Expected record:\n")
	b.Write(expected)
	b.WriteString("\n\n")
	if len(req.Fields.PerProductTarget) > 0 || req.Fields.AgentName != "" {
		hints, _ := json.Marshal(req.Fields)
		fmt.Fprintf(&b, "Extraction hints (best-effort, may be wrong):\n%s\n\n", hints)
	}
	b.WriteString("Document text:\n")
	b.WriteString(req.Document)
	return b.String()
}

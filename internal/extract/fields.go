package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"targetcheck/constants"
	"targetcheck/internal/entity"
)

var (
	reAgentLabel    = regexp.MustCompile(`(?i)\bAM\s*:\s*`)
	reRegionLabel   = regexp.MustCompile(`(?i)\bRegion\s*:?\s*`)
	reCustomerLabel = regexp.MustCompile(`(?i)\bCustomer\s*:\s*`)
	reOfficeLabel   = regexp.MustCompile(`(?i)\bSales\s*Office\s*:?\s*`)

	// "[S] - 104522 - A M AUTO SALES" -> "A M AUTO SALES"
	reCustomerCodePrefix = regexp.MustCompile(`^\[[^\]]*\]\s*-\s*\d+\s*-\s*`)
)

// Fields pulls a best-effort structured field set out of a normalized
// document. Diagnostic only: the verifier does its own reading; this exists to
// build the verification request and to log plausibility, never to overrule
// the verdict.
func Fields(doc string, logger *slog.Logger) entity.ExtractedFieldSet {
	if logger == nil {
		logger = slog.Default()
	}
	fs := entity.ExtractedFieldSet{
		AgentName:        valueAfter(doc, reAgentLabel),
		Region:           valueAfter(doc, reRegionLabel),
		CustomerName:     customerName(doc),
		SalesOffice:      valueAfter(doc, reOfficeLabel),
		PerProductTarget: productTargets(doc),
	}
	logger.Debug("extract.fields",
		"agent_found", fs.AgentName != "",
		"customer_found", fs.CustomerName != "",
		"product_rows", len(fs.PerProductTarget),
	)
	return fs
}

// valueAfter returns the text following the first match of label on its line,
// cut at the first stop keyword and stripped of trailing non-letters.
func valueAfter(doc string, label *regexp.Regexp) string {
	loc := label.FindStringIndex(doc)
	if loc == nil {
		return ""
	}
	rest := doc[loc[1]:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return trimValue(cutAtStopKeyword(rest))
}

func customerName(doc string) string {
	loc := reCustomerLabel.FindStringIndex(doc)
	if loc == nil {
		return ""
	}
	rest := doc[loc[1]:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	rest = reCustomerCodePrefix.ReplaceAllString(rest, "")
	return trimValue(rest)
}

// productTargets maps each product row to the last numeric token on its line,
// the Target 2026 column. Matching is keyword-exact on the leading token run;
// "Over All" summary rows never match even when they contain "OTHERS".
func productTargets(doc string) map[string]string {
	targets := make(map[string]string)
	for _, line := range strings.Split(doc, "\n") {
		if constants.IsSummaryRow(line) {
			continue
		}
		kw := constants.MatchProductKeyword(line)
		if kw == "" {
			continue
		}
		if tok := lastNumericToken(line); tok != "" {
			targets[kw] = StripGrouping(tok)
		}
	}
	return targets
}

func cutAtStopKeyword(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if constants.IsNameStopKeyword(strings.Trim(w, ":.,")) {
			return strings.Join(words[:i], " ")
		}
	}
	return strings.Join(words, " ")
}

func trimValue(s string) string {
	return strings.TrimRightFunc(strings.TrimSpace(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

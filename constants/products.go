package constants

import "strings"

// Product row keywords as they appear in the target table, one row per product.
// "OTHERS" is a real product bucket; "Over All" is the summary row and must
// never be read as a product even though it contains the substring "OTHERS"-ish
// tokens on some extractions.
var ProductKeywords = []string{
	"ENGINE PARTS",
	"BRAKE PARTS",
	"CLUTCH PARTS",
	"SUSPENSION PARTS",
	"ELECTRICAL PARTS",
	"FILTERS",
	"LUBRICANTS",
	"OTHERS",
}

// Summary row labels rejected during per-product target extraction.
var summaryRowLabels = []string{
	"Over All",
	"Overall",
}

// MatchProductKeyword returns the canonical product keyword the line starts
// with, or "" when the line is not a product row. Matching is keyword-exact on
// the leading tokens, not substring, and summary rows are rejected first.
func MatchProductKeyword(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, s := range summaryRowLabels {
		if hasFoldPrefix(trimmed, s) {
			return ""
		}
	}
	for _, p := range ProductKeywords {
		if hasFoldPrefix(trimmed, p) {
			rest := trimmed[len(p):]
			// keyword-exact: the keyword must end at a word boundary
			if rest == "" || !isWordChar(rest[0]) {
				return p
			}
		}
	}
	return ""
}

// IsSummaryRow reports whether the line is an "Over All" style summary row.
func IsSummaryRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, s := range summaryRowLabels {
		if hasFoldPrefix(trimmed, s) {
			return true
		}
	}
	return false
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isWordChar(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

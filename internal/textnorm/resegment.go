package textnorm

import (
	"regexp"
	"strings"

	"targetcheck/constants"
)

// canonicalizers rewrite spacing/case variants of a row keyword (including the
// run-together form left behind when the extractor drops spaces) back to the
// canonical keyword from the constants table.
var canonicalizers = func() []struct {
	re        *regexp.Regexp
	canonical string
} {
	out := make([]struct {
		re        *regexp.Regexp
		canonical string
	}, 0, len(constants.ProductKeywords))
	for _, kw := range constants.ProductKeywords {
		pattern := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(kw), ` `, `\s*`) + `\b`
		out = append(out, struct {
			re        *regexp.Regexp
			canonical string
		}{regexp.MustCompile(pattern), kw})
	}
	return out
}()

// breakBefore forces a line break in front of each row keyword and structural
// marker that is not already at the start of a line.
var breakBefore = func() []*regexp.Regexp {
	markers := append([]string{}, constants.ProductKeywords...)
	markers = append(markers, constants.TargetYearMarker, constants.SignatureMarker)
	out := make([]*regexp.Regexp, 0, len(markers))
	for _, m := range markers {
		out = append(out, regexp.MustCompile(`([^\n])\b(`+regexp.QuoteMeta(m)+`)\b`))
	}
	return out
}()

// resegment splits physical lines that carry several logical fields: each
// product row keyword and each "Target 2026" / "Customer Signature" marker
// starts its own line afterwards. Summary rows are left whole so an "Over All"
// line is never cut into something that looks like an "OTHERS" product row.
func resegment(s string) string {
	for _, c := range canonicalizers {
		s = c.re.ReplaceAllString(s, c.canonical)
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if constants.IsSummaryRow(line) {
			out = append(out, line)
			continue
		}
		for _, re := range breakBefore {
			line = re.ReplaceAllString(line, "$1\n$2")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

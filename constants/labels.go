package constants

import "strings"

// Field labels that appear in sales-target documents. Extraction glues these to
// the preceding word ("RAJESHRegion"), so the normalizer needs the full list to
// split them back onto their own lines.
var FieldLabels = []string{
	"Agent",
	"AM",
	"Region",
	"Area",
	"State",
	"Sales Office",
	"Office",
	"Customer",
	"Contact",
	"Code",
	"Product",
	"Target",
	"Signature",
	"Date",
}

// NameStopKeywords terminate a free-text name value. Anything from the label
// column that can run into the agent/customer name counts.
var NameStopKeywords = []string{
	"Sales",
	"Office",
	"Contact",
	"Region",
	"Area",
	"Code",
	"State",
}

// NoiseSuffixes are trailing fragments the extractor is known to append to a
// name when the next label bleeds into the value. Ordered longest-first so the
// suffix strip tries the most specific fragment before the single letter.
var NoiseSuffixes = []string{
	"Sales",
	"Office",
	"Contact",
	"Region",
	"Area",
	"Code",
	"State",
	"S",
}

// Structural markers that force a line break during re-segmentation.
const (
	TargetYearMarker = "Target 2026"
	SignatureMarker  = "Customer Signature"
)

// IsNameStopKeyword reports whether tok ends a name value.
func IsNameStopKeyword(tok string) bool {
	for _, k := range NameStopKeywords {
		if strings.EqualFold(tok, k) {
			return true
		}
	}
	return false
}

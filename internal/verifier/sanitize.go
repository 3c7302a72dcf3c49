package verifier

import (
	"regexp"
	"strings"

	"targetcheck/internal/common"
)

var (
	reCodeFence     = regexp.MustCompile("(?m)^```[a-zA-Z]*[ \t]*$|```")
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls the JSON object out of a raw verifier answer. Models wrap
// the object in markdown fences and prose; this strips fences, trims, and
// slices between the first "{" and the last "}" inclusive. Trailing commas
// before a closing brace or bracket are dropped. Anything without an outer
// brace pair fails with ErrMalformedResponse. No deeper bracket-balance repair
// is attempted.
func ExtractJSON(raw string) (string, error) {
	s := reCodeFence.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", common.NewAppError("MALFORMED_RESPONSE", "no JSON object in verifier response", common.ErrMalformedResponse)
	}
	s = s[start : end+1]
	s = reTrailingComma.ReplaceAllString(s, "$1")
	return s, nil
}

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var reNumericToken = regexp.MustCompile(`\d[\d,]*`)

// StripGrouping removes thousands separators and whitespace from a numeric
// string. Both standard 3-3-3 grouping and Indian 2-2-3 grouping
// ("70,00,000" -> "7000000") collapse to plain digits.
func StripGrouping(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.Join(strings.Fields(s), "")
}

// ParseGroupedInt parses a possibly-grouped numeric string as an integer.
func ParseGroupedInt(s string) (int64, error) {
	return strconv.ParseInt(StripGrouping(s), 10, 64)
}

// lastNumericToken returns the last comma-grouped digit run on a line, or "".
func lastNumericToken(line string) string {
	tokens := reNumericToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

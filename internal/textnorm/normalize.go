package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"targetcheck/constants"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	reLetterDigit = regexp.MustCompile(`(\p{L})(\d)`)
	reDigitLetter = regexp.MustCompile(`(\d)(\p{L})`)
)

// splitLabels are the field labels stage 3 breaks onto their own line when
// glued to the preceding word. "AM" stays out: it is a substring of too many
// names and the extractor anchors on "AM:" anyway.
var splitLabels = func() []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, l := range constants.FieldLabels {
		if l == "AM" {
			continue
		}
		// split only when directly preceded by a letter and not running on
		// into a longer lowercase word
		out = append(out, regexp.MustCompile(`(\p{L})(`+regexp.QuoteMeta(l)+`)($|[^a-z])`))
	}
	return out
}()

// maxNormalizePasses bounds the fixpoint loop. Each pass either leaves the
// text unchanged or repairs artifacts uncovered by the previous one; real
// page text settles in two.
const maxNormalizePasses = 8

// Normalize repairs extraction artifacts in raw page text and restructures it
// into line-oriented records. Noise stripping can uncover artifacts the
// earlier stages repair (a spaced-letter run interleaved with noise, a label
// glued once the noise between is gone), so the stage sequence runs until the
// text stops changing. Idempotent: normalizing twice yields the same string.
func Normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	for i := 0; i < maxNormalizePasses; i++ {
		next := normalizePass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func normalizePass(s string) string {
	s = normalizeLineEndings(s)
	s = collapseWhitespace(s)
	s = splitGluedLabels(s)
	s = repairLetterSpacing(s)
	s = collapseRepeatedLetters(s)
	s = spaceDigitBoundaries(s)
	s = stripNoise(s)
	s = resegment(s)
	// resegmentation and boundary spacing leave doubled spaces behind
	s = collapseWhitespace(s)
	return strings.TrimSpace(s)
}

func normalizeLineEndings(s string) string {
	return reCRLF.ReplaceAllString(s, "\n")
}

func collapseWhitespace(s string) string {
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

func splitGluedLabels(s string) string {
	for _, re := range splitLabels {
		s = re.ReplaceAllString(s, "$1\n$2$3")
	}
	return s
}

// collapseRepeatedLetters reduces a letter repeated three or more times in a
// row to exactly two occurrences ("BHATTT" -> "BHATT"). Legitimate doubles
// ("ALL") survive, and digit runs ("2000000") are never touched.
func collapseRepeatedLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev && isLetter(r) {
			run++
			if run > 2 {
				continue
			}
		} else {
			prev = r
			run = 1
		}
		b.WriteRune(r)
	}
	return b.String()
}

func spaceDigitBoundaries(s string) string {
	s = reLetterDigit.ReplaceAllString(s, "$1 $2")
	s = reDigitLetter.ReplaceAllString(s, "$1 $2")
	return s
}

// stripNoise removes every character outside letters, digits, whitespace and
// the small punctuation set field values legitimately carry. Brackets stay so
// customer codes like "[S]" survive.
func stripNoise(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(":.,-[]/", r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

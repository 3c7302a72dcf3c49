package textnorm

import "strings"

// letter-spacing runs shorter than this stay untouched, so short initialisms
// like "A M" in "A M AUTO SALES" survive.
const minSpacedRun = 4

// repairLetterSpacing collapses sequences of four or more single letters, each
// separated by exactly one space, into one contiguous word: "A S H I S H"
// becomes "ASHISH". The scan runs left to right per line, greedily extending a
// run while the letter-space-letter pattern holds, and only commits the
// collapse once the run reaches the threshold; shorter runs are copied through
// verbatim, spaces included.
func repairLetterSpacing(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = repairLine(lines[i])
	}
	return strings.Join(lines, "\n")
}

func repairLine(line string) string {
	r := []rune(line)
	n := len(r)
	var b strings.Builder
	b.Grow(n)

	i := 0
	for i < n {
		if isLetter(r[i]) && standsAlone(r, i) {
			// extend the run while "letter space letter" holds
			letters := []rune{r[i]}
			end := i
			for end+2 < n && r[end+1] == ' ' && isLetter(r[end+2]) && standsAlone(r, end+2) {
				letters = append(letters, r[end+2])
				end += 2
			}
			if len(letters) >= minSpacedRun {
				b.WriteString(string(letters))
				i = end + 1
				continue
			}
		}
		b.WriteRune(r[i])
		i++
	}
	return b.String()
}

// standsAlone reports whether the letter at k is a single-letter token: no
// letter directly before or after it.
func standsAlone(r []rune, k int) bool {
	if k > 0 && isLetter(r[k-1]) {
		return false
	}
	if k+1 < len(r) && isLetter(r[k+1]) {
		return false
	}
	return true
}

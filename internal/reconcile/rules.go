package reconcile

import (
	"strings"

	"targetcheck/constants"
	"targetcheck/internal/extract"
	"targetcheck/internal/match"
)

// Rule is one reconciliation heuristic. Apply returns the corrected observed
// value and true when the rule decides the claimed mismatch is an extraction
// artifact; rules run in order and the first hit wins.
type Rule struct {
	Name  string
	Apply func(expected, observed string) (string, bool)
}

// exactRule fires on case-insensitive equality and applies to every field
// kind before anything else.
var exactRule = Rule{
	Name: "exact-fold",
	Apply: func(expected, observed string) (string, bool) {
		if strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(observed)) {
			return expected, true
		}
		return "", false
	},
}

// suffixStripRule drops a known trailing-noise fragment (the next label
// bleeding into the value) from the observed name.
var suffixStripRule = Rule{
	Name: "suffix-strip",
	Apply: func(expected, observed string) (string, bool) {
		obs := strings.TrimSpace(observed)
		for _, suffix := range constants.NoiseSuffixes {
			if len(obs) <= len(suffix) || !strings.EqualFold(obs[len(obs)-len(suffix):], suffix) {
				continue
			}
			stripped := strings.TrimSpace(obs[:len(obs)-len(suffix)])
			if strings.EqualFold(stripped, expected) {
				return expected, true
			}
		}
		return "", false
	},
}

// offByOneRule accepts an observed value exactly one character longer than the
// expected one when the shorter prefix matches.
var offByOneRule = Rule{
	Name: "off-by-one-prefix",
	Apply: func(expected, observed string) (string, bool) {
		exp := strings.TrimSpace(expected)
		obs := strings.TrimSpace(observed)
		if len(obs) == len(exp)+1 && strings.EqualFold(obs[:len(exp)], exp) {
			return expected, true
		}
		return "", false
	},
}

// leadingRepairRule tests the two customer-name spacing repairs: re-inserting
// a dropped leading initial, and re-inserting the space after the first
// character ("AM AUTO SALES" -> "A M AUTO SALES").
var leadingRepairRule = Rule{
	Name: "leading-letter-space-repair",
	Apply: func(expected, observed string) (string, bool) {
		exp := strings.TrimSpace(expected)
		obs := strings.TrimSpace(observed)
		if exp == "" || obs == "" {
			return "", false
		}
		if strings.EqualFold(exp[:1]+" "+obs, exp) {
			return expected, true
		}
		if strings.EqualFold(obs[:1]+" "+obs[1:], exp) {
			return expected, true
		}
		return "", false
	},
}

// editDistanceRule tolerates up to maxDistance character edits.
func editDistanceRule(maxDistance int) Rule {
	return Rule{
		Name: "edit-distance",
		Apply: func(expected, observed string) (string, bool) {
			if match.Distance(strings.TrimSpace(expected), strings.TrimSpace(observed)) <= maxDistance {
				return expected, true
			}
			return "", false
		},
	}
}

// numericEqualRule compares after stripping thousands separators and spaces,
// so "70,00,000" reconciles against "7000000".
var numericEqualRule = Rule{
	Name: "numeric-equal",
	Apply: func(expected, observed string) (string, bool) {
		if extract.StripGrouping(expected) == extract.StripGrouping(observed) {
			return expected, true
		}
		return "", false
	},
}

// tenfoldOverreadRule catches the extractor reading one digit too many: the
// observed value is exactly 10x the expected one.
var tenfoldOverreadRule = Rule{
	Name: "numeric-10x-overread",
	Apply: func(expected, observed string) (string, bool) {
		exp, obs, ok := parsePair(expected, observed)
		if ok && exp != 0 && obs == exp*10 {
			return expected, true
		}
		return "", false
	},
}

// leadingDigitOverreadRule recovers the expected value by dropping the first
// one or two digits of the observed value (a stray row number or year glued to
// the front of the amount).
var leadingDigitOverreadRule = Rule{
	Name: "numeric-leading-digit-overread",
	Apply: func(expected, observed string) (string, bool) {
		exp := extract.StripGrouping(expected)
		obs := extract.StripGrouping(observed)
		for _, drop := range []int{1, 2} {
			if len(obs) > drop && obs[drop:] == exp {
				return expected, true
			}
		}
		return "", false
	},
}

// relativeToleranceRule accepts integer values whose relative difference is
// within tolerance. Deliberately loose: it accommodates digit-grouping
// confusion but can mask a genuinely revised target, which is why the
// tolerance is a named, configurable knob and not hard-coded deeper down.
func relativeToleranceRule(tolerance float64) Rule {
	return Rule{
		Name: "numeric-relative-tolerance",
		Apply: func(expected, observed string) (string, bool) {
			exp, obs, ok := parsePair(expected, observed)
			if !ok || exp == 0 {
				return "", false
			}
			diff := exp - obs
			if diff < 0 {
				diff = -diff
			}
			if float64(diff)/float64(exp) <= tolerance {
				return expected, true
			}
			return "", false
		},
	}
}

func parsePair(expected, observed string) (int64, int64, bool) {
	exp, err := extract.ParseGroupedInt(expected)
	if err != nil {
		return 0, 0, false
	}
	obs, err := extract.ParseGroupedInt(observed)
	if err != nil {
		return 0, 0, false
	}
	return exp, obs, true
}

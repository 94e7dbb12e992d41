// Package matching pairs logged realizations with the program requirements
// they satisfy. New-generation records reference requirements directly; the
// old schema never had relational integrity to the catalogue, so old records
// are resolved by year bucket plus best-effort name similarity.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes and strips combining marks, folding ą→a, ż→z etc.
// Note ł/Ł have no decomposition and are handled separately below.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s, folds diacritics, and drops everything that is
// not a letter or digit (spaces, hyphens, dashes, underscores, punctuation).
// Requirement names in old catalogues differ from what trainees typed mostly
// in casing, accents and separators, so matching runs on this folded form.
func Normalize(s string) string {
	folded, _, err := transform.String(deaccent, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if r == 'ł' {
			r = 'l'
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NamesMatch reports whether a realization name plausibly refers to the
// given requirement name. Checks run in priority order; any hit matches:
//
//  1. case-insensitive exact equality
//  2. realization name contains the requirement name
//  3. requirement name contains the realization name
//  4. normalized forms contain one another
//
// This is a deliberate best-effort heuristic, not a guaranteed resolver:
// renamed or ambiguous requirements can be mis-attributed.
func NamesMatch(requirementName, realizationName string) bool {
	if requirementName == "" || realizationName == "" {
		return false
	}
	if strings.EqualFold(requirementName, realizationName) {
		return true
	}
	reqLower := strings.ToLower(requirementName)
	realLower := strings.ToLower(realizationName)
	if strings.Contains(realLower, reqLower) || strings.Contains(reqLower, realLower) {
		return true
	}
	nreq := Normalize(requirementName)
	nreal := Normalize(realizationName)
	if nreq == "" || nreal == "" {
		return false
	}
	return strings.Contains(nreal, nreq) || strings.Contains(nreq, nreal)
}

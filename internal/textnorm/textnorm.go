// Package textnorm folds case, diacritics and surrounding whitespace so that
// queries and option labels compare symmetrically.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options selects which foldings Normalize applies
type Options struct {
	Trim          bool
	IgnoreCase    bool
	IgnoreAccents bool
}

// combining diacritical marks block
var diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize applies trimming, lowercasing and accent stripping, in that order
func Normalize(s string, opts Options) string {
	if opts.Trim {
		s = strings.TrimSpace(s)
	}
	if opts.IgnoreCase {
		s = cases.Lower(language.Und).String(s)
	}
	if opts.IgnoreAccents {
		s = StripDiacritics(s)
	}
	return s
}

// StripDiacritics decomposes s canonically and removes combining marks
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(diacritics)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// HasPrefixFold reports whether s starts with prefix under simple lowercase
// folding, and returns the rune length of the matched prefix
func HasPrefixFold(s, prefix string) (int, bool) {
	lower := cases.Lower(language.Und)
	ls := []rune(lower.String(s))
	lp := []rune(lower.String(prefix))
	if len(lp) > len(ls) {
		return 0, false
	}
	for i := range lp {
		if ls[i] != lp[i] {
			return 0, false
		}
	}
	return len(lp), true
}

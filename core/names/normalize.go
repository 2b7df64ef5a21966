package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// suffixes are the generational suffixes dropped from a name when they
// appear as a standalone word.
var suffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
	"v":   {},
}

// punctuation is stripped without substitution.
const punctuation = `.'",`

// Normalize turns a display name into its matching key.
// Any value that is not a string normalizes to the empty string.
func Normalize(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return NormalizeString(s)
}

// NormalizeString lower-cases s, removes generational suffixes, strips
// punctuation and collapses whitespace. The result is stable under a second
// application.
func NormalizeString(s string) string {
	if s == "" {
		return ""
	}

	// cases.Caser keeps state, so one is built per call.
	s = cases.Lower(language.Und).String(s)
	s = removeSuffixes(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	// "J.R." only becomes a suffix once the periods are gone.
	s = removeSuffixes(s)

	return strings.Join(strings.Fields(s), " ")
}

// removeSuffixes drops every standalone suffix word together with one
// trailing period.
func removeSuffixes(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		if !isWord(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && isWord(runes[j]) {
			j++
		}

		if _, ok := suffixes[string(runes[i:j])]; ok {
			if j < len(runes) && runes[j] == '.' {
				j++
			}
		} else {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}

	return b.String()
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

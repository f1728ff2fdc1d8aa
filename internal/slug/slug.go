// Package slug converts raw spreadsheet column labels into stable lookup
// keys. Two headers that differ only in accents, case, or punctuation
// spacing produce the same slug.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make returns the canonical slug for a column label: accents stripped,
// lowercased, runs of non-alphanumeric characters collapsed to a single
// underscore, leading/trailing underscores trimmed. Total and idempotent;
// empty input yields "".
func Make(label string) string {
	folded := Fold(label)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// Fold lowercases and strips accents without touching punctuation. Search
// matching uses it so "São Paulo" contains "sao".
func Fold(s string) string {
	result, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}

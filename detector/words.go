package detector

import (
	"strings"

	"github.com/polylang/lingua/alphabet"
)

// splitWords splits cleaned text at single-space boundaries, additionally
// treating every logogram character as its own one-character word
// regardless of surrounding characters (spec.md §4.2). Empty segments are
// discarded.
func splitWords(cleaned string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range cleaned {
		switch {
		case r == ' ':
			flush()
		case isLogogram(r):
			flush()
			words = append(words, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return words
}

// isLogogram reports whether r belongs to a logogram-bearing script
// (spec.md §3b, §4.2).
func isLogogram(r rune) bool {
	for _, a := range alphabet.MatchingAlphabets(r) {
		if a.IsLogogram() {
			return true
		}
	}
	return false
}

package language

import "github.com/polylang/lingua/alphabet"

// ScriptsUniqueToOneLanguage returns, for the given active language set, the
// map of alphabet -> language for every script supported by exactly one of
// those languages (spec.md §3, LanguageDetector state: "derived map
// 'script -> language' for scripts used by exactly one language in L").
func ScriptsUniqueToOneLanguage(languages []Language) map[alphabet.Alphabet]Language {
	counts := map[alphabet.Alphabet]int{}
	owner := map[alphabet.Alphabet]Language{}
	for _, l := range languages {
		for _, a := range l.Alphabets() {
			counts[a]++
			owner[a] = l
		}
	}
	out := map[alphabet.Alphabet]Language{}
	for a, c := range counts {
		if c == 1 {
			out[a] = owner[a]
		}
	}
	return out
}

// WithUniqueChars returns the subset of languages that have a non-empty
// unique-character signature (spec.md §3, "LanguageDetector state: ... the
// subset of L that has non-empty unique-character strings").
func WithUniqueChars(languages []Language) []Language {
	out := make([]Language, 0, len(languages))
	for _, l := range languages {
		if l.UniqueChars() != "" {
			out = append(out, l)
		}
	}
	return out
}

// LanguagesSupportingAlphabet returns the subset of languages that are
// written in alphabet a.
func LanguagesSupportingAlphabet(languages []Language, a alphabet.Alphabet) []Language {
	out := make([]Language, 0, len(languages))
	for _, l := range languages {
		if l.SupportsAlphabet(a) {
			out = append(out, l)
		}
	}
	return out
}

// ContainsChar reports whether l's unique-character signature contains r.
func (l Language) ContainsChar(r rune) bool {
	for _, c := range l.UniqueChars() {
		if c == r {
			return true
		}
	}
	return false
}

// Package alphabet enumerates the Unicode script families the detector
// recognizes (spec.md §2 item 2, §3 "Alphabet"). Each Alphabet answers
// "does this character/word belong to me?" using the standard library's
// canonical per-script range tables (unicode.Scripts) — a third-party
// script-detection library would only wrap the same tables, so this stays
// on the standard library per the project's dependency policy.
package alphabet

import "unicode"

// Alphabet identifies a Unicode script family.
type Alphabet int

const (
	Latin Alphabet = iota
	Cyrillic
	Han
	Hiragana
	Katakana
	Devanagari
	Arabic
	Hebrew
	Greek
	Thai
	Hangul
	Georgian
	Armenian
	count
)

var names = [...]string{
	Latin:      "LATIN",
	Cyrillic:   "CYRILLIC",
	Han:        "HAN",
	Hiragana:   "HIRAGANA",
	Katakana:   "KATAKANA",
	Devanagari: "DEVANAGARI",
	Arabic:     "ARABIC",
	Hebrew:     "HEBREW",
	Greek:      "GREEK",
	Thai:       "THAI",
	Hangul:     "HANGUL",
	Georgian:   "GEORGIAN",
	Armenian:   "ARMENIAN",
}

// rangeTables maps each Alphabet to the stdlib RangeTable that defines it.
var rangeTables = [...]*unicode.RangeTable{
	Latin:      unicode.Latin,
	Cyrillic:   unicode.Cyrillic,
	Han:        unicode.Han,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Devanagari: unicode.Devanagari,
	Arabic:     unicode.Arabic,
	Hebrew:     unicode.Hebrew,
	Greek:      unicode.Greek,
	Thai:       unicode.Thai,
	Hangul:     unicode.Hangul,
	Georgian:   unicode.Georgian,
	Armenian:   unicode.Armenian,
}

// logogramAlphabets is the subset of scripts spec.md §3(b) calls out as
// "whose languages contain logograms." Han is logographic in both Chinese
// and in the kanji subset of Japanese; word-splitting (spec.md §4.2) treats
// every character of a logogram-bearing script as its own one-character
// word.
var logogramAlphabets = map[Alphabet]bool{
	Han: true,
}

// String returns the alphabet's canonical upper-case name.
func (a Alphabet) String() string {
	if int(a) >= 0 && int(a) < len(names) {
		return names[a]
	}
	return "UNKNOWN"
}

// Matches reports whether r belongs to this alphabet's script.
func (a Alphabet) Matches(r rune) bool {
	table := rangeTables[a]
	if table == nil {
		return false
	}
	return unicode.Is(table, r)
}

// WordMatches reports whether every rune in word belongs to this alphabet.
// An empty word matches no alphabet (spec.md §4.4 tallies whole-word
// matches; an empty word contributes to none).
func (a Alphabet) WordMatches(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !a.Matches(r) {
			return false
		}
	}
	return true
}

// IsLogogram reports whether this script is logogram-bearing (spec.md §3b).
func (a Alphabet) IsLogogram() bool {
	return logogramAlphabets[a]
}

// All returns every supported alphabet.
func All() []Alphabet {
	out := make([]Alphabet, 0, int(count))
	for i := Alphabet(0); i < count; i++ {
		out = append(out, i)
	}
	return out
}

// MatchingAlphabets returns every alphabet that matches rune r.
func MatchingAlphabets(r rune) []Alphabet {
	var out []Alphabet
	for _, a := range All() {
		if a.Matches(r) {
			out = append(out, a)
		}
	}
	return out
}

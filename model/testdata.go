package model

import (
	"unicode"

	"github.com/polylang/lingua/ngram"
)

// TestDataLanguageModel is the deduplicated set of all length-k contiguous
// substrings of s whose every rune is a letter (spec.md §3). Unlike
// training n-grams, these are sliced from the raw rune stream, not from
// individual words — a window that would straddle a non-letter simply
// never qualifies, since every rune in it must be a letter.
type TestDataLanguageModel struct {
	Order  int
	Ngrams map[ngram.Ngram]struct{}
}

// NewTestDataLanguageModel builds the order-k test model of s.
func NewTestDataLanguageModel(s string, order int) TestDataLanguageModel {
	if order < 1 {
		panic("model: test order must be >= 1")
	}
	runes := []rune(s)
	set := map[ngram.Ngram]struct{}{}
	for i := 0; i+order <= len(runes); i++ {
		window := runes[i : i+order]
		if !allLetters(window) {
			continue
		}
		set[ngram.New(window)] = struct{}{}
	}
	return TestDataLanguageModel{Order: order, Ngrams: set}
}

func allLetters(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

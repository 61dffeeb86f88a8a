// Package ngram provides the Ngram value type: a short run of letters (1 to
// 5 runes) used as the unit of evidence for statistical language scoring.
package ngram

import "fmt"

// maxLength is the longest n-gram order the detector ever scores (spec
// supports orders 1 through 5).
const maxLength = 5

// Ngram is an immutable value of 0 to 5 letter runes. The zero Ngram (length
// 0) is the "zerogram": Decrement of a one-rune n-gram yields it, a back-off
// Range never contains it, and it is never looked up in a model.
//
// Ngram is a fixed-size value type rather than a string so that each prefix
// of a back-off range during scoring (spec.md §4.5, one Range per test
// n-gram) is a plain value rather than a separately allocated string.
type Ngram struct {
	runes  [maxLength]rune
	length int8
}

// New builds an Ngram from a rune slice of length 0 to 5.
func New(runes []rune) Ngram {
	if len(runes) > maxLength {
		panic(fmt.Sprintf("ngram: length %d exceeds maximum %d", len(runes), maxLength))
	}
	var n Ngram
	copy(n.runes[:], runes)
	n.length = int8(len(runes))
	return n
}

// FromString builds an Ngram from a string of 0 to 5 runes.
func FromString(s string) Ngram {
	return New([]rune(s))
}

// Len returns the number of runes in the n-gram (0 to 5).
func (n Ngram) Len() int {
	return int(n.length)
}

// String returns the n-gram's textual content.
func (n Ngram) String() string {
	return string(n.runes[:n.length])
}

// Less reports whether n sorts before o: by length first (shorter is less),
// then lexicographically by content. This matches the ordering spec.md §3
// requires for Ngram.
func (n Ngram) Less(o Ngram) bool {
	if n.length != o.length {
		return n.length < o.length
	}
	return n.String() < o.String()
}

// Decrement returns the prefix one rune shorter than n. It panics if n is
// the zerogram (length 0) — decrementing a zerogram is a programmer error,
// never a data condition (spec.md §7, "Exceptions are reserved for
// programmer errors... zerogram decrement").
func (n Ngram) Decrement() Ngram {
	if n.length == 0 {
		panic("ngram: cannot decrement a zerogram")
	}
	var dec Ngram
	dec.length = n.length - 1
	copy(dec.runes[:dec.length], n.runes[:dec.length])
	return dec
}

// IsZerogram reports whether n has length 0.
func (n Ngram) IsZerogram() bool {
	return n.length == 0
}

package model

import "github.com/polylang/lingua/ngram"

// TrainingDataLanguageModel holds the absolute and relative n-gram
// frequencies observed in a training corpus for one language at one n-gram
// order k (spec.md §3). For k=1 the relative-frequency denominator is the
// total unigram count; for k>1 it is the absolute frequency of the n-gram's
// (k-1)-prefix in the same corpus — a Katz-style back-off denominator
// (spec.md §3 invariant on TrainingDataLanguageModel).
type TrainingDataLanguageModel struct {
	Order               int
	AbsoluteFrequencies map[ngram.Ngram]int
	RelativeFrequencies map[ngram.Ngram]Fraction
}

// Train builds the order-k model from word, the already-cleaned and
// word-split training corpus (one pass of spec.md §4.1/§4.2 applied
// upstream by the caller — training is an external collaborator per
// spec.md §1 and does not re-derive cleanup rules here).
func Train(words []string, order int) TrainingDataLanguageModel {
	if order < 1 {
		panic("model: training order must be >= 1")
	}

	absolute := map[ngram.Ngram]int{}
	for _, w := range words {
		for _, n := range ngramsOfOrder(w, order) {
			absolute[n]++
		}
	}

	relative := map[ngram.Ngram]Fraction{}
	if order == 1 {
		total := int64(0)
		for _, c := range absolute {
			total += int64(c)
		}
		if total > 0 {
			for n, c := range absolute {
				relative[n] = NewFraction(int64(c), total)
			}
		}
		return TrainingDataLanguageModel{Order: order, AbsoluteFrequencies: absolute, RelativeFrequencies: relative}
	}

	lowerOrderAbsolute := map[ngram.Ngram]int{}
	for _, w := range words {
		for _, n := range ngramsOfOrder(w, order-1) {
			lowerOrderAbsolute[n]++
		}
	}
	for n, c := range absolute {
		denom := lowerOrderAbsolute[n.Decrement()]
		if denom > 0 {
			relative[n] = NewFraction(int64(c), int64(denom))
		}
	}

	return TrainingDataLanguageModel{Order: order, AbsoluteFrequencies: absolute, RelativeFrequencies: relative}
}

// ngramsOfOrder slices every contiguous run of `order` letters out of word
// (which is assumed already lowercased and letters-only by the caller's
// word-splitting pass).
func ngramsOfOrder(word string, order int) []ngram.Ngram {
	runes := []rune(word)
	if len(runes) < order {
		return nil
	}
	out := make([]ngram.Ngram, 0, len(runes)-order+1)
	for i := 0; i+order <= len(runes); i++ {
		out = append(out, ngram.New(runes[i:i+order]))
	}
	return out
}

package model

import (
	"testing"

	"github.com/polylang/lingua/ngram"
)

func ngramOf(s string) ngram.Ngram {
	return ngram.FromString(s)
}

func TestTrainUnigrams(t *testing.T) {
	t.Parallel()
	m := Train([]string{"aa", "ab"}, 1)
	if m.AbsoluteFrequencies[ngramOf("a")] != 3 {
		t.Errorf("absolute freq of 'a' = %d, want 3", m.AbsoluteFrequencies[ngramOf("a")])
	}
	if m.AbsoluteFrequencies[ngramOf("b")] != 1 {
		t.Errorf("absolute freq of 'b' = %d, want 1", m.AbsoluteFrequencies[ngramOf("b")])
	}
	f := m.RelativeFrequencies[ngramOf("a")]
	if f.Numerator != 3 || f.Denominator != 4 {
		t.Errorf("relative freq of 'a' = %d/%d, want 3/4", f.Numerator, f.Denominator)
	}
}

func TestTrainBigramBackoffDenominator(t *testing.T) {
	t.Parallel()
	// "aab" contributes unigrams a,a,b and bigrams aa,ab.
	m := Train([]string{"aab"}, 2)
	f, ok := m.RelativeFrequencies[ngramOf("ab")]
	if !ok {
		t.Fatal("expected a relative frequency for bigram 'ab'")
	}
	// denominator is the absolute frequency of the unigram prefix "a" (2).
	if f.Denominator != 2 {
		t.Errorf("bigram 'ab' denominator = %d, want 2 (count of prefix 'a')", f.Denominator)
	}
}

func TestTrainBigramUnseenNgramHasNoRelativeFrequency(t *testing.T) {
	t.Parallel()
	m := Train([]string{"ab"}, 2)
	// "ab"'s prefix "a" does occur as a unigram, so this should be present;
	// verify there is no spurious entry for an n-gram that never occurred.
	if _, ok := m.RelativeFrequencies[ngramOf("zz")]; ok {
		t.Error("unexpected relative frequency for an n-gram that never occurred")
	}
}

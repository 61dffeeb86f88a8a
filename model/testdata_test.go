package model

import "testing"

// fromTextNgrams is the round-trip helper invariant from spec.md §8:
// TestDataLanguageModel.fromText(s, k).ngrams contains exactly the set of
// distinct length-k letter-only substrings of s.
func fromTextNgrams(s string, k int) map[string]bool {
	tm := NewTestDataLanguageModel(s, k)
	out := make(map[string]bool, len(tm.Ngrams))
	for n := range tm.Ngrams {
		out[n.String()] = true
	}
	return out
}

func TestTestDataLanguageModelRoundTrip(t *testing.T) {
	t.Parallel()
	got := fromTextNgrams("abcd", 2)
	want := map[string]bool{"ab": true, "bc": true, "cd": true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing expected n-gram %q", k)
		}
	}
}

func TestTestDataLanguageModelSkipsNonLetters(t *testing.T) {
	t.Parallel()
	got := fromTextNgrams("ab cd", 3)
	// The three windows "ab ", "b c" and " cd" all contain the space and are
	// excluded; no run of 3 letters exists on either side of it.
	if len(got) != 0 {
		t.Errorf("got %v, want empty (no 3-letter run crosses the space)", got)
	}
}

func TestTestDataLanguageModelDeduplicates(t *testing.T) {
	t.Parallel()
	got := fromTextNgrams("abab", 2)
	want := map[string]bool{"ab": true, "ba": true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTestDataLanguageModelTooShort(t *testing.T) {
	t.Parallel()
	got := fromTextNgrams("ab", 5)
	if len(got) != 0 {
		t.Errorf("got %v, want empty when text shorter than order", got)
	}
}

package alphabet

import "testing"

func TestMatches(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    Alphabet
		r    rune
		want bool
	}{
		{"latin a", Latin, 'a', true},
		{"latin cyrillic reject", Latin, 'д', false},
		{"cyrillic д", Cyrillic, 'д', true},
		{"han kanji", Han, '日', true},
		{"hiragana", Hiragana, 'の', true},
		{"katakana", Katakana, 'ノ', true},
		{"devanagari", Devanagari, 'अ', true},
		{"arabic", Arabic, 'ا', true},
		{"hebrew", Hebrew, 'א', true},
		{"greek", Greek, 'α', true},
		{"thai", Thai, 'ก', true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Matches(tt.r); got != tt.want {
				t.Errorf("%s.Matches(%q) = %v, want %v", tt.a, tt.r, got, tt.want)
			}
		})
	}
}

func TestWordMatches(t *testing.T) {
	t.Parallel()
	if !Latin.WordMatches("hello") {
		t.Error("Latin.WordMatches(\"hello\") should be true")
	}
	if Latin.WordMatches("hello日") {
		t.Error("Latin.WordMatches(\"hello日\") should be false")
	}
	if Latin.WordMatches("") {
		t.Error("Latin.WordMatches(\"\") should be false")
	}
}

func TestIsLogogram(t *testing.T) {
	t.Parallel()
	if !Han.IsLogogram() {
		t.Error("Han should be logogram-bearing")
	}
	if Latin.IsLogogram() {
		t.Error("Latin should not be logogram-bearing")
	}
}

func TestMatchingAlphabets(t *testing.T) {
	t.Parallel()
	got := MatchingAlphabets('a')
	found := false
	for _, a := range got {
		if a == Latin {
			found = true
		}
	}
	if !found {
		t.Errorf("MatchingAlphabets('a') = %v, want to include Latin", got)
	}
}

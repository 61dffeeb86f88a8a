package language

import (
	"encoding/json"
	"testing"

	"github.com/polylang/lingua/alphabet"
)

func TestUnknownHasNoAlphabetsOrCodes(t *testing.T) {
	t.Parallel()
	if len(Unknown.Alphabets()) != 0 {
		t.Errorf("Unknown.Alphabets() = %v, want empty", Unknown.Alphabets())
	}
	if Unknown.IsoCode639_1() != "" || Unknown.IsoCode639_3() != "" {
		t.Error("Unknown should have no ISO codes")
	}
	for _, l := range All() {
		if l == Unknown {
			t.Error("All() must not include Unknown")
		}
	}
}

func TestIsoCodes(t *testing.T) {
	t.Parallel()
	if English.IsoCode639_1() != "en" || English.IsoCode639_3() != "eng" {
		t.Errorf("English codes = %q/%q, want en/eng", English.IsoCode639_1(), English.IsoCode639_3())
	}
}

func TestByIso6391(t *testing.T) {
	t.Parallel()
	l, ok := ByIso6391("de")
	if !ok || l != German {
		t.Errorf("ByIso6391(\"de\") = %v, %v, want German, true", l, ok)
	}
	if _, ok := ByIso6391("zz"); ok {
		t.Error("ByIso6391(\"zz\") should not be found")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(French)
	if err != nil {
		t.Fatal(err)
	}
	var got Language
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != French {
		t.Errorf("round trip = %v, want French", got)
	}
}

func TestSupportsAlphabet(t *testing.T) {
	t.Parallel()
	if !Russian.SupportsAlphabet(alphabet.Cyrillic) {
		t.Error("Russian should support Cyrillic")
	}
	if Russian.SupportsAlphabet(alphabet.Latin) {
		t.Error("Russian should not support Latin")
	}
}

func TestStillSpoken(t *testing.T) {
	t.Parallel()
	if Latin.IsStillSpoken() {
		t.Error("Latin should not be still spoken")
	}
	if !English.IsStillSpoken() {
		t.Error("English should be still spoken")
	}
}

func TestScriptsUniqueToOneLanguage(t *testing.T) {
	t.Parallel()
	active := []Language{Chinese, Japanese, English}
	unique := ScriptsUniqueToOneLanguage(active)
	if unique[alphabet.Hiragana] != Japanese {
		t.Errorf("Hiragana should be unique to Japanese, got %v", unique[alphabet.Hiragana])
	}
	if _, ok := unique[alphabet.Han]; ok {
		t.Error("Han is shared by Chinese and Japanese, should not be unique")
	}
	if unique[alphabet.Latin] != English {
		t.Errorf("Latin should be unique to English here, got %v", unique[alphabet.Latin])
	}
}

func TestWithUniqueChars(t *testing.T) {
	t.Parallel()
	active := []Language{English, German, Italian}
	got := WithUniqueChars(active)
	if len(got) != 1 || got[0] != German {
		t.Errorf("WithUniqueChars = %v, want [German]", got)
	}
}

func TestContainsChar(t *testing.T) {
	t.Parallel()
	if !German.ContainsChar('ß') {
		t.Error("German should contain ß")
	}
	if German.ContainsChar('x') {
		t.Error("German should not contain x")
	}
}

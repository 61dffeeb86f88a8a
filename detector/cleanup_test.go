package detector

import (
	"testing"

	"github.com/polylang/lingua/language"
)

func TestCleanUp(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", "  Hello World  ", "hello world"},
		{"strips punctuation", "Wow! Really?!", "wow really"},
		{"strips numbers", "room 101 please", "room please"},
		{"collapses whitespace", "too   many\tspaces\nhere", "too many spaces here"},
		{"empty stays empty", "   ", ""},
		{"already normal form is idempotent", "prologue", "prologue"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := cleanUp(tc.in, nil)
			if got != tc.want {
				t.Errorf("cleanUp(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanUpIsIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"Hello, World! 123", "  Ça va très bien.  ", "日本語　です"}
	for _, in := range inputs {
		once := cleanUp(in, nil)
		twice := cleanUp(once, nil)
		if once != twice {
			t.Errorf("cleanUp not idempotent: cleanUp(%q) = %q, cleanUp(that) = %q", in, once, twice)
		}
	}
}

func TestCleanUpUsesTurkicAwareCasingForTurkishAndAzerbaijani(t *testing.T) {
	t.Parallel()
	languages := []language.Language{language.Turkish, language.Azerbaijani}

	got := cleanUp("İstanbul", languages)
	want := "istanbul"
	if got != want {
		t.Errorf("cleanUp(%q, turkic) = %q, want %q", "İstanbul", got, want)
	}

	got = cleanUp("Işık", languages)
	want = "ışık"
	if got != want {
		t.Errorf("cleanUp(%q, turkic) = %q, want %q", "Işık", got, want)
	}

	// Without an active Turkic language, plain Unicode folding applies
	// instead and dotless-ı is not produced from ASCII "I".
	got = cleanUp("Işık", nil)
	if got == want {
		t.Errorf("cleanUp(%q, nil) unexpectedly produced Turkic-aware casing %q", "Işık", got)
	}
}

func TestHasLetters(t *testing.T) {
	t.Parallel()
	if hasLetters("") {
		t.Error("empty string should have no letters")
	}
	if hasLetters("   ") {
		t.Error("whitespace-only string should have no letters")
	}
	if !hasLetters("a") {
		t.Error("expected a letter to be found")
	}
	if !hasLetters("日本語") {
		t.Error("expected CJK letters to be found")
	}
}

package model

import (
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	data := []byte(`{
		"language": "en",
		"ngrams": {
			"1/2": "a b",
			"1/4": "c"
		}
	}`)
	m, err := DecodeJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := m.Probability("a"); !ok || p != 0.5 {
		t.Errorf("Probability(a) = %v, %v, want 0.5, true", p, ok)
	}
	if p, ok := m.Probability("b"); !ok || p != 0.5 {
		t.Errorf("Probability(b) = %v, %v, want 0.5, true", p, ok)
	}
	if p, ok := m.Probability("c"); !ok || p != 0.25 {
		t.Errorf("Probability(c) = %v, %v, want 0.25, true", p, ok)
	}
	if _, ok := m.Probability("missing"); ok {
		t.Error("Probability(missing) should report not-found")
	}
}

func TestDecodeJSONMalformedFraction(t *testing.T) {
	t.Parallel()
	data := []byte(`{"language": "en", "ngrams": {"notafraction": "a"}}`)
	if _, err := DecodeJSON(data); err == nil {
		t.Fatal("expected an error for a malformed fraction key")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	trained := Train([]string{"aa", "ab"}, 1)
	data, err := EncodeJSON("en", trained)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := DecodeJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := loaded.Probability("a")
	if !ok || p != 0.75 {
		t.Errorf("Probability(a) after round trip = %v, %v, want 0.75, true", p, ok)
	}
}

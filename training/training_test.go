package training

import (
	"testing"

	"github.com/polylang/lingua/model"
)

func TestBuildAllOrdersProducesFiveResources(t *testing.T) {
	t.Parallel()
	words := []string{"hello", "world", "hello", "there"}

	resources, err := BuildAllOrders("en", words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 5 {
		t.Fatalf("got %d resources, want 5", len(resources))
	}
	for i, r := range resources {
		wantOrder := i + 1
		if r.Order != wantOrder {
			t.Errorf("resource %d: order = %d, want %d", i, r.Order, wantOrder)
		}
		if len(r.JSON) == 0 {
			t.Errorf("resource %d: empty JSON", i)
		}
		if _, err := model.DecodeJSON(r.JSON); err != nil {
			t.Errorf("resource %d: DecodeJSON failed: %v", i, err)
		}
	}
}

func TestBuildAllOrdersFileNamesMatchDataLayout(t *testing.T) {
	t.Parallel()
	resources, err := BuildAllOrders("de", []string{"hallo", "welt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"unigrams.json", "bigrams.json", "trigrams.json", "quadrigrams.json", "fivegrams.json"}
	for i, r := range resources {
		if r.FileName != want[i] {
			t.Errorf("resource %d: file name = %q, want %q", i, r.FileName, want[i])
		}
	}
}

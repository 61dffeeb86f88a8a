// Package data embeds the bundled per-language n-gram model resources and
// exposes the single Load function the model cache uses to fetch them.
//
// Grounded on `az-ai-labs/data/embed.go`'s go:embed pattern, generalized
// from a handful of flat `[]byte` blobs to a directory tree keyed by
// language and n-gram order, matching spec.md §6's resource path
// convention: "language-models/{iso639_1}/{unigrams|bigrams|trigrams|
// quadrigrams|fivegrams}.json".
package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/polylang/lingua/language"
	"github.com/polylang/lingua/model"
)

//go:embed language-models
var models embed.FS

// orderFileNames maps an n-gram order to its resource file name, per
// spec.md §6/§7.
var orderFileNames = map[int]string{
	1: "unigrams.json",
	2: "bigrams.json",
	3: "trigrams.json",
	4: "quadrigrams.json",
	5: "fivegrams.json",
}

// ErrNoResource is returned by Load when no bundled file exists for the
// requested (language, order) pair. Callers must treat this as "no
// evidence," per spec.md §4.7/§7 ("Missing resource -> empty table"), never
// as a fatal condition.
var ErrNoResource = fmt.Errorf("data: no bundled model resource")

// Load reads and decodes the bundled model for lang at n-gram order.
// Returns ErrNoResource (wrapped) if the resource is absent — the language
// has no data at that order — or a decode error if the bundled JSON is
// malformed (which, per spec.md §7, "must not crash a running detection
// mid-request"; callers convert both into an empty LoadedModel).
func Load(lang language.Language, order int) (model.LoadedModel, error) {
	name, ok := orderFileNames[order]
	if !ok {
		panic(fmt.Sprintf("data: invalid ngram order %d", order))
	}
	path := fmt.Sprintf("language-models/%s/%s", lang.IsoCode639_1(), name)

	raw, err := models.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoResource, path)
		}
		return nil, err
	}

	return model.DecodeJSON(raw)
}

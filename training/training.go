// Package training is the offline model builder: the external collaborator
// spec.md §1 describes as "out of scope" for the detection core, implemented
// here as a real component per SPEC_FULL.md §12.5 so that cmd/train has
// something to call besides bare model functions.
//
// Grounded on internal/TrainingDataLanguageModel.java, internal/Fraction.java
// and internal/io/LanguageModelFilesWriter.java, which drive one corpus
// through every n-gram order and write one resource file per order.
package training

import (
	"fmt"

	"github.com/polylang/lingua/model"
)

// orderFileNames mirrors data/embed.go's resource naming so a directory
// built by this package loads back through data.Load unmodified.
var orderFileNames = map[int]string{
	1: "unigrams.json",
	2: "bigrams.json",
	3: "trigrams.json",
	4: "quadrigrams.json",
	5: "fivegrams.json",
}

// Resource is one order's trained-and-encoded model, named the way
// data/language-models/{iso1}/{name} expects it on disk.
type Resource struct {
	Order    int
	FileName string
	JSON     []byte
}

// BuildAllOrders trains orders 1 through 5 from words (an already cleaned
// and word-split training corpus, per model.Train's own contract) and
// encodes each into the §6 JSON resource format for isoCode.
func BuildAllOrders(isoCode string, words []string) ([]Resource, error) {
	resources := make([]Resource, 0, len(orderFileNames))
	for order := 1; order <= 5; order++ {
		trained := model.Train(words, order)
		encoded, err := model.EncodeJSON(isoCode, trained)
		if err != nil {
			return nil, fmt.Errorf("training: encode order %d: %w", order, err)
		}
		resources = append(resources, Resource{
			Order:    order,
			FileName: orderFileNames[order],
			JSON:     encoded,
		})
	}
	return resources, nil
}

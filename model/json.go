package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// jsonModel is the on-disk shape of one (language, order) resource
// (spec.md §6): a language code and a map from reduced-fraction string to
// a space-separated list of n-grams sharing that probability.
type jsonModel struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// LoadedModel is the runtime representation of one (language, order)
// model: a flat {n-gram string -> probability} table (spec.md §3, "Loaded
// model (runtime)"). A missing key means "no evidence," treated as
// probability 0 by the caller — LoadedModel itself never invents a zero
// entry.
type LoadedModel map[string]float64

// Probability returns the stored probability for ngram s, or (0, false) if
// s has no evidence in this model.
func (m LoadedModel) Probability(s string) (float64, bool) {
	p, ok := m[s]
	return p, ok
}

// DecodeJSON parses the §6 JSON format into a LoadedModel, expanding each
// "numerator/denominator" key into the float probability shared by every
// n-gram listed under it.
func DecodeJSON(data []byte) (LoadedModel, error) {
	var raw jsonModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("model: decode json: %w", err)
	}

	out := make(LoadedModel, len(raw.Ngrams)*4)
	for fracStr, ngramsStr := range raw.Ngrams {
		prob, err := parseFraction(fracStr)
		if err != nil {
			return nil, fmt.Errorf("model: fraction key %q: %w", fracStr, err)
		}
		for _, n := range strings.Fields(ngramsStr) {
			out[n] = prob
		}
	}
	return out, nil
}

// EncodeJSON renders a training model as the §6 JSON format for one
// language and n-gram order.
func EncodeJSON(isoCode string, m TrainingDataLanguageModel) ([]byte, error) {
	grouped := make(map[string][]string)
	for n, frac := range m.RelativeFrequencies {
		key := frac.String()
		grouped[key] = append(grouped[key], n.String())
	}
	ngrams := make(map[string]string, len(grouped))
	for key, list := range grouped {
		ngrams[key] = strings.Join(list, " ")
	}
	return json.MarshalIndent(jsonModel{Language: isoCode, Ngrams: ngrams}, "", "  ")
}

func parseFraction(s string) (float64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed fraction %q", s)
	}
	num, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("numerator: %w", err)
	}
	den, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("denominator: %w", err)
	}
	if den == 0 {
		return 0, fmt.Errorf("zero denominator in %q", s)
	}
	return num / den, nil
}

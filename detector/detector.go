// Package detector implements the detection pipeline described in
// spec.md §4: cleanup, rule-based filtering and short-circuit decision,
// statistical n-gram scoring, confidence scaling, and the final
// minimum-relative-distance tie-break.
package detector

import (
	"sort"

	"github.com/polylang/lingua/alphabet"
	"github.com/polylang/lingua/data"
	"github.com/polylang/lingua/internal/cache"
	"github.com/polylang/lingua/language"
)

// Detector is an immutable, constructed language detector over a fixed set
// of active languages (spec.md §3, "LanguageDetector state").
type Detector struct {
	languages               []language.Language
	minimumRelativeDistance float64
	lowAccuracyMode         bool

	withUniqueChars []language.Language
	uniqueAlphabet  map[alphabet.Alphabet]language.Language

	cache *cache.Cache
}

// Params carries the validated construction options of spec.md §6. Callers
// normally go through the builder package rather than constructing this
// directly.
type Params struct {
	Languages               []language.Language
	MinimumRelativeDistance float64
	PreloadAllLanguageModels bool
	LowAccuracyMode         bool
}

// New constructs a Detector from already-validated params. It does not
// itself validate — that is the builder package's job (spec.md §6/§7,
// "configuration error... raised synchronously at construction").
func New(p Params) *Detector {
	d := &Detector{
		languages:               p.Languages,
		minimumRelativeDistance: p.MinimumRelativeDistance,
		lowAccuracyMode:         p.LowAccuracyMode,
		withUniqueChars:         language.WithUniqueChars(p.Languages),
		uniqueAlphabet:          language.ScriptsUniqueToOneLanguage(p.Languages),
		cache:                   cache.New(data.Load),
	}

	if p.PreloadAllLanguageModels {
		d.cache.PreloadAll(d.languages, allOrders)
	}

	return d
}

// DetectLanguageOf implements spec.md §4.6: the public single-answer
// detection entry point.
func (d *Detector) DetectLanguageOf(text string) language.Language {
	values := d.ComputeLanguageConfidenceValues(text)

	switch len(values) {
	case 0:
		return language.Unknown
	case 1:
		return values[0].Language
	}

	v1, v2 := values[0].Confidence, values[1].Confidence
	if v1 == v2 || v1-v2 < d.minimumRelativeDistance {
		return language.Unknown
	}
	return values[0].Language
}

// ComputeLanguageConfidenceValues implements spec.md §4.1 through §4.6: the
// full pipeline, short-circuiting at the rule stages where possible.
func (d *Detector) ComputeLanguageConfidenceValues(text string) []ConfidenceValue {
	cleaned := cleanUp(text, d.languages)
	if cleaned == "" || !hasLetters(cleaned) {
		return nil
	}

	words := splitWords(cleaned)
	if len(words) == 0 {
		return nil
	}

	if ruleLang := detectLanguageWithRules(words, d.languages, d.withUniqueChars, d.uniqueAlphabet); ruleLang != language.Unknown {
		return []ConfidenceValue{{Language: ruleLang, Confidence: 1.0}}
	}

	candidates := filterLanguagesByRules(words, d.languages)
	if len(candidates) == 1 {
		return []ConfidenceValue{{Language: candidates[0], Confidence: 1.0}}
	}

	cleanedLen := len([]rune(cleaned))
	if d.lowAccuracyMode && cleanedLen < 3 {
		return nil
	}

	orders := chosenOrders(cleanedLen, d.lowAccuracyMode)
	values := scoreAllOrders(d.cache, candidates, cleaned, orders)

	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Confidence > values[j].Confidence
	})

	return values
}

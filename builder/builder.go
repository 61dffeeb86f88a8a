// Package builder assembles a detector.Detector from validated
// construction options (spec.md §6). It is the only place detector
// construction errors are raised; detector.New itself trusts its inputs.
//
// Grounded on the Java original's LanguageDetectorBuilder (fromLanguages /
// withMinimumRelativeDistance / withPreloadedLanguageModels /
// withLowAccuracyMode chain) reworked into the corpus's Go idiom: a plain
// option struct built up with chained setters, validated once in Build,
// matching 4O4-Not-F0und-Gura-Bot's config.go "CheckAndMergeDefaultConfig"
// validate-on-finish pattern (SPEC_FULL.md §10.2).
package builder

import (
	"fmt"

	"github.com/polylang/lingua/detector"
	"github.com/polylang/lingua/language"
)

// Builder accumulates detector construction options before validating them
// once, in Build.
type Builder struct {
	languages               []language.Language
	minimumRelativeDistance float64
	preloadAllLanguageModels bool
	lowAccuracyMode         bool
}

// FromLanguages starts a Builder over the given languages. UNKNOWN is
// silently dropped if present, matching the Java original's
// fromLanguages behavior.
func FromLanguages(languages ...language.Language) *Builder {
	b := &Builder{}
	seen := make(map[language.Language]bool, len(languages))
	for _, l := range languages {
		if l == language.Unknown || seen[l] {
			continue
		}
		seen[l] = true
		b.languages = append(b.languages, l)
	}
	return b
}

// FromAllLanguages starts a Builder over the entire catalog.
func FromAllLanguages() *Builder {
	return FromLanguages(language.All()...)
}

// FromAllSpokenLanguages starts a Builder over every catalog language that
// is still spoken (spec.md §3, "still spoken" attribute).
func FromAllSpokenLanguages() *Builder {
	var spoken []language.Language
	for _, l := range language.All() {
		if l.IsStillSpoken() {
			spoken = append(spoken, l)
		}
	}
	return FromLanguages(spoken...)
}

// FromIsoCodes639_1 starts a Builder over the languages named by the given
// ISO 639-1 codes. Unrecognized codes are dropped silently; Build still
// enforces the minimum of two languages.
func FromIsoCodes639_1(codes ...string) *Builder {
	var langs []language.Language
	for _, code := range codes {
		if l, ok := language.ByIso6391(code); ok {
			langs = append(langs, l)
		}
	}
	return FromLanguages(langs...)
}

// WithMinimumRelativeDistance sets the tie-break threshold (spec.md §6).
// Validity is checked at Build time, not here, so calls can be chained in
// any order.
func (b *Builder) WithMinimumRelativeDistance(distance float64) *Builder {
	b.minimumRelativeDistance = distance
	return b
}

// WithPreloadedLanguageModels enables eager preloading of every (language,
// order) model at construction time (spec.md §6).
func (b *Builder) WithPreloadedLanguageModels() *Builder {
	b.preloadAllLanguageModels = true
	return b
}

// WithLowAccuracyMode restricts statistical scoring to trigrams only
// (spec.md §4.5, §6).
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracyMode = true
	return b
}

// Build validates the accumulated options and constructs a Detector. The
// only two failure modes are spec.md §6's: fewer than two languages, and a
// minimumRelativeDistance outside [0, 0.99).
func (b *Builder) Build() (*detector.Detector, error) {
	if len(b.languages) < 2 {
		return nil, fmt.Errorf("builder: at least 2 languages are required, got %d", len(b.languages))
	}
	if b.minimumRelativeDistance < 0.0 || b.minimumRelativeDistance >= 0.99 {
		return nil, fmt.Errorf("builder: minimumRelativeDistance must lie in [0.0, 0.99), got %v", b.minimumRelativeDistance)
	}

	return detector.New(detector.Params{
		Languages:                b.languages,
		MinimumRelativeDistance:  b.minimumRelativeDistance,
		PreloadAllLanguageModels: b.preloadAllLanguageModels,
		LowAccuracyMode:          b.lowAccuracyMode,
	}), nil
}

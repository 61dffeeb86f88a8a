package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylang/lingua/language"
)

func TestBuildRejectsFewerThanTwoLanguages(t *testing.T) {
	t.Parallel()
	_, err := FromLanguages(language.English).Build()
	require.Error(t, err, "expected an error with only one language")
}

func TestBuildDedupesLanguages(t *testing.T) {
	t.Parallel()
	_, err := FromLanguages(language.English, language.English).Build()
	require.Error(t, err, "a single language repeated is still only one language")
}

func TestBuildRejectsUnknownOnly(t *testing.T) {
	t.Parallel()
	_, err := FromLanguages(language.Unknown, language.English).Build()
	require.Error(t, err, "UNKNOWN is dropped, leaving only one language")
}

func TestBuildRejectsOutOfRangeMinimumRelativeDistance(t *testing.T) {
	t.Parallel()
	cases := []float64{-0.01, 0.99, 1.0}
	for _, d := range cases {
		_, err := FromLanguages(language.English, language.German).WithMinimumRelativeDistance(d).Build()
		assert.Errorf(t, err, "distance %v: expected an error", d)
	}
}

func TestBuildAcceptsValidConfiguration(t *testing.T) {
	t.Parallel()
	d, err := FromLanguages(language.English, language.German).
		WithMinimumRelativeDistance(0.25).
		WithLowAccuracyMode().
		Build()
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestFromAllSpokenLanguagesExcludesLatin(t *testing.T) {
	t.Parallel()
	b := FromAllSpokenLanguages()
	assert.NotContains(t, b.languages, language.Latin, "Latin is not still spoken and should be excluded")
}

func TestFromIsoCodes639_1(t *testing.T) {
	t.Parallel()
	b := FromIsoCodes639_1("en", "de", "not-a-code")
	assert.Len(t, b.languages, 2, "unrecognized code should be dropped")
}

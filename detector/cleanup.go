package detector

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/polylang/lingua/azcase"
	poly "github.com/polylang/lingua/language"
)

// caseFolder performs locale-independent Unicode lowercase folding
// (spec.md §4.1 step 2), matching MeKo-Christian-pogo's use of
// golang.org/x/text/cases for text normalization ahead of script analysis.
var caseFolder = cases.Lower(language.Und)

// cleanUp normalizes raw text per spec.md §4.1:
//  1. trim leading/trailing whitespace
//  2. fold to lowercase (Unicode-aware)
//  3. remove punctuation
//  4. remove numbers
//  5. collapse whitespace runs to a single space
//
// Step 2 uses the Azerbaijani/Turkish dotted-I-aware lowercasing
// (azcase.ToLower) whenever one of those languages is active, since plain
// Unicode case folding collapses the dotted/dotless I distinction that
// Detector.withUniqueChars relies on to tell the two languages apart.
func cleanUp(text string, languages []poly.Language) string {
	text = strings.TrimSpace(text)
	text = norm.NFC.String(text)
	if needsTurkicCasing(languages) {
		text = azcase.ToLower(text)
	} else {
		text = caseFolder.String(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	lastWasSpace := false
	for _, r := range text {
		switch {
		case unicode.IsPunct(r) || unicode.IsNumber(r):
			continue
		case unicode.IsSpace(r):
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

func needsTurkicCasing(languages []poly.Language) bool {
	for _, l := range languages {
		if l == poly.Turkish || l == poly.Azerbaijani {
			return true
		}
	}
	return false
}

// hasLetters reports whether s contains at least one letter. An empty or
// letter-free cleaned result short-circuits detection (spec.md §4.1).
func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

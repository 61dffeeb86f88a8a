// Package chars holds the CharsToLanguagesMap (spec.md §3): a static
// mapping from individual diacritic/special characters to the set of
// catalog languages known to use them. It is used during rule-based
// candidate filtering (spec.md §4.4) to up-weight candidates beyond what
// whole-alphabet matching alone can distinguish — e.g. ö alone doesn't say
// German vs. Swedish vs. Turkish, but tallying it across a whole input
// narrows the field together with the other evidence.
//
// Grounded on the Java original's `internal/Constants.kt`
// CHARS_TO_LANGUAGES_MAPPING table; hand-curated here for the reduced
// 41-language catalog (SPEC_FULL.md §12.3/§12.4).
package chars

import "github.com/polylang/lingua/language"

// charsToLanguages maps a single rune to every language known to use it.
var charsToLanguages = map[rune][]language.Language{
	'ä': {language.German, language.Swedish, language.Finnish},
	'ö': {language.German, language.Swedish, language.Finnish, language.Hungarian, language.Turkish, language.Azerbaijani},
	'ü': {language.German, language.Turkish, language.Azerbaijani, language.Hungarian},
	'ß': {language.German},
	'ñ': {language.Spanish},
	'¿': {language.Spanish},
	'¡': {language.Spanish},
	'œ': {language.French},
	'ç': {language.French, language.Turkish, language.Azerbaijani, language.Portuguese},
	'é': {language.French, language.Hungarian, language.Italian, language.Portuguese, language.Spanish, language.Vietnamese, language.Czech},
	'è': {language.French, language.Italian},
	'à': {language.French, language.Italian, language.Portuguese},
	'ã': {language.Portuguese},
	'õ': {language.Portuguese},
	'ø': {language.Danish, language.Norwegian},
	'å': {language.Swedish, language.Danish, language.Norwegian},
	'æ': {language.Danish, language.Norwegian},
	'ı': {language.Turkish, language.Azerbaijani},
	'ğ': {language.Turkish, language.Azerbaijani},
	'ş': {language.Turkish, language.Azerbaijani, language.Romanian},
	'ə': {language.Azerbaijani},
	'č': {language.Czech, language.Slovak, language.Croatian},
	'š': {language.Czech, language.Slovak, language.Croatian},
	'ž': {language.Czech, language.Slovak, language.Croatian},
	'ř': {language.Czech},
	'ď': {language.Czech},
	'ť': {language.Czech},
	'ů': {language.Czech},
	'ľ': {language.Slovak},
	'ŕ': {language.Slovak},
	'ą': {language.Polish, language.Lithuanian},
	'ę': {language.Polish, language.Lithuanian},
	'ł': {language.Polish},
	'ń': {language.Polish},
	'ś': {language.Polish},
	'ź': {language.Polish},
	'ż': {language.Polish},
	'đ': {language.Croatian},
	'ő': {language.Hungarian},
	'ű': {language.Hungarian},
	'ă': {language.Romanian, language.Vietnamese},
	'ș': {language.Romanian},
	'ț': {language.Romanian},
	'ģ': {language.Latvian},
	'ķ': {language.Latvian},
	'ļ': {language.Latvian},
	'ņ': {language.Latvian},
	'ė': {language.Lithuanian},
	'į': {language.Lithuanian},
	'ų': {language.Lithuanian},
	'ū': {language.Lithuanian},
	'ạ': {language.Vietnamese},
	'ả': {language.Vietnamese},
	'ẫ': {language.Vietnamese},
	'ặ': {language.Vietnamese},
	'ы': {language.Russian},
	'э': {language.Russian},
	'щ': {language.Russian},
	'ї': {language.Ukrainian},
	'є': {language.Ukrainian},
	'ґ': {language.Ukrainian},
	'ў': {language.Belarusian},
	'پ': {language.Persian},
	'چ': {language.Persian},
	'ژ': {language.Persian},
	'گ': {language.Persian},
}

// LanguagesFor returns the catalog languages known to use rune r, or nil if
// r carries no particular signal.
func LanguagesFor(r rune) []language.Language {
	return charsToLanguages[r]
}

// Has reports whether r is a tracked character at all.
func Has(r rune) bool {
	_, ok := charsToLanguages[r]
	return ok
}

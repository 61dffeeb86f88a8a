// Package language is the static catalog of natural languages the detector
// can identify (spec.md §2 item 3, §3 "Language"). Grounded on
// `az-ai-labs/detect/detect.go`'s enum+stringer+JSON pattern and the Java
// original's `Language.kt`/`IsoCode639_1`/`IsoCode639_3` enums.
package language

import (
	"encoding/json"
	"fmt"

	"github.com/polylang/lingua/alphabet"
)

// Language identifies a natural language, or the sentinel Unknown.
type Language int

// entry holds the static attributes of one catalog language.
type entry struct {
	name        string
	iso1        string
	iso3        string
	alphabets   []alphabet.Alphabet
	uniqueChars string
	stillSpoken bool
}

const (
	Unknown Language = iota
	English
	German
	French
	Spanish
	Portuguese
	Italian
	Dutch
	Swedish
	Danish
	Norwegian
	Finnish
	Polish
	Czech
	Slovak
	Hungarian
	Romanian
	Croatian
	Latvian
	Lithuanian
	Vietnamese
	Indonesian
	Turkish
	Azerbaijani
	Russian
	Ukrainian
	Bulgarian
	Serbian
	Belarusian
	Chinese
	Japanese
	Hindi
	Marathi
	Arabic
	Persian
	Hebrew
	Greek
	Thai
	Korean
	Georgian
	Armenian
	Latin
	numLanguages
)

// catalog is indexed by Language. Unknown (index 0) is the zero entry:
// no ISO codes, no alphabets — spec.md §3's invariant that UNKNOWN "has no
// alphabets and no ISO codes."
var catalog = [numLanguages]entry{
	Unknown:     {name: "UNKNOWN"},
	English:     {name: "ENGLISH", iso1: "en", iso3: "eng", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	German:      {name: "GERMAN", iso1: "de", iso3: "deu", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "äöüß", stillSpoken: true},
	French:      {name: "FRENCH", iso1: "fr", iso3: "fra", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "œ", stillSpoken: true},
	Spanish:     {name: "SPANISH", iso1: "es", iso3: "spa", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "¿¡ñ", stillSpoken: true},
	Portuguese:  {name: "PORTUGUESE", iso1: "pt", iso3: "por", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ãõ", stillSpoken: true},
	Italian:     {name: "ITALIAN", iso1: "it", iso3: "ita", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	Dutch:       {name: "DUTCH", iso1: "nl", iso3: "nld", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	Swedish:     {name: "SWEDISH", iso1: "sv", iso3: "swe", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "åäö", stillSpoken: true},
	Danish:      {name: "DANISH", iso1: "da", iso3: "dan", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "æø", stillSpoken: true},
	Norwegian:   {name: "NORWEGIAN", iso1: "nb", iso3: "nob", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	Finnish:     {name: "FINNISH", iso1: "fi", iso3: "fin", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	Polish:      {name: "POLISH", iso1: "pl", iso3: "pol", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ąćęłńśźż", stillSpoken: true},
	Czech:       {name: "CZECH", iso1: "cs", iso3: "ces", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "áčďěňřšťůž", stillSpoken: true},
	Slovak:      {name: "SLOVAK", iso1: "sk", iso3: "slk", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ľŕ", stillSpoken: true},
	Hungarian:   {name: "HUNGARIAN", iso1: "hu", iso3: "hun", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "őű", stillSpoken: true},
	Romanian:    {name: "ROMANIAN", iso1: "ro", iso3: "ron", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ășț", stillSpoken: true},
	Croatian:    {name: "CROATIAN", iso1: "hr", iso3: "hrv", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "đ", stillSpoken: true},
	Latvian:     {name: "LATVIAN", iso1: "lv", iso3: "lav", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ģķļņ", stillSpoken: true},
	Lithuanian:  {name: "LITHUANIAN", iso1: "lt", iso3: "lit", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ąęėįųū", stillSpoken: true},
	Vietnamese:  {name: "VIETNAMESE", iso1: "vi", iso3: "vie", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ạảẫặ", stillSpoken: true},
	Indonesian:  {name: "INDONESIAN", iso1: "id", iso3: "ind", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: true},
	Turkish:     {name: "TURKISH", iso1: "tr", iso3: "tur", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "ığş", stillSpoken: true},
	Azerbaijani: {name: "AZERBAIJANI", iso1: "az", iso3: "aze", alphabets: []alphabet.Alphabet{alphabet.Latin}, uniqueChars: "əğ", stillSpoken: true},
	Russian:     {name: "RUSSIAN", iso1: "ru", iso3: "rus", alphabets: []alphabet.Alphabet{alphabet.Cyrillic}, uniqueChars: "ыэщ", stillSpoken: true},
	Ukrainian:   {name: "UKRAINIAN", iso1: "uk", iso3: "ukr", alphabets: []alphabet.Alphabet{alphabet.Cyrillic}, uniqueChars: "їєґ", stillSpoken: true},
	Bulgarian:   {name: "BULGARIAN", iso1: "bg", iso3: "bul", alphabets: []alphabet.Alphabet{alphabet.Cyrillic}, stillSpoken: true},
	Serbian:     {name: "SERBIAN", iso1: "sr", iso3: "srp", alphabets: []alphabet.Alphabet{alphabet.Cyrillic}, stillSpoken: true},
	Belarusian:  {name: "BELARUSIAN", iso1: "be", iso3: "bel", alphabets: []alphabet.Alphabet{alphabet.Cyrillic}, uniqueChars: "ў", stillSpoken: true},
	Chinese:     {name: "CHINESE", iso1: "zh", iso3: "zho", alphabets: []alphabet.Alphabet{alphabet.Han}, stillSpoken: true},
	Japanese:    {name: "JAPANESE", iso1: "ja", iso3: "jpn", alphabets: []alphabet.Alphabet{alphabet.Hiragana, alphabet.Katakana, alphabet.Han}, stillSpoken: true},
	Hindi:       {name: "HINDI", iso1: "hi", iso3: "hin", alphabets: []alphabet.Alphabet{alphabet.Devanagari}, stillSpoken: true},
	Marathi:     {name: "MARATHI", iso1: "mr", iso3: "mar", alphabets: []alphabet.Alphabet{alphabet.Devanagari}, stillSpoken: true},
	Arabic:      {name: "ARABIC", iso1: "ar", iso3: "ara", alphabets: []alphabet.Alphabet{alphabet.Arabic}, stillSpoken: true},
	Persian:     {name: "PERSIAN", iso1: "fa", iso3: "fas", alphabets: []alphabet.Alphabet{alphabet.Arabic}, uniqueChars: "پچژگ", stillSpoken: true},
	Hebrew:      {name: "HEBREW", iso1: "he", iso3: "heb", alphabets: []alphabet.Alphabet{alphabet.Hebrew}, stillSpoken: true},
	Greek:       {name: "GREEK", iso1: "el", iso3: "ell", alphabets: []alphabet.Alphabet{alphabet.Greek}, stillSpoken: true},
	Thai:        {name: "THAI", iso1: "th", iso3: "tha", alphabets: []alphabet.Alphabet{alphabet.Thai}, stillSpoken: true},
	Korean:      {name: "KOREAN", iso1: "ko", iso3: "kor", alphabets: []alphabet.Alphabet{alphabet.Hangul}, stillSpoken: true},
	Georgian:    {name: "GEORGIAN", iso1: "ka", iso3: "kat", alphabets: []alphabet.Alphabet{alphabet.Georgian}, stillSpoken: true},
	Armenian:    {name: "ARMENIAN", iso1: "hy", iso3: "hye", alphabets: []alphabet.Alphabet{alphabet.Armenian}, stillSpoken: true},
	Latin:       {name: "LATIN", iso1: "la", iso3: "lat", alphabets: []alphabet.Alphabet{alphabet.Latin}, stillSpoken: false},
}

// String returns the language's catalog name ("UNKNOWN" for Unknown), or
// "Language(n)" for values outside the catalog.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(catalog) {
		return catalog[l].name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// MarshalJSON encodes the language as its catalog name.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a catalog name into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, e := range catalog {
		if e.name == s {
			*l = Language(i)
			return nil
		}
	}
	return fmt.Errorf("language: unknown language %q", s)
}

// IsoCode639_1 returns the two-letter ISO 639-1 code, or "" for Unknown.
func (l Language) IsoCode639_1() string {
	if int(l) < 0 || int(l) >= len(catalog) {
		return ""
	}
	return catalog[l].iso1
}

// IsoCode639_3 returns the three-letter ISO 639-3 code, or "" for Unknown.
func (l Language) IsoCode639_3() string {
	if int(l) < 0 || int(l) >= len(catalog) {
		return ""
	}
	return catalog[l].iso3
}

// Alphabets returns the scripts this language is supported in. Unknown
// returns nil, satisfying spec.md §3's "UNKNOWN has no alphabets" invariant.
func (l Language) Alphabets() []alphabet.Alphabet {
	if int(l) < 0 || int(l) >= len(catalog) {
		return nil
	}
	return catalog[l].alphabets
}

// UniqueChars returns the string of characters whose presence strongly
// indicates this language, or "" if it has none.
func (l Language) UniqueChars() string {
	if int(l) < 0 || int(l) >= len(catalog) {
		return ""
	}
	return catalog[l].uniqueChars
}

// IsStillSpoken reports whether the language has living native speakers.
func (l Language) IsStillSpoken() bool {
	if int(l) < 0 || int(l) >= len(catalog) {
		return false
	}
	return catalog[l].stillSpoken
}

// SupportsAlphabet reports whether l is written in alphabet a.
func (l Language) SupportsAlphabet(a alphabet.Alphabet) bool {
	for _, la := range l.Alphabets() {
		if la == a {
			return true
		}
	}
	return false
}

// ByIso6391 looks up a language by its ISO 639-1 code (case-sensitive,
// lower-case codes as stored in the catalog).
func ByIso6391(code string) (Language, bool) {
	for i, e := range catalog {
		if i != int(Unknown) && e.iso1 == code {
			return Language(i), true
		}
	}
	return Unknown, false
}

// All returns every catalog language except Unknown.
func All() []Language {
	out := make([]Language, 0, numLanguages-1)
	for i := Language(1); i < numLanguages; i++ {
		out = append(out, i)
	}
	return out
}

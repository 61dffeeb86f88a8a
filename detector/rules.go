package detector

import (
	"github.com/polylang/lingua/alphabet"
	"github.com/polylang/lingua/internal/chars"
	"github.com/polylang/lingua/language"
)

// detectLanguageWithRules implements spec.md §4.3: a purely
// character/script-driven pass that can short-circuit the whole pipeline.
// Callers distinguish "stop here" from "fall through to §4.4" by checking
// the returned Language against language.Unknown.
func detectLanguageWithRules(words []string, languages, withUniqueChars []language.Language, uniqueAlphabet map[alphabet.Alphabet]language.Language) language.Language {
	languageSet := make(map[language.Language]bool, len(languages))
	for _, l := range languages {
		languageSet[l] = true
	}

	totalTally := map[language.Language]int{}

	for _, word := range words {
		tally := map[language.Language]int{}
		anyCredit := false

		for _, r := range word {
			for _, credited := range creditsForRune(r, languageSet, withUniqueChars, uniqueAlphabet) {
				tally[credited]++
				anyCredit = true
			}
		}

		var wordResult language.Language
		switch {
		case !anyCredit:
			wordResult = language.Unknown
		case len(tally) == 1:
			for l := range tally {
				wordResult = l
			}
		default:
			wordResult = pluralityWinner(tally)
		}

		totalTally[wordResult]++
	}

	return decideFromTextTally(totalTally, len(words))
}

// creditsForRune returns the languages a single rune credits, per spec.md
// §4.3's character-level rule chain.
func creditsForRune(r rune, languageSet map[language.Language]bool, withUniqueChars []language.Language, uniqueAlphabet map[alphabet.Alphabet]language.Language) []language.Language {
	matching := alphabet.MatchingAlphabets(r)

	for _, a := range matching {
		if owner, ok := uniqueAlphabet[a]; ok {
			return []language.Language{owner}
		}
	}

	for _, a := range matching {
		if a == alphabet.Han && languageSet[language.Chinese] {
			return []language.Language{language.Chinese}
		}
	}

	for _, a := range matching {
		if (a == alphabet.Hiragana || a == alphabet.Katakana) && languageSet[language.Japanese] {
			return []language.Language{language.Japanese}
		}
	}

	isLatinCyrillicDevanagari := false
	for _, a := range matching {
		if a == alphabet.Latin || a == alphabet.Cyrillic || a == alphabet.Devanagari {
			isLatinCyrillicDevanagari = true
		}
	}
	if isLatinCyrillicDevanagari {
		var credited []language.Language
		for _, l := range withUniqueChars {
			if l.ContainsChar(r) {
				credited = append(credited, l)
			}
		}
		return credited
	}

	return nil
}

// pluralityWinner returns the strict plurality language in tally, or
// language.Unknown on a tie (spec.md §4.3's word- and text-level tie rule).
func pluralityWinner(tally map[language.Language]int) language.Language {
	best := language.Unknown
	bestCount := -1
	tied := false
	for l, c := range tally {
		switch {
		case c > bestCount:
			best, bestCount, tied = l, c, false
		case c == bestCount:
			tied = true
		}
	}
	if tied {
		return language.Unknown
	}
	return best
}

// decideFromTextTally implements spec.md §4.3's text-level aggregation over
// the per-word decisions.
func decideFromTextTally(tally map[language.Language]int, wordCount int) language.Language {
	unknownCount := tally[language.Unknown]
	if float64(unknownCount) < 0.5*float64(wordCount) {
		delete(tally, language.Unknown)
	}

	switch len(tally) {
	case 0:
		return language.Unknown
	case 1:
		for l := range tally {
			return l
		}
	}

	if len(tally) == 2 {
		_, hasZh := tally[language.Chinese]
		_, hasJa := tally[language.Japanese]
		if hasZh && hasJa {
			return language.Japanese
		}
	}

	return pluralityWinner(tally)
}

// filterLanguagesByRules implements spec.md §4.4: narrowing the active
// language set by whole-word alphabet matches and diacritic/special
// character tallies, ahead of the statistical pass.
func filterLanguagesByRules(words []string, languages []language.Language) []language.Language {
	alphabetCounts := map[alphabet.Alphabet]int{}
	for _, word := range words {
		for _, a := range alphabet.All() {
			if a.WordMatches(word) {
				alphabetCounts[a]++
			}
		}
	}

	filtered := pickAlphabetFiltered(alphabetCounts, languages)

	charTally := map[language.Language]int{}
	survivorSet := make(map[language.Language]bool, len(filtered))
	for _, l := range filtered {
		survivorSet[l] = true
	}
	for _, word := range words {
		for _, r := range word {
			for _, l := range chars.LanguagesFor(r) {
				if survivorSet[l] {
					charTally[l]++
				}
			}
		}
	}

	threshold := 0.5 * float64(len(words))
	var refined []language.Language
	for _, l := range filtered {
		if float64(charTally[l]) >= threshold {
			refined = append(refined, l)
		}
	}

	if len(refined) == 0 {
		return filtered
	}
	return refined
}

// pickAlphabetFiltered implements the alphabet-plurality step of spec.md
// §4.4: no matches -> keep all; tied top matches -> keep all; otherwise keep
// only languages supporting the single plurality alphabet.
func pickAlphabetFiltered(counts map[alphabet.Alphabet]int, languages []language.Language) []language.Language {
	if len(counts) == 0 {
		return languages
	}

	best := -1
	var bestAlphabets []alphabet.Alphabet
	for a, c := range counts {
		switch {
		case c > best:
			best = c
			bestAlphabets = []alphabet.Alphabet{a}
		case c == best:
			bestAlphabets = append(bestAlphabets, a)
		}
	}

	if len(counts) > 1 && allEqual(counts) {
		return languages
	}
	if len(bestAlphabets) != 1 {
		return languages
	}

	return language.LanguagesSupportingAlphabet(languages, bestAlphabets[0])
}

func allEqual(counts map[alphabet.Alphabet]int) bool {
	var first int
	seen := false
	for _, c := range counts {
		if !seen {
			first = c
			seen = true
			continue
		}
		if c != first {
			return false
		}
	}
	return true
}

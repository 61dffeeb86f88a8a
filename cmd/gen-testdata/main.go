// Command gen-testdata writes benchmark fixtures from a raw text corpus:
// a trimmed sentences file, a single-words file (words of 5+ letters), and
// a word-pairs file built from consecutive word pairs (spec.md §2 item 2,
// "out of scope... test-data generator").
//
// Grounded on the Java original's TestDataFilesWriter
// (createAndWriteSentencesFile / createAndWriteSingleWordsFile /
// createAndWriteWordPairsFile), reworked into the flag-driven,
// log-per-stage shape of MeKo-Christian-pogo's cmd/generate-test-data/main.go
// (SPEC_FULL.md §12.10).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

const defaultMaximumLines = 1000

func main() {
	lang := flag.String("lang", "", "ISO 639-1 code naming the output files")
	inputPath := flag.String("input", "", "path to a raw text corpus")
	outputDir := flag.String("output", "testdata", "output directory root")
	maximumLines := flag.Int("max-lines", defaultMaximumLines, "maximum lines written per output file")
	flag.Parse()

	if *lang == "" || *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: gen-testdata -lang <iso1> -input <corpus.txt> [-output <dir>] [-max-lines <n>]\n")
		os.Exit(1)
	}

	lines, err := readLines(*inputPath)
	if err != nil {
		logrus.WithError(err).WithField("input", *inputPath).Fatal("gen-testdata: reading corpus failed")
	}

	if err := writeSentencesFile(*outputDir, *lang, lines, *maximumLines); err != nil {
		logrus.WithError(err).Fatal("gen-testdata: writing sentences file failed")
	}

	words, err := writeSingleWordsFile(*outputDir, *lang, lines, *maximumLines)
	if err != nil {
		logrus.WithError(err).Fatal("gen-testdata: writing single-words file failed")
	}

	if err := writeWordPairsFile(*outputDir, *lang, words, *maximumLines); err != nil {
		logrus.WithError(err).Fatal("gen-testdata: writing word-pairs file failed")
	}

	logrus.WithFields(logrus.Fields{
		"language":     *lang,
		"sentences":    min(len(lines), *maximumLines),
		"single_words": len(words),
	}).Info("gen-testdata: done")
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return lines, nil
}

func writeSentencesFile(outputDir, lang string, lines []string, maximumLines int) error {
	dir := filepath.Join(outputDir, "sentences")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sentences dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, lang+".txt"))
	if err != nil {
		return fmt.Errorf("create sentences file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for i, line := range lines {
		if i >= maximumLines {
			break
		}
		processed := strings.ReplaceAll(collapseWhitespace(line), `"`, "")
		if _, err := fmt.Fprintln(w, processed); err != nil {
			return fmt.Errorf("write sentence: %w", err)
		}
	}
	return w.Flush()
}

// writeSingleWordsFile extracts words of 5 or more letters from every
// line, in order, writing up to maximumLines of them and returning the
// full (unbounded) list for word-pair generation.
func writeSingleWordsFile(outputDir, lang string, lines []string, maximumLines int) ([]string, error) {
	dir := filepath.Join(outputDir, "single-words")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create single-words dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, lang+".txt"))
	if err != nil {
		return nil, fmt.Errorf("create single-words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	var words []string
	written := 0
	for _, line := range lines {
		for _, raw := range strings.Fields(stripPunctAndNumbers(line)) {
			word := strings.ToLower(strings.TrimSpace(raw))
			if !isEligibleSingleWord(word) {
				continue
			}
			words = append(words, word)
			if written < maximumLines {
				if _, err := fmt.Fprintln(w, word); err != nil {
					return nil, fmt.Errorf("write word: %w", err)
				}
				written++
			}
		}
	}
	return words, w.Flush()
}

// writeWordPairsFile builds deduplicated consecutive word pairs from words
// (pairing (0,1), (2,3), ... as the Java original does) and writes up to
// maximumLines of them.
func writeWordPairsFile(outputDir, lang string, words []string, maximumLines int) error {
	dir := filepath.Join(outputDir, "word-pairs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create word-pairs dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, lang+".txt"))
	if err != nil {
		return fmt.Errorf("create word-pairs file: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := map[string]struct{}{}
	var pairs []string
	for i := 0; i+1 < len(words); i += 2 {
		pair := words[i] + " " + words[i+1]
		if _, ok := seen[pair]; !ok {
			seen[pair] = struct{}{}
			pairs = append(pairs, pair)
		}
	}

	w := bufio.NewWriter(f)
	for i, pair := range pairs {
		if i >= maximumLines {
			break
		}
		if _, err := fmt.Fprintln(w, pair); err != nil {
			return fmt.Errorf("write word pair: %w", err)
		}
	}
	return w.Flush()
}

func isEligibleSingleWord(word string) bool {
	const minLetters = 5
	runes := []rune(word)
	if len(runes) < minLetters {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func stripPunctAndNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsNumber(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}
	return b.String()
}

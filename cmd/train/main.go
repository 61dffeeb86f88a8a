// Command train builds a full set of language-model JSON resources
// (spec.md §6) from a plain-text corpus: one language per run, one output
// file per n-gram order 1 through 5, written under <output>/<lang>/ so the
// result loads back through data.Load unmodified.
//
//	go run ./cmd/train -lang en -input corpus/en.txt -output data/language-models
//
// Adapted from az-ai-labs/cmd/dictgen's flag+bufio.Scanner corpus-ingestion
// shape (SPEC_FULL.md §12.5); the domain is now n-gram frequency training
// via the training package rather than dictionary lemma extraction.
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

	"github.com/polylang/lingua/training"
)

const scannerBufSize = 1 << 20 // 1 MB

func main() {
	lang := flag.String("lang", "", "ISO 639-1 code written into the output resources")
	inputPath := flag.String("input", "", "path to a plain-text training corpus")
	outputDir := flag.String("output", "", "output directory root (resources written to <output>/<lang>/)")
	flag.Parse()

	if *lang == "" || *inputPath == "" || *outputDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: train -lang <iso1> -input <corpus.txt> -output <language-models-dir>\n")
		os.Exit(1)
	}

	words, err := readWords(*inputPath)
	if err != nil {
		logrus.WithError(err).WithField("input", *inputPath).Fatal("train: reading corpus failed")
	}

	logrus.WithFields(logrus.Fields{
		"language": *lang,
		"words":    len(words),
	}).Info("train: corpus loaded")

	resources, err := training.BuildAllOrders(*lang, words)
	if err != nil {
		logrus.WithError(err).Fatal("train: building model resources failed")
	}

	langDir := filepath.Join(*outputDir, *lang)
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		logrus.WithError(err).WithField("dir", langDir).Fatal("train: creating output directory failed")
	}

	for _, r := range resources {
		path := filepath.Join(langDir, r.FileName)
		if err := os.WriteFile(path, r.JSON, 0o644); err != nil {
			logrus.WithError(err).WithField("output", path).Fatal("train: writing model resource failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"resources": len(resources),
		"dir":       langDir,
	}).Info("train: done")
}

// readWords splits the corpus at whitespace, lowercases each token, and
// keeps only tokens made entirely of letters — matching the Ngram value
// type's "letter codepoints" contract (spec.md §3).
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if isAllLetters(word) {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return words, nil
}

func isAllLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Package model implements the n-gram frequency models: the training-time
// exact-fraction model (spec.md §3 "TrainingDataLanguageModel"), the
// runtime loaded float model ("Loaded model (runtime)"), and the per-input
// test model ("TestDataLanguageModel"). Grounded on the Java original's
// `internal/Fraction.java`, `internal/TrainingDataLanguageModel.java`,
// `internal/TestDataLanguageModel.java` and `internal/JsonLanguageModel.java`.
package model

import "fmt"

// Fraction is an exact, always-reduced positive fraction p/q with 0 < p <= q
// (spec.md §3 invariant). It is kept exact through training and collapsed
// to a float only at load time (spec.md §9, "Exact fractions vs floats").
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// NewFraction builds a reduced Fraction from p/q. Panics if q <= 0 or
// p <= 0 or p > q — constructing an out-of-range fraction is a programmer
// error in the training pipeline, never a runtime data condition.
func NewFraction(p, q int64) Fraction {
	if q <= 0 || p <= 0 || p > q {
		panic(fmt.Sprintf("model: invalid fraction %d/%d", p, q))
	}
	g := gcd(p, q)
	return Fraction{Numerator: p / g, Denominator: q / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// String renders the fraction as "p/q", the key format of the §6 JSON model.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// Float64 returns the fraction's decimal value.
func (f Fraction) Float64() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

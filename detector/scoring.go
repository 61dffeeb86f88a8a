package detector

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/polylang/lingua/internal/cache"
	"github.com/polylang/lingua/language"
	"github.com/polylang/lingua/model"
	"github.com/polylang/lingua/ngram"
)

// ConfidenceValue pairs a candidate language with its relative confidence,
// as returned by ComputeLanguageConfidenceValues (spec.md §4.5/§6).
type ConfidenceValue struct {
	Language   language.Language
	Confidence float64
}

// allOrders is the full set of n-gram orders the statistical pass can use
// (spec.md §4.5).
var allOrders = []int{1, 2, 3, 4, 5}

// chosenOrders implements spec.md §4.5's order-selection rule.
func chosenOrders(cleanedLen int, lowAccuracyMode bool) []int {
	if lowAccuracyMode || cleanedLen >= 120 {
		return []int{3}
	}
	orders := make([]int, 0, len(allOrders))
	for _, k := range allOrders {
		if k <= cleanedLen {
			orders = append(orders, k)
		}
	}
	return orders
}

// testNgrams builds the distinct length-k letter-only substrings of
// cleaned, per spec.md §4.5 step 1, via model.NewTestDataLanguageModel's
// windowing rule.
func testNgrams(cleaned string, k int) []ngram.Ngram {
	set := model.NewTestDataLanguageModel(cleaned, k).Ngrams
	out := make([]ngram.Ngram, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	return out
}

// orderResult is the per-order outcome of scoreOrder: per-language summed
// log-probability and, for order 1 only, the unigram coverage count.
type orderResult struct {
	order     int
	scores    map[language.Language]float64
	unigramCv map[language.Language]int
}

// scoreOrder implements spec.md §4.5 steps 1-4 for a single n-gram order.
func scoreOrder(c *cache.Cache, candidates []language.Language, cleaned string, k int) orderResult {
	ngrams := testNgrams(cleaned, k)
	res := orderResult{order: k, scores: map[language.Language]float64{}}
	if k == 1 {
		res.unigramCv = map[language.Language]int{}
	}

	for _, lang := range candidates {
		var sum float64
		for _, n := range ngrams {
			p := firstPositiveProbability(c, lang, n)
			if p > 0 {
				sum += math.Log(p)
				if k == 1 {
					res.unigramCv[lang]++
				}
			}
		}
		if sum != 0 {
			res.scores[lang] = sum
		}
	}

	return res
}

// firstPositiveProbability walks n's back-off range (spec.md §3, §4.5 step
// 2) and returns the first prefix's probability that is positive in lang's
// loaded model at that prefix's own order. Returns 0 if none is positive.
func firstPositiveProbability(c *cache.Cache, lang language.Language, n ngram.Ngram) float64 {
	for _, prefix := range ngram.NewRange(n).All() {
		m := c.Get(lang, prefix.Len())
		if p, ok := m.Probability(prefix.String()); ok && p > 0 {
			return p
		}
	}
	return 0
}

// scoreAllOrders fans out one task per chosen n-gram order (spec.md §5) and
// combines the results per spec.md §4.5: sum across orders, then normalize
// by unigram coverage where available, then scale by the maximum into
// [0, 1] confidence values.
func scoreAllOrders(c *cache.Cache, candidates []language.Language, cleaned string, orders []int) []ConfidenceValue {
	results := make([]orderResult, len(orders))

	var g errgroup.Group
	for i, k := range orders {
		i, k := i, k
		g.Go(func() error {
			results[i] = scoreOrder(c, candidates, cleaned, k)
			return nil
		})
	}
	_ = g.Wait()

	summed := map[language.Language]float64{}
	var unigramCv map[language.Language]int
	for _, r := range results {
		for lang, s := range r.scores {
			summed[lang] += s
		}
		if r.order == 1 {
			unigramCv = r.unigramCv
		}
	}

	for lang, cv := range unigramCv {
		if cv > 0 {
			if s, ok := summed[lang]; ok {
				summed[lang] = s / float64(cv)
			}
		}
	}

	for lang, s := range summed {
		if s == 0 {
			delete(summed, lang)
		}
	}

	if len(summed) == 0 {
		return nil
	}

	max := math.Inf(-1)
	for _, s := range summed {
		if s > max {
			max = s
		}
	}

	values := make([]ConfidenceValue, 0, len(summed))
	for lang, s := range summed {
		var conf float64
		if max != 0 {
			conf = max / s
		}
		values = append(values, ConfidenceValue{Language: lang, Confidence: conf})
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].Confidence != values[j].Confidence {
			return values[i].Confidence > values[j].Confidence
		}
		return values[i].Language < values[j].Language
	})

	return values
}

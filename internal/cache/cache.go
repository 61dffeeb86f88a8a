// Package cache implements the shared, process-wide model cache described
// in spec.md §3 ("Shared model cache") and §9 ("Concurrency coordinator").
// Reads never block once a (language, order) entry exists; concurrent
// misses for the same key collapse into a single load via
// golang.org/x/sync/singleflight, matching the promoted-to-direct
// dependency recorded in SPEC_FULL.md §11.
package cache

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/polylang/lingua/language"
	"github.com/polylang/lingua/model"
)

// Loader fetches the raw model resource for one (language, order) pair.
// data.Load implements this; it is passed in rather than imported directly
// so cache stays free of any particular resource-storage mechanism.
type Loader func(lang language.Language, order int) (model.LoadedModel, error)

// Cache is a shared, key-indexed store of loaded models. Safe for
// concurrent use. The zero value is not usable; use New.
type Cache struct {
	load  Loader
	store sync.Map // key -> model.LoadedModel
	group singleflight.Group
}

// New builds a Cache that fetches misses through load.
func New(load Loader) *Cache {
	return &Cache{load: load}
}

func key(lang language.Language, order int) string {
	return fmt.Sprintf("%d/%s", order, lang.IsoCode639_1())
}

// Get returns the loaded model for (lang, order), populating it on first
// use. A missing or malformed resource is logged and treated as an empty
// model (spec.md §4.7/§7) — Get never returns an error to the caller; the
// detector must never fail a detection because one language's data file is
// absent.
func (c *Cache) Get(lang language.Language, order int) model.LoadedModel {
	k := key(lang, order)

	if v, ok := c.store.Load(k); ok {
		return v.(model.LoadedModel)
	}

	v, _, _ := c.group.Do(k, func() (interface{}, error) {
		if v, ok := c.store.Load(k); ok {
			return v, nil
		}
		m, err := c.load(lang, order)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"language": lang.IsoCode639_1(),
				"order":    order,
			}).WithError(err).Warn("model resource unavailable, continuing with no evidence")
			m = model.LoadedModel{}
		}
		c.store.Store(k, m)
		return m, nil
	})

	return v.(model.LoadedModel)
}

// PreloadAll eagerly populates the cache for every (language, order) pair
// in languages x orders, one task per pair, matching spec.md §5's
// "preloading just invokes the same loader eagerly for every (language, k)
// pair in parallel."
func (c *Cache) PreloadAll(languages []language.Language, orders []int) {
	var g errgroup.Group
	for _, lang := range languages {
		for _, order := range orders {
			lang, order := lang, order
			g.Go(func() error {
				c.Get(lang, order)
				return nil
			})
		}
	}
	_ = g.Wait()
}

// Package cache keeps compiled path patterns around between node filter
// invocations, so repeated --path flags do not recompile the same pattern.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/schemax/pkg/schema"
)

// PatternCache is a thread-safe LRU of compiled path predicates keyed by
// their pattern text.
type PatternCache struct {
	cache *lru.Cache[string, func(string) bool]
}

// NewPatternCache creates an LRU holding at most maxItems compiled patterns.
func NewPatternCache(maxItems int) (*PatternCache, error) {
	c, err := lru.New[string, func(string) bool](maxItems)
	if err != nil {
		return nil, err
	}
	return &PatternCache{cache: c}, nil
}

// Predicate returns the compiled predicate for a pattern, compiling and
// caching it on first use.
func (c *PatternCache) Predicate(pattern string) (func(string) bool, error) {
	if pred, ok := c.cache.Get(pattern); ok {
		return pred, nil
	}
	pred, err := schema.PathPredicate(pattern)
	if err != nil {
		return nil, err
	}
	c.cache.Add(pattern, pred)
	return pred, nil
}

// Len returns the current number of cached patterns.
func (c *PatternCache) Len() int {
	return c.cache.Len()
}

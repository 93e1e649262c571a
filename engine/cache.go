package engine

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheEntry struct {
	tokens  []string
	results []Result
}

// resultCache memoizes the selection for repeated token sequences. A nil
// cache never hits.
type resultCache struct {
	entries *lru.Cache[uint64, cacheEntry]
}

func newResultCache(size int) (*resultCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache of size %d: %w", size, err)
	}
	return &resultCache{entries: entries}, nil
}

func cacheKey(tokens []string) uint64 {
	digest := xxhash.New()
	for _, token := range tokens {
		digest.WriteString(token)
		digest.Write([]byte{0})
	}
	return digest.Sum64()
}

func (c *resultCache) get(tokens []string) ([]Result, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.entries.Get(cacheKey(tokens))
	if !ok || !slices.Equal(entry.tokens, tokens) {
		return nil, false
	}
	return slices.Clone(entry.results), true
}

func (c *resultCache) add(tokens []string, results []Result) {
	if c == nil {
		return
	}
	c.entries.Add(cacheKey(tokens), cacheEntry{
		tokens:  slices.Clone(tokens),
		results: slices.Clone(results),
	})
}

func (c *resultCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

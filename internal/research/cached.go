package research

import (
	"context"
	"log"

	"labelscan/internal/domain"
	"labelscan/internal/port"
)

// CachedResearcher fronts another researcher with a result cache. Cache
// errors are logged and treated as misses; failures are never cached.
type CachedResearcher struct {
	inner port.Researcher
	cache port.ResearchCache
}

// NewCachedResearcher wraps a researcher with a cache.
func NewCachedResearcher(inner port.Researcher, cache port.ResearchCache) *CachedResearcher {
	return &CachedResearcher{inner: inner, cache: cache}
}

func (c *CachedResearcher) Research(ctx context.Context, ingredientName string) (*domain.ResearchResult, error) {
	if result, ok, err := c.cache.Get(ctx, ingredientName); err != nil {
		log.Printf("research.CachedResearcher: cache get for %q failed: %v", ingredientName, err)
	} else if ok {
		return result, nil
	}

	result, err := c.inner.Research(ctx, ingredientName)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, ingredientName, result); err != nil {
		log.Printf("research.CachedResearcher: cache set for %q failed: %v", ingredientName, err)
	}
	return result, nil
}

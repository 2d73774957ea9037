package backend

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached remembers successful documents per URL for a fixed TTL. Failures
// are never cached.
type Cached struct {
	next  Extractor
	cache *cache.Cache
}

// NewCached wraps next. Expired entries are purged every 2*ttl.
func NewCached(next Extractor, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) ExtractWebsiteStyles(ctx context.Context, url string) (string, error) {
	if x, found := c.cache.Get(url); found {
		return x.(string), nil
	}

	doc, err := c.next.ExtractWebsiteStyles(ctx, url)
	if err != nil {
		return "", err
	}

	c.cache.Set(url, doc, cache.DefaultExpiration)
	return doc, nil
}

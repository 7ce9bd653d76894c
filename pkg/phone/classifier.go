package phone

import (
	"time"

	"github.com/dmitrymomot/moroccokit/pkg/cache"
)

// Classifier memoizes Classify results in a bounded LRU keyed by the
// normalized number. It is a performance layer only: results are
// derived, never authoritative, and the stateless Classify remains
// fully equivalent.
type Classifier struct {
	cache *cache.Cache[string, Info]
}

// NewClassifier creates a classifier with the given cache capacity and
// entry TTL. A zero ttl keeps entries until evicted by capacity.
// Options (such as cache.WithClock) are forwarded to the cache, which
// keeps TTL behavior testable without real waits.
func NewClassifier(capacity int, ttl time.Duration, opts ...cache.Option) *Classifier {
	opts = append([]cache.Option{cache.WithTTL(ttl)}, opts...)
	return &Classifier{cache: cache.New[string, Info](capacity, opts...)}
}

// Classify returns the cached classification for the number, computing
// and storing it on first sight.
func (c *Classifier) Classify(raw string) (Info, error) {
	nsn, err := nationalNumber(raw)
	if err != nil {
		return Info{}, err
	}

	if info, ok := c.cache.Get(nsn); ok {
		return info, nil
	}

	info, err := Classify("0" + nsn)
	if err != nil {
		return Info{}, err
	}
	c.cache.Put(nsn, info)
	return info, nil
}

// PurgeExpired drops every cached entry older than the TTL and reports
// how many were removed.
func (c *Classifier) PurgeExpired() int {
	return c.cache.PurgeExpired()
}

// Len reports the number of cached classifications.
func (c *Classifier) Len() int {
	return c.cache.Len()
}

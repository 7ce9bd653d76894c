// Package cache provides a generic, thread-safe LRU cache with optional
// time-based expiry, used by the phone classifier to memoize derived
// results.
//
// The cache is bounded two ways: by capacity (least recently used entries
// are evicted first) and, when a TTL is configured, by age (entries older
// than the TTL are dropped on access or swept wholesale with
// PurgeExpired). The clock is injectable so expiry is testable without
// real wall-clock waits:
//
//	c := cache.New[string, phone.Info](256,
//	    cache.WithTTL(5*time.Minute),
//	    cache.WithClock(fakeNow),
//	)
//
// A zero TTL disables expiry entirely, leaving a plain LRU. All
// operations are O(1) and safe for concurrent use.
package cache

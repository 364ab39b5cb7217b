// Package cache provides the append-only keyed store behind the glyph cache.
//
// Entries are never evicted: callers key the cache by a bounded set of
// signatures (style, shape, strand and threshold combinations) rather than
// by feature, so the cache size is bounded by configuration, not data volume.
//
//	c := cache.New[string, *Instance]()
//	inst := c.GetOrCreate(sig, func() *Instance { return build() })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

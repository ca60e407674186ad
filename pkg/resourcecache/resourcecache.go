// Package resourcecache provides a process-lifetime cache for collections
// fetched from external services. Each cache owns one snapshot, refreshes it
// when the freshness window lapses, collapses concurrent refreshes into a
// single upstream call, and notifies subscribers whenever the snapshot
// changes. A failed refresh leaves the previous snapshot in place.
package resourcecache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the resource from its upstream source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Observer receives cache hit/miss notifications, typically for metrics.
type Observer interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

// Options tunes a cache instance. Zero values fall back to sane defaults;
// Clock exists so tests can drive expiry deterministically.
type Options struct {
	Clock    func() time.Time
	Logger   *zap.Logger
	Observer Observer
}

// Cache is a TTL-guarded, single-flight snapshot of one fetched resource.
type Cache[T any] struct {
	name  string
	ttl   time.Duration
	fetch FetchFunc[T]

	clock    func() time.Time
	logger   *zap.Logger
	observer Observer

	group singleflight.Group

	mu        sync.RWMutex
	snapshot  T
	fetchedAt time.Time
	populated bool
	listeners []func(T)
}

// New constructs a cache around the given fetch function.
func New[T any](name string, ttl time.Duration, fetch FetchFunc[T], opts Options) *Cache[T] {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache[T]{
		name:     name,
		ttl:      ttl,
		fetch:    fetch,
		clock:    clock,
		logger:   logger,
		observer: opts.Observer,
	}
}

// Load returns the cached snapshot when it is younger than the TTL, otherwise
// refreshes it. Concurrent callers during a refresh share the same upstream
// call and observe the same result. force skips the freshness check but still
// joins an in-flight refresh.
func (c *Cache[T]) Load(ctx context.Context, force bool) (T, error) {
	start := c.clock()

	if !force {
		if snapshot, ok := c.fresh(); ok {
			c.observe(true, start)
			return snapshot, nil
		}
	}

	result, err, _ := c.group.Do(c.name, func() (interface{}, error) {
		// Re-check under single-flight: a caller queued behind a refresh
		// that just completed should not trigger another one, and is
		// served from the snapshot, so it counts as a hit.
		if !force {
			if snapshot, ok := c.fresh(); ok {
				return loadResult{value: snapshot, hit: true}, nil
			}
		}

		data, err := c.fetch(ctx)
		if err != nil {
			c.logger.Warn("resource fetch failed",
				zap.String("resource", c.name), zap.Error(err))
			return nil, err
		}
		c.replace(data)
		return loadResult{value: data}, nil
	})
	if err != nil {
		c.observe(false, start)
		var zero T
		return zero, err
	}
	loaded := result.(loadResult)
	c.observe(loaded.hit, start)
	return loaded.value.(T), nil
}

// loadResult carries the snapshot out of the single-flight closure along with
// whether it was served from the cache rather than fetched.
type loadResult struct {
	value interface{}
	hit   bool
}

// Fresh reports whether a Load right now would be served from the snapshot.
func (c *Cache[T]) Fresh() bool {
	_, ok := c.fresh()
	return ok
}

// Peek returns the current snapshot without any freshness check or fetch.
func (c *Cache[T]) Peek() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.populated
}

// Subscribe registers a listener invoked synchronously on every snapshot
// replacement, regardless of which caller triggered it.
func (c *Cache[T]) Subscribe(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Invalidate forces the next Load to refresh. The stale snapshot stays
// readable through Peek until then.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

func (c *Cache[T]) fresh() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.populated && c.clock().Sub(c.fetchedAt) < c.ttl {
		return c.snapshot, true
	}
	var zero T
	return zero, false
}

// replace swaps the snapshot wholesale and fans out to listeners.
func (c *Cache[T]) replace(data T) {
	c.mu.Lock()
	c.snapshot = data
	c.fetchedAt = c.clock()
	c.populated = true
	listeners := append([]func(T){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(data)
	}
}

func (c *Cache[T]) observe(hit bool, start time.Time) {
	if c.observer != nil {
		c.observer.RecordCacheOperation(hit, c.clock().Sub(start))
	}
}

// ListCache caches a slice resource and supports targeted entry updates.
type ListCache[E any] struct {
	*Cache[[]E]
	key func(E) string
}

// NewList constructs a list cache; key extracts each entry's identity.
func NewList[E any](name string, ttl time.Duration, fetch FetchFunc[[]E], key func(E) string, opts Options) *ListCache[E] {
	return &ListCache[E]{Cache: New(name, ttl, fetch, opts), key: key}
}

// UpdateOne replaces the entry with the same identity, or appends when no
// entry matches. Listeners fire exactly as they do for a full refresh.
func (c *ListCache[E]) UpdateOne(updated E) {
	id := c.key(updated)

	c.mu.Lock()
	next := make([]E, len(c.snapshot))
	copy(next, c.snapshot)
	replaced := false
	for i, entry := range next {
		if c.key(entry) == id {
			next[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, updated)
	}
	c.snapshot = next
	c.populated = true
	listeners := append([]func([]E){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

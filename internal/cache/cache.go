// Package cache provides an in-process read-through cache with per-entry
// expiry and per-key single-flight.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the maximum number of entries kept when no size is given.
const DefaultSize = 1024

// Producer computes the value for a key on a miss.
type Producer func(ctx context.Context) (any, error)

// Recorder receives cache outcomes, labelled by key namespace.
type Recorder interface {
	Hit(namespace string)
	Miss(namespace string)
	ProducerError(namespace string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a read-through cache. Entries are never returned at or after
// their expiry; the LRU bound only caps memory.
type Cache struct {
	entries  *lru.Cache[string, entry]
	flights  singleflight.Group
	clock    clockwork.Clock
	recorder Recorder
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the real clock, mainly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithRecorder reports hits, misses and producer failures to r.
func WithRecorder(r Recorder) Option {
	return func(c *Cache) { c.recorder = r }
}

// New creates a Cache holding at most size entries.
func New(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: create lru: %w", err)
	}

	c := &Cache{
		entries:  entries,
		clock:    clockwork.NewRealClock(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetOrCompute returns the cached value for key if it has not expired.
// Otherwise it runs producer, stores a successful result for ttl and
// returns it. Failures are returned as-is and never cached. A ttl <= 0
// bypasses storage entirely.
//
// Concurrent misses on the same key share one producer call. The producer
// runs detached from the caller's cancellation; a caller whose ctx ends
// gets ctx.Err() while the shared call completes for everyone else.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, producer Producer) (any, error) {
	ns := namespace(key)

	if v, ok := c.lookup(key); ok {
		c.recorder.Hit(ns)
		return v, nil
	}
	c.recorder.Miss(ns)

	if ttl <= 0 {
		v, err := producer(ctx)
		if err != nil {
			c.recorder.ProducerError(ns)
		}
		return v, err
	}

	detached := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(key, func() (any, error) {
		// Another flight may have filled the slot between our lookup and now.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := safeProduce(detached, producer)
		if err != nil {
			c.recorder.ProducerError(ns)
			return nil, err
		}
		c.entries.Add(key, entry{value: v, expiresAt: c.clock.Now().Add(ttl)})
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

// safeProduce converts a producer panic into an error. singleflight
// re-panics on a goroutine of its own, where no handler can recover it.
func safeProduce(ctx context.Context, producer Producer) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("cache: producer panic: %v", r)
		}
	}()
	return producer(ctx)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) lookup(key string) (any, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		c.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

// GetOrCompute is the typed form of Cache.GetOrCompute.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, producer func(context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.GetOrCompute(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return producer(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T, not %T", key, v, zero)
	}
	return typed, nil
}

func namespace(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}

type nopRecorder struct{}

func (nopRecorder) Hit(string)           {}
func (nopRecorder) Miss(string)          {}
func (nopRecorder) ProducerError(string) {}

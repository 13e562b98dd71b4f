package pageset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/pagepath/internal/metrics"
)

// Static defaults, used when Options leaves a field zero.
const (
	DefaultTTL           = 5 * time.Minute
	DefaultMaxEntries    = 1000
	DefaultEvictInterval = time.Minute
)

// Options tunes a Cache.
type Options struct {
	TTL           time.Duration
	MaxEntries    int
	EvictInterval time.Duration
}

// LoadFunc fetches one decoded page set.
type LoadFunc func(ctx context.Context, id string) (*PageSet, error)

type entry struct {
	ps       *PageSet
	loadedAt int64 // UnixNano
	lastSeen int64 // UnixNano
}

// Cache lazily loads page sets, stores them in a sync.Map, refreshes them
// after TTL, and evicts them on idle TTL or LRU pressure.
type Cache struct {
	load        LoadFunc
	sfg         singleflight.Group
	m           sync.Map
	evictTicker *time.Ticker
	stop        chan struct{}
	stopOnce    sync.Once
	ttl         time.Duration
	maxEntries  int
}

// New constructs a Cache backed by db and starts the background evictor.
func New(db *sqlx.DB, opts Options) *Cache {
	return NewWithLoader(func(ctx context.Context, id string) (*PageSet, error) {
		rec, err := ByID(ctx, db, id)
		if err != nil {
			return nil, err
		}
		return rec.Decode()
	}, opts)
}

// NewWithLoader is New with a custom loader.
func NewWithLoader(load LoadFunc, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.EvictInterval <= 0 {
		opts.EvictInterval = DefaultEvictInterval
	}
	c := &Cache{
		load:       load,
		ttl:        opts.TTL,
		maxEntries: opts.MaxEntries,
		stop:       make(chan struct{}),
	}
	c.evictTicker = time.NewTicker(opts.EvictInterval)
	go c.evictLoop()
	return c
}

// Get returns the page set for id, loading it on demand or when the cached
// copy is older than the TTL.
func (c *Cache) Get(ctx context.Context, id string) (*PageSet, error) {
	if ps, ok := c.fresh(id); ok {
		return ps, nil
	}

	v, err, _ := c.sfg.Do(id, func() (interface{}, error) {
		// Double-check after singleflight barrier.
		if ps, ok := c.fresh(id); ok {
			return ps, nil
		}
		ps, err := c.load(ctx, id)
		if err != nil {
			metrics.PageSetLoadErrorsTotal.Inc()
			return nil, err
		}
		now := time.Now().UnixNano()
		if _, existed := c.m.Swap(id, &entry{ps: ps, loadedAt: now, lastSeen: now}); !existed {
			metrics.PageSetsCached.Inc()
		}
		metrics.PageSetLoadTotal.Inc()
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PageSet), nil
}

func (c *Cache) fresh(id string) (*PageSet, bool) {
	v, ok := c.m.Load(id)
	if !ok {
		return nil, false
	}
	ent := v.(*entry)
	now := time.Now().UnixNano()
	if time.Duration(now-ent.loadedAt) > c.ttl {
		return nil, false
	}
	atomic.StoreInt64(&ent.lastSeen, now)
	return ent.ps, true
}

// Len reports how many page sets are cached.
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool { n++; return true })
	return n
}

// Close stops the evictor.  The cache stays readable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		c.evictTicker.Stop()
		close(c.stop)
	})
}

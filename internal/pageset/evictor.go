// evictor.go houses the eviction loop for Cache.  Every EvictInterval it
// scans the map and removes:
//
//   - page sets idle longer than the TTL
//   - least-recently-used page sets when map size exceeds maxEntries
//
// Each eviction event is logged and updates Prometheus counters.
package pageset

import (
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/metrics"
)

func (c *Cache) evictLoop() {
	for {
		select {
		case <-c.stop:
			return
		case t := <-c.evictTicker.C:
			c.evictOnce(t)
		}
	}
}

// evictOnce runs one idle pass and one LRU pass as of now.
func (c *Cache) evictOnce(now time.Time) {
	var count int

	// ----------------------------------------------------------------
	// Idle eviction pass
	// ----------------------------------------------------------------
	c.m.Range(func(key, value any) bool {
		ent := value.(*entry)
		idle := now.Sub(time.Unix(0, atomic.LoadInt64(&ent.lastSeen)))
		if idle > c.ttl {
			if c.m.CompareAndDelete(key, value) {
				zap.L().Debug("page set evicted",
					zap.Any("id", key), zap.Duration("idle", idle.Truncate(time.Second)))
				metrics.PageSetEvictTotal.Inc()
				metrics.PageSetsCached.Dec()
			}
			return true
		}
		count++
		return true
	})

	// ----------------------------------------------------------------
	// LRU eviction pass
	// ----------------------------------------------------------------
	if c.maxEntries > 0 && count > c.maxEntries {
		type kv struct {
			key   string
			value any
			at    int64
		}
		var all []kv
		c.m.Range(func(key, value any) bool {
			ent := value.(*entry)
			all = append(all, kv{key: key.(string), value: value, at: atomic.LoadInt64(&ent.lastSeen)})
			return true
		})
		sort.Slice(all, func(i, j int) bool { return all[i].at < all[j].at })
		for i := 0; i < len(all)-c.maxEntries; i++ {
			if c.m.CompareAndDelete(all[i].key, all[i].value) {
				zap.L().Debug("page set evicted (LRU pressure)", zap.String("id", all[i].key))
				metrics.PageSetEvictTotal.Inc()
				metrics.PageSetsCached.Dec()
			}
		}
	}
}

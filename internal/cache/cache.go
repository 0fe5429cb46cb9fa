package cache

import (
	"github.com/dgraph-io/ristretto"

	"resourcemetrics/internal/domain"
)

type WidgetCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*WidgetCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &WidgetCache{cache: cache}, nil
}

func (c *WidgetCache) Get(code string) (domain.Widget, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return domain.Widget{}, false
	}
	return val.(domain.Widget), true
}

func (c *WidgetCache) Set(w domain.Widget) {
	cost := int64(len(w.Code) + len(w.Name) + len(w.Color) + 32)
	c.cache.Set(w.Code, w, cost)
}

func (c *WidgetCache) Delete(code string) {
	c.cache.Del(code)
}

// Wait blocks until buffered writes are applied.
func (c *WidgetCache) Wait() {
	c.cache.Wait()
}

func (c *WidgetCache) Close() {
	c.cache.Close()
}

func (c *WidgetCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

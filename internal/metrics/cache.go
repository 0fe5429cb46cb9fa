package metrics

import (
	"sync"
	"sync/atomic"
)

// IdentityCache maps identities to the handle first stored for them.
// It is safe for concurrent use without caller-side locking.
type IdentityCache[H any] struct {
	entries   sync.Map // map[string]H
	size      atomic.Int64
	discarded atomic.Int64
}

func NewIdentityCache[H any]() *IdentityCache[H] {
	return &IdentityCache[H]{}
}

// GetOrCreate returns the handle cached for id, creating it with factory on
// a miss. Concurrent misses may each call factory; only the first handle
// stored is ever returned. Factory errors are returned and nothing is stored.
func (c *IdentityCache[H]) GetOrCreate(id Identity, factory func(Identity) (H, error)) (H, error) {
	key := id.Key()
	if v, ok := c.entries.Load(key); ok {
		return v.(H), nil
	}

	candidate, err := factory(id)
	if err != nil {
		var zero H
		return zero, err
	}

	actual, loaded := c.entries.LoadOrStore(key, candidate)
	if loaded {
		c.discarded.Add(1)
	} else {
		c.size.Add(1)
	}
	return actual.(H), nil
}

// Get returns the cached handle for id without creating one.
func (c *IdentityCache[H]) Get(id Identity) (H, bool) {
	v, ok := c.entries.Load(id.Key())
	if !ok {
		var zero H
		return zero, false
	}
	return v.(H), true
}

func (c *IdentityCache[H]) Len() int {
	return int(c.size.Load())
}

// Discarded reports how many candidates lost an insertion race.
func (c *IdentityCache[H]) Discarded() int64 {
	return c.discarded.Load()
}

package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryBackend keeps metrics in process. Metrics are created once per
// name and tags and reused afterwards.
type MemoryBackend struct {
	counters sync.Map // map[string]*MemoryCounter
	timers   sync.Map // map[string]*MemoryTimer
	// per-key init mutexes
	inits   sync.Map // map[string]*sync.Mutex
	created atomic.Int64
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) keyMu(key string) *sync.Mutex {
	m, _ := b.inits.LoadOrStore(key, &sync.Mutex{})
	return m.(*sync.Mutex)
}

func (b *MemoryBackend) Counter(name string, tags Tags) (Counter, error) {
	id := Identity{Kind: KindCounter, Name: name, Tags: tags}
	v, err := b.getOrCreate(&b.counters, id, func() any {
		return &MemoryCounter{id: id}
	})
	if err != nil {
		return nil, err
	}
	return v.(*MemoryCounter), nil
}

func (b *MemoryBackend) Timer(name string, tags Tags) (Timer, error) {
	id := Identity{Kind: KindTimer, Name: name, Tags: tags}
	v, err := b.getOrCreate(&b.timers, id, func() any {
		return &MemoryTimer{id: id}
	})
	if err != nil {
		return nil, err
	}
	return v.(*MemoryTimer), nil
}

func (b *MemoryBackend) getOrCreate(store *sync.Map, id Identity, create func() any) (any, error) {
	if strings.TrimSpace(id.Name) == "" {
		return nil, fmt.Errorf("%s %q: %w", id.Kind, id.Name, ErrInvalidName)
	}

	key := id.Key()
	if v, ok := store.Load(key); ok {
		return v, nil
	}

	km := b.keyMu(key)
	km.Lock()
	defer km.Unlock()

	if v, ok := store.Load(key); ok {
		return v, nil
	}
	v := create()
	store.Store(key, v)
	b.created.Add(1)
	return v, nil
}

// Created reports how many distinct metrics were created.
func (b *MemoryBackend) Created() int64 {
	return b.created.Load()
}

func (b *MemoryBackend) FindCounter(name string, tags Tags) (*MemoryCounter, bool) {
	v, ok := b.counters.Load(Identity{Kind: KindCounter, Name: name, Tags: tags}.Key())
	if !ok {
		return nil, false
	}
	return v.(*MemoryCounter), true
}

func (b *MemoryBackend) FindTimer(name string, tags Tags) (*MemoryTimer, bool) {
	v, ok := b.timers.Load(Identity{Kind: KindTimer, Name: name, Tags: tags}.Key())
	if !ok {
		return nil, false
	}
	return v.(*MemoryTimer), true
}

// MeterSnapshot is a point-in-time view of one metric.
type MeterSnapshot struct {
	Identity Identity
	Count    int64
	Total    time.Duration
	Max      time.Duration
}

// Snapshot returns every metric sorted by identity. It may race with
// concurrent creations.
func (b *MemoryBackend) Snapshot() []MeterSnapshot {
	var out []MeterSnapshot
	b.counters.Range(func(_, v any) bool {
		c := v.(*MemoryCounter)
		out = append(out, MeterSnapshot{Identity: c.id, Count: c.Count()})
		return true
	})
	b.timers.Range(func(_, v any) bool {
		t := v.(*MemoryTimer)
		s := t.Snapshot()
		out = append(out, MeterSnapshot{Identity: t.id, Count: s.Count, Total: s.Total, Max: s.Max})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Identity.Key() < out[j].Identity.Key() })
	return out
}

// MemoryCounter is a thread-safe monotonic counter.
type MemoryCounter struct {
	id  Identity
	val atomic.Int64
}

func (c *MemoryCounter) Inc() { c.val.Add(1) }

func (c *MemoryCounter) Count() int64 { return c.val.Load() }

// MemoryTimer tracks count, total and max of recorded durations.
type MemoryTimer struct {
	id    Identity
	mu    sync.Mutex
	count int64
	total time.Duration
	max   time.Duration
}

func (t *MemoryTimer) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.mu.Lock()
	t.count++
	t.total += d
	if d > t.max {
		t.max = d
	}
	t.mu.Unlock()
}

type TimerSnapshot struct {
	Count int64
	Total time.Duration
	Max   time.Duration
	Mean  time.Duration
}

func (t *MemoryTimer) Snapshot() TimerSnapshot {
	t.mu.Lock()
	count, total, maxD := t.count, t.total, t.max
	t.mu.Unlock()

	var mean time.Duration
	if count > 0 {
		mean = total / time.Duration(count)
	}
	return TimerSnapshot{Count: count, Total: total, Max: maxD, Mean: mean}
}

package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// MemoryRepository keeps widgets in process. Ids start at 1.
type MemoryRepository struct {
	seq  atomic.Uint64
	mu   sync.RWMutex
	rows map[uint64]WidgetRow
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[uint64]WidgetRow)}
}

func (r *MemoryRepository) NextIDs(_ context.Context, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, nil
	}
	last := r.seq.Add(uint64(count))
	ids := make([]uint64, count)
	for i := range ids {
		ids[i] = last - uint64(count) + uint64(i) + 1
	}
	return ids, nil
}

func (r *MemoryRepository) CreateBatch(_ context.Context, rows []WidgetRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.rows[row.ID] = row
	}
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id uint64) (WidgetRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return WidgetRow{}, ErrNotFound
	}
	return row, nil
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]WidgetRow, error) {
	r.mu.RLock()
	rows := make([]WidgetRow, 0, len(r.rows))
	for _, row := range r.rows {
		rows = append(rows, row)
	}
	r.mu.RUnlock()

	slices.SortFunc(rows, func(a, b WidgetRow) int { return cmp.Compare(a.ID, b.ID) })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryRepository) Close() {}

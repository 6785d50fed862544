package memory

import (
	"context"
	"sync"

	"pet-care-assistant/internal/domain/records"
)

type recordsRepo struct {
	mu    sync.RWMutex
	items []records.Record
}

func NewRecordsRepo() records.Repository {
	return &recordsRepo{}
}

func (r *recordsRepo) Append(ctx context.Context, rec records.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, rec)
	return nil
}

func (r *recordsRepo) LoadAll(ctx context.Context) ([]records.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.Record, len(r.items))
	copy(out, r.items)
	return out, nil
}

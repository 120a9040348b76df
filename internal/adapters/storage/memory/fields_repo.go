package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-intake/internal/domain/fields"
)

type fieldRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]fields.Field
}

func NewFieldRepo() fields.Repository {
	return &fieldRepo{
		byID: make(map[int64]fields.Field),
	}
}

func (r *fieldRepo) Create(ctx context.Context, f fields.Field) (fields.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.Label) == "" {
		return fields.Field{}, errors.New("field label required")
	}
	r.seq++
	f.ID = r.seq
	r.byID[f.ID] = f
	return f, nil
}

func (r *fieldRepo) Update(ctx context.Context, f fields.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[f.ID]; !exists {
		return fields.ErrNotFound
	}
	r.byID[f.ID] = f
	return nil
}

func (r *fieldRepo) GetByID(ctx context.Context, id int64) (fields.Field, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return fields.Field{}, fields.ErrNotFound
	}
	return f, nil
}

func (r *fieldRepo) List(ctx context.Context) ([]fields.Field, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fields.Field, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

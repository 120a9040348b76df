package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"hospital-intake/internal/domain/patients"
)

type patientRepo struct {
	mu    sync.RWMutex
	byID  map[string]patients.Patient
	order []string // orden de inserción (equivale al orden de storage)
}

func NewPatientRepo() patients.Repository {
	return &patientRepo{
		byID: make(map[string]patients.Patient),
	}
}

func (r *patientRepo) Save(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"hospital-intake/internal/domain/kyc"
)

type kycRepo struct {
	mu   sync.RWMutex
	byID map[string]kyc.Record
}

func NewKycRepo() kyc.Repository {
	return &kycRepo{
		byID: make(map[string]kyc.Record),
	}
}

func (r *kycRepo) Create(ctx context.Context, rec kyc.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("kyc record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("kyc record already exists")
	}

	// copia para que el caller no pueda mutar lo guardado
	img := make([]byte, len(rec.Image))
	copy(img, rec.Image)
	rec.Image = img

	r.byID[rec.ID] = rec
	return nil
}

func (r *kycRepo) GetByID(ctx context.Context, id string) (kyc.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return kyc.Record{}, kyc.ErrNotFound
	}
	return rec, nil
}

func (r *kycRepo) ListByPatient(ctx context.Context, patientID string) ([]kyc.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]kyc.Record, 0)
	for _, rec := range r.byID {
		if rec.PatientID == patientID {
			rec.Image = nil
			out = append(out, rec)
		}
	}

	// Más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}

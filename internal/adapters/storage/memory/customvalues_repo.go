package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-intake/internal/domain/customvalues"
)

type valueKey struct {
	patientID string
	fieldID   int64
}

type customValueRepo struct {
	mu   sync.RWMutex
	rows map[valueKey]customvalues.Value
}

func NewCustomValueRepo() customvalues.Repository {
	return &customValueRepo{
		rows: make(map[valueKey]customvalues.Value),
	}
}

func (r *customValueRepo) Upsert(ctx context.Context, v customvalues.Value) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.PatientID) == "" || v.FieldID <= 0 {
		return errors.New("patient id and field id required")
	}

	k := valueKey{patientID: v.PatientID, fieldID: v.FieldID}
	if cur, exists := r.rows[k]; exists {
		v.ID = cur.ID
		v.CreatedAt = cur.CreatedAt
	}
	r.rows[k] = v
	return nil
}

func (r *customValueRepo) ListByPatient(ctx context.Context, patientID string) ([]customvalues.Value, error) {
	return r.ListByPatients(ctx, []string{patientID})
}

func (r *customValueRepo) ListByPatients(ctx context.Context, patientIDs []string) ([]customvalues.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[string]struct{}, len(patientIDs))
	for _, id := range patientIDs {
		want[id] = struct{}{}
	}

	out := make([]customvalues.Value, 0)
	for k, v := range r.rows {
		if _, ok := want[k.patientID]; ok {
			out = append(out, v)
		}
	}

	// Mismo orden que postgres: paciente, campo
	sort.Slice(out, func(i, j int) bool {
		if out[i].PatientID != out[j].PatientID {
			return out[i].PatientID < out[j].PatientID
		}
		return out[i].FieldID < out[j].FieldID
	})
	return out, nil
}

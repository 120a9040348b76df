package customvalues

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"hospital-intake/internal/domain/fields"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ParseSubmission toma del form solo los custom_<id> de campos definidos.
// Valores vacíos (tras trim) o ausentes no entran al mapa.
func ParseSubmission(form url.Values, defs []fields.Field) Submission {
	out := Submission{}
	for _, f := range defs {
		raw := form.Get(f.FormKey())
		if strings.TrimSpace(raw) == "" {
			continue
		}
		out[f.ID] = raw
	}
	return out
}

// SaveSubmission guarda cada valor de la submission (upsert) y devuelve
// las filas tal como quedaron guardadas (con el ID y CreatedAt originales
// si ya existían), ordenadas por campo.
// No es transaccional: si falla a mitad, lo ya escrito queda y se devuelve.
func (s *Service) SaveSubmission(ctx context.Context, patientID string, sub Submission) ([]Value, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}

	ids := make([]int64, 0, len(sub))
	for id := range sub {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	now := s.now()
	written := make(map[int64]struct{}, len(ids))
	for _, fieldID := range ids {
		raw := sub[fieldID]
		if fieldID <= 0 || strings.TrimSpace(raw) == "" {
			continue
		}

		v := Value{
			ID:        uuid.NewString(),
			PatientID: patientID,
			FieldID:   fieldID,
			Value:     raw,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Upsert(ctx, v); err != nil {
			stored, rerr := s.stored(ctx, patientID, written)
			if rerr != nil {
				return nil, err
			}
			return stored, err
		}
		written[fieldID] = struct{}{}
	}
	if len(written) == 0 {
		return []Value{}, nil
	}
	return s.stored(ctx, patientID, written)
}

// stored relee las filas del paciente y se queda con los campos recién escritos.
func (s *Service) stored(ctx context.Context, patientID string, fieldIDs map[int64]struct{}) ([]Value, error) {
	rows, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(fieldIDs))
	for _, v := range rows {
		if _, ok := fieldIDs[v.FieldID]; ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldID < out[j].FieldID })
	return out, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Value, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// ValuesByPatient devuelve patientID -> (fieldID -> valor) para el dashboard,
// con una sola consulta. Cada paciente pedido tiene entrada (vacía si no hay valores).
func (s *Service) ValuesByPatient(ctx context.Context, patientIDs []string) (map[string]map[int64]string, error) {
	out := make(map[string]map[int64]string, len(patientIDs))
	for _, id := range patientIDs {
		out[id] = map[int64]string{}
	}
	if len(patientIDs) == 0 {
		return out, nil
	}

	rows, err := s.repo.ListByPatients(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		m, ok := out[v.PatientID]
		if !ok {
			continue
		}
		m[v.FieldID] = v.Value
	}
	return out, nil
}

// LabeledValue es un par etiqueta -> valor para mostrar.
type LabeledValue struct {
	Label string
	Value string
}

// LabeledValues convierte filas a pares etiqueta -> valor en orden de FieldID.
// Valores de campos que ya no existen se ignoran; si dos campos comparten
// etiqueta queda en la posición del primero con el valor del último.
func LabeledValues(rows []Value, labels map[int64]string) []LabeledValue {
	sorted := make([]Value, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FieldID < sorted[j].FieldID })

	out := make([]LabeledValue, 0, len(sorted))
	pos := make(map[string]int, len(sorted))
	for _, v := range sorted {
		label, ok := labels[v.FieldID]
		if !ok {
			continue
		}
		if i, seen := pos[label]; seen {
			out[i].Value = v.Value
			continue
		}
		pos[label] = len(out)
		out = append(out, LabeledValue{Label: label, Value: v.Value})
	}
	return out
}

// FindByLabel busca el valor cuyo campo tenga esa etiqueta (sin distinguir mayúsculas).
func FindByLabel(rows []Value, labels map[int64]string, label string) (string, bool) {
	var (
		found string
		ok    bool
	)
	for _, v := range rows {
		if l, exists := labels[v.FieldID]; exists && strings.EqualFold(l, label) {
			found, ok = v.Value, true
		}
	}
	return found, ok
}

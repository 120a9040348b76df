package patients

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("patient not found")
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

type SaveInput struct {
	ID     string
	Name   string
	Gender string
	Age    int
	Weight float64
}

// Save crea el paciente o actualiza el existente con el mismo ID.
// Solo se exige el ID; el resto se guarda tal cual llega (trim).
func (s *Service) Save(ctx context.Context, in SaveInput) (Patient, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}

	now := s.now()
	p := Patient{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Gender:    Gender(strings.TrimSpace(in.Gender)),
		Age:       in.Age,
		Weight:    in.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Update: conservar created_at
	current, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		p.CreatedAt = current.CreatedAt
	case !errors.Is(err, ErrNotFound):
		return Patient{}, err
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// GetByID devuelve ErrNotFound si no existe (nunca un Patient vacío sin error).
func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

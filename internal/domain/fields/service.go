package fields

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("field not found")
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
	ID    int64 // 0 => nuevo
	Label string
}

// Save inserta (ID 0) o actualiza la etiqueta de un campo existente.
func (s *Service) Save(ctx context.Context, in SaveInput) (Field, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" || in.ID < 0 {
		return Field{}, ErrInvalidInput
	}

	if in.ID == 0 {
		return s.repo.Create(ctx, Field{
			Label:     label,
			CreatedAt: s.now(),
		})
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Field{}, err
	}
	current.Label = label
	if err := s.repo.Update(ctx, current); err != nil {
		return Field{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Field, error) {
	if id <= 0 {
		return Field{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Field, error) {
	return s.repo.List(ctx)
}

// LabelsByID indexa las etiquetas para resolver valores guardados.
func LabelsByID(items []Field) map[int64]string {
	out := make(map[int64]string, len(items))
	for _, f := range items {
		out[f.ID] = f.Label
	}
	return out
}

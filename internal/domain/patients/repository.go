package patients

import "context"

type Repository interface {
	// Save inserta o actualiza por ID (upsert).
	Save(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context) ([]Patient, error)
}

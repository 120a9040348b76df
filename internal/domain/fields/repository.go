package fields

import "context"

type Repository interface {
	// Create asigna el ID y lo devuelve en el Field.
	Create(ctx context.Context, f Field) (Field, error)
	Update(ctx context.Context, f Field) error
	GetByID(ctx context.Context, id int64) (Field, error)
	// List ordena por ID asc.
	List(ctx context.Context) ([]Field, error)
}

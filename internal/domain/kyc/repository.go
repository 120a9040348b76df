package kyc

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// ListByPatient devuelve las capturas más recientes primero, sin la imagen.
	ListByPatient(ctx context.Context, patientID string) ([]Record, error)
}

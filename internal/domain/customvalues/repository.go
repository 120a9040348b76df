package customvalues

import "context"

type Repository interface {
	// Upsert inserta o actualiza por (PatientID, FieldID).
	// Si ya existía, conserva ID y CreatedAt del registro original.
	Upsert(ctx context.Context, v Value) error
	// ListByPatient ordena por FieldID asc.
	ListByPatient(ctx context.Context, patientID string) ([]Value, error)
	// ListByPatients resuelve varios pacientes en una sola consulta.
	ListByPatients(ctx context.Context, patientIDs []string) ([]Value, error)
}

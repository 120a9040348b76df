package customvalues

import "time"

// Value es el valor de un campo personalizado para un paciente
// (PatientCustomFieldValue). Único por (PatientID, FieldID).
type Value struct {
	ID        string
	PatientID string
	FieldID   int64
	Value     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission son los valores enviados en un formulario, por ID de campo.
// Se arma una vez por request con ParseSubmission.
type Submission map[int64]string

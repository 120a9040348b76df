package postgres

import (
	"context"
	"database/sql"

	"hospital-intake/internal/domain/customvalues"
)

type CustomValuesRepo struct {
	db *sql.DB
}

func NewCustomValuesRepo(db *sql.DB) *CustomValuesRepo {
	return &CustomValuesRepo{db: db}
}

// Upsert se apoya en el UNIQUE (patient_id, field_id): en conflicto solo
// cambia el valor y updated_at, el id original se conserva.
func (r *CustomValuesRepo) Upsert(ctx context.Context, v customvalues.Value) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patient_custom_field_value (
			id, patient_id, field_id, field_value,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (patient_id, field_id) DO UPDATE
		SET
			field_value = EXCLUDED.field_value,
			updated_at = EXCLUDED.updated_at
	`,
		v.ID,
		v.PatientID,
		v.FieldID,
		v.Value,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *CustomValuesRepo) ListByPatient(ctx context.Context, patientID string) ([]customvalues.Value, error) {
	return r.ListByPatients(ctx, []string{patientID})
}

// ListByPatients: una sola consulta con ANY($1) (pgx mapea []string a text[]).
func (r *CustomValuesRepo) ListByPatients(ctx context.Context, patientIDs []string) ([]customvalues.Value, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, patient_id, field_id, field_value,
			created_at, updated_at
		FROM patient_custom_field_value
		WHERE patient_id = ANY($1)
		ORDER BY patient_id ASC, field_id ASC
	`, patientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customvalues.Value, 0)
	for rows.Next() {
		var v customvalues.Value
		if err := rows.Scan(
			&v.ID,
			&v.PatientID,
			&v.FieldID,
			&v.Value,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

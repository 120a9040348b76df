package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hospital-intake/internal/domain/kyc"
)

type KycRepo struct {
	db *sql.DB
}

func NewKycRepo(db *sql.DB) *KycRepo {
	return &KycRepo{db: db}
}

func (r *KycRepo) Create(ctx context.Context, rec kyc.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kyc_record (
			id, patient_id, content_type, image, captured_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID,
		rec.PatientID,
		rec.ContentType,
		rec.Image,
		rec.CapturedAt,
	)
	return err
}

func (r *KycRepo) GetByID(ctx context.Context, id string) (kyc.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return kyc.Record{}, kyc.ErrNotFound
	}

	var rec kyc.Record
	err := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, content_type, image, captured_at
		FROM kyc_record
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.PatientID, &rec.ContentType, &rec.Image, &rec.CapturedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kyc.Record{}, kyc.ErrNotFound
		}
		return kyc.Record{}, err
	}
	return rec, nil
}

// ListByPatient no trae la columna image (puede pesar MBs por fila).
func (r *KycRepo) ListByPatient(ctx context.Context, patientID string) ([]kyc.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, content_type, captured_at
		FROM kyc_record
		WHERE patient_id = $1
		ORDER BY captured_at DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kyc.Record, 0)
	for rows.Next() {
		var rec kyc.Record
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.ContentType, &rec.CapturedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

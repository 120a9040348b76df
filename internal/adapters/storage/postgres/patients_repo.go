package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hospital-intake/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

// Save hace upsert por patient_id; created_at no se pisa en el update.
func (r *PatientsRepo) Save(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patient_master (
			patient_id, patient_name, gender,
			age, weight,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (patient_id) DO UPDATE
		SET
			patient_name = EXCLUDED.patient_name,
			gender = EXCLUDED.gender,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			updated_at = EXCLUDED.updated_at
	`,
		p.ID,
		p.Name,
		string(p.Gender),
		p.Age,
		p.Weight,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, patients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			patient_id, patient_name, gender,
			age, weight,
			created_at, updated_at
		FROM patient_master
		WHERE patient_id = $1
	`, id)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			patient_id, patient_name, gender,
			age, weight,
			created_at, updated_at
		FROM patient_master
		ORDER BY created_at ASC, patient_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPatient(s scanner) (patients.Patient, error) {
	var p patients.Patient
	var gender string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&gender,
		&p.Age,
		&p.Weight,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return patients.Patient{}, err
	}
	p.Gender = patients.Gender(gender)
	return p, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hospital-intake/internal/domain/fields"
)

type FieldsRepo struct {
	db *sql.DB
}

func NewFieldsRepo(db *sql.DB) *FieldsRepo {
	return &FieldsRepo{db: db}
}

func (r *FieldsRepo) Create(ctx context.Context, f fields.Field) (fields.Field, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO field_customization (label_name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, f.Label, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		return fields.Field{}, err
	}
	return f, nil
}

func (r *FieldsRepo) Update(ctx context.Context, f fields.Field) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE field_customization
		SET label_name = $2
		WHERE id = $1
	`, f.ID, f.Label)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fields.ErrNotFound
	}
	return nil
}

func (r *FieldsRepo) GetByID(ctx context.Context, id int64) (fields.Field, error) {
	var f fields.Field
	err := r.db.QueryRowContext(ctx, `
		SELECT id, label_name, created_at
		FROM field_customization
		WHERE id = $1
	`, id).Scan(&f.ID, &f.Label, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fields.Field{}, fields.ErrNotFound
		}
		return fields.Field{}, err
	}
	return f, nil
}

func (r *FieldsRepo) List(ctx context.Context) ([]fields.Field, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label_name, created_at
		FROM field_customization
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]fields.Field, 0)
	for rows.Next() {
		var f fields.Field
		if err := rows.Scan(&f.ID, &f.Label, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

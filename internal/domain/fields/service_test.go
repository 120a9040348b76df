package fields

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testRepo struct {
	seq  int64
	byID map[int64]Field
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Field{}}
}

func (r *testRepo) Create(ctx context.Context, f Field) (Field, error) {
	r.seq++
	f.ID = r.seq
	r.byID[f.ID] = f
	return f, nil
}

func (r *testRepo) Update(ctx context.Context, f Field) error {
	if _, ok := r.byID[f.ID]; !ok {
		return ErrNotFound
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Field, error) {
	f, ok := r.byID[id]
	if !ok {
		return Field{}, ErrNotFound
	}
	return f, nil
}

func (r *testRepo) List(ctx context.Context) ([]Field, error) {
	out := make([]Field, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func TestService_Save_CreatesSequentialIDs(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	doctor, err := svc.Save(context.Background(), SaveInput{Label: " Doctor Name "})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	caseNo, err := svc.Save(context.Background(), SaveInput{Label: "Case No"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if doctor.ID != 1 || caseNo.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", doctor.ID, caseNo.ID)
	}
	if doctor.Label != "Doctor Name" || !doctor.CreatedAt.Equal(now) {
		t.Fatalf("unexpected field %#v", doctor)
	}
	if doctor.FormKey() != "custom_1" {
		t.Fatalf("expected form key custom_1, got %s", doctor.FormKey())
	}

	all, _ := svc.List(context.Background())
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("expected both fields ordered by id, got %#v", all)
	}
}

func TestService_Save_UpdatesLabel(t *testing.T) {
	svc := NewService(newTestRepo())

	f, _ := svc.Save(context.Background(), SaveInput{Label: "Case Number"})
	updated, err := svc.Save(context.Background(), SaveInput{ID: f.ID, Label: "Case No"})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.ID != f.ID || updated.Label != "Case No" || !updated.CreatedAt.Equal(f.CreatedAt) {
		t.Fatalf("unexpected updated field %#v", updated)
	}
}

func TestService_Save_Errors(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Save(context.Background(), SaveInput{Label: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank label, got %v", err)
	}
	if _, err := svc.Save(context.Background(), SaveInput{ID: 99, Label: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestLabelsByID(t *testing.T) {
	labels := LabelsByID([]Field{{ID: 1, Label: "Doctor Name"}, {ID: 2, Label: "Case No"}})
	if labels[1] != "Doctor Name" || labels[2] != "Case No" || len(labels) != 2 {
		t.Fatalf("unexpected labels %#v", labels)
	}
}

package kyc

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxImageBytes = 5 << 20 // 5MB

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("kyc record not found")
	ErrTooLarge     = errors.New("image too large")
	ErrNotAnImage   = errors.New("payload is not an image")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Capture guarda una foto. El content type se detecta de los bytes,
// no se confía en lo que mande el navegador.
func (s *Service) Capture(ctx context.Context, patientID string, image []byte) (Record, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" || len(image) == 0 {
		return Record{}, ErrInvalidInput
	}
	if len(image) > MaxImageBytes {
		return Record{}, ErrTooLarge
	}

	ct := http.DetectContentType(image)
	if !strings.HasPrefix(ct, "image/") {
		return Record{}, ErrNotAnImage
	}

	rec := Record{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		ContentType: ct,
		Image:       image,
		CapturedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Record{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Record, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// DecodeDataURL decodifica lo que produce canvas.toDataURL():
// "data:image/png;base64,iVBORw0...".
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return nil, ErrInvalidInput
	}
	meta, payload, ok := strings.Cut(s, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrInvalidInput
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return nil, ErrTooLarge
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return b, nil
}

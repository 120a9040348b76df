package kyc

import "time"

// Record es una captura de identidad (foto de cámara) asociada a un paciente.
type Record struct {
	ID          string
	PatientID   string
	ContentType string
	Image       []byte
	CapturedAt  time.Time
}

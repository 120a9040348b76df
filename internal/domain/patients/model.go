package patients

import "time"

// Gender es texto libre del formulario; estas constantes son las opciones del select.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders es el orden del select en el formulario de alta.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Patient es el registro maestro del paciente (PatientMaster).
// El ID lo asigna recepción (no se genera) y no cambia después de crearse.
type Patient struct {
	ID string

	Name   string
	Gender Gender
	Age    int
	Weight float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

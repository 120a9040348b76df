package patients

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"hospital-intake/internal/domain/customvalues"
	"hospital-intake/internal/domain/fields"
	"hospital-intake/internal/middleware"
	"hospital-intake/internal/platform/logger"
	"hospital-intake/internal/web/views"

	"github.com/go-chi/chi/v5"
	"github.com/gofiber/schema"
)

// CaseNoLabel es la etiqueta del campo personalizado que se imprime en la receta.
const CaseNoLabel = "Case No"

const dateLayout = "2006-01-02"

func RegisterRoutes(
	r chi.Router,
	svc *Service,
	fieldsSvc *fields.Service,
	valuesSvc *customvalues.Service,
	view *views.Renderer,
	log logger.Logger,
) {
	r.Get("/", dashboardHandler(svc, fieldsSvc, valuesSvc, view, log))

	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/new", newPatientHandler(fieldsSvc, view, log))
		pr.Post("/save", savePatientHandler(svc, fieldsSvc, valuesSvc, view, log))
	})

	r.Get("/prescription", prescriptionHandler(svc, fieldsSvc, valuesSvc, view, log))
}

// patientForm son los inputs fijos del formulario de alta.
// Los custom_<id> se leen aparte (ver customvalues.ParseSubmission).
type patientForm struct {
	ID     string  `form:"patientId"`
	Name   string  `form:"patientName"`
	Gender string  `form:"gender"`
	Age    int     `form:"age"`
	Weight float64 `form:"weight"`
}

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	return d
}()

// dashboardHandler godoc
// @Summary Dashboard de pacientes
// @Description Lista todos los pacientes con los valores de sus campos personalizados (una sola consulta para todos los valores).
// @Tags patients
// @Produce html
// @Success 200 {string} string "HTML"
// @Failure 500 {string} string "internal error"
// @Router / [get]
func dashboardHandler(svc *Service, fieldsSvc *fields.Service, valuesSvc *customvalues.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.List(ctx)
		if err != nil {
			internalError(w, r, view, log, "list patients", err)
			return
		}
		defs, err := fieldsSvc.List(ctx)
		if err != nil {
			internalError(w, r, view, log, "list fields", err)
			return
		}

		ids := make([]string, 0, len(items))
		for _, p := range items {
			ids = append(ids, p.ID)
		}
		values, err := valuesSvc.ValuesByPatient(ctx, ids)
		if err != nil {
			internalError(w, r, view, log, "list custom values", err)
			return
		}

		render(w, r, view, log, http.StatusOK, views.Dashboard, views.Data{
			"Title":    "Patients",
			"Patients": items,
			"Fields":   defs,
			"Values":   values,
		})
	}
}

// newPatientHandler godoc
// @Summary Formulario de alta de paciente
// @Description Formulario vacío con un input custom_<id> por cada campo personalizado definido.
// @Tags patients
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /patients/new [get]
func newPatientHandler(fieldsSvc *fields.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs, err := fieldsSvc.List(r.Context())
		if err != nil {
			internalError(w, r, view, log, "list fields", err)
			return
		}

		render(w, r, view, log, http.StatusOK, views.AddPatient, views.Data{
			"Title":   "Add patient",
			"Patient": Patient{},
			"Genders": Genders,
			"Fields":  defs,
		})
	}
}

// savePatientHandler godoc
// @Summary Guardar paciente
// @Description Crea o actualiza el paciente y hace upsert de cada custom_<id> no vacío. Redirige a la captura KYC.
// @Tags patients
// @Accept x-www-form-urlencoded
// @Produce html
// @Param patientId formData string true "ID del paciente (asignado por recepción)"
// @Param patientName formData string false "Nombre"
// @Param gender formData string false "Género"
// @Param age formData int false "Edad"
// @Param weight formData number false "Peso (kg)"
// @Success 303 {string} string "redirect a /kyc-camera?patientId=<id>"
// @Failure 400 {string} string "formulario inválido"
// @Failure 500 {string} string "internal error"
// @Router /patients/save [post]
func savePatientHandler(svc *Service, fieldsSvc *fields.Service, valuesSvc *customvalues.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			view.RenderError(w, http.StatusBadRequest, "invalid form")
			return
		}

		var in patientForm
		if err := formDecoder.Decode(&in, r.PostForm); err != nil {
			view.RenderError(w, http.StatusBadRequest, "invalid form: age and weight must be numbers")
			return
		}

		p, err := svc.Save(ctx, SaveInput{
			ID:     in.ID,
			Name:   in.Name,
			Gender: in.Gender,
			Age:    in.Age,
			Weight: in.Weight,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				view.RenderError(w, http.StatusBadRequest, "patient id is required")
				return
			}
			internalError(w, r, view, log, "save patient", err)
			return
		}

		// Sin transacción: si esto falla el paciente ya quedó guardado.
		defs, err := fieldsSvc.List(ctx)
		if err != nil {
			internalError(w, r, view, log, "list fields", err)
			return
		}
		sub := customvalues.ParseSubmission(r.PostForm, defs)
		written, err := valuesSvc.SaveSubmission(ctx, p.ID, sub)
		if err != nil {
			internalError(w, r, view, log, "save custom values", err)
			return
		}

		log.Info("patient saved", map[string]any{
			"patient_id":    p.ID,
			"custom_values": len(written),
			"request_id":    middleware.RequestIDFrom(ctx),
		})

		http.Redirect(w, r, "/kyc-camera?patientId="+url.QueryEscape(p.ID), http.StatusSeeOther)
	}
}

// prescriptionHandler godoc
// @Summary Receta del paciente
// @Description Datos del paciente, fecha actual y el valor "Case No" si el paciente lo tiene.
// @Tags patients
// @Produce html
// @Param patientId query string true "ID del paciente"
// @Success 200 {string} string "HTML"
// @Failure 400 {string} string "patientId requerido"
// @Failure 404 {string} string "patient not found"
// @Failure 500 {string} string "internal error"
// @Router /prescription [get]
func prescriptionHandler(svc *Service, fieldsSvc *fields.Service, valuesSvc *customvalues.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	now := svc.now
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		patientID := strings.TrimSpace(r.URL.Query().Get("patientId"))
		if patientID == "" {
			view.RenderError(w, http.StatusBadRequest, "patientId is required")
			return
		}

		plog := log.With(map[string]any{
			"patient_id": patientID,
			"request_id": middleware.RequestIDFrom(ctx),
		})

		p, err := svc.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				plog.Warn("prescription: patient not found", nil)
				view.RenderError(w, http.StatusNotFound, "patient not found")
				return
			}
			internalError(w, r, view, log, "get patient", err)
			return
		}
		plog.Debug("prescription: patient found", map[string]any{
			"name":   p.Name,
			"age":    p.Age,
			"weight": p.Weight,
		})

		defs, err := fieldsSvc.List(ctx)
		if err != nil {
			internalError(w, r, view, log, "list fields", err)
			return
		}
		rows, err := valuesSvc.ListByPatient(ctx, p.ID)
		if err != nil {
			internalError(w, r, view, log, "list custom values", err)
			return
		}
		plog.Debug("prescription: custom values loaded", map[string]any{"count": len(rows)})

		// Del resto de campos personalizados solo interesa Case No.
		caseNo, hasCaseNo := customvalues.FindByLabel(rows, fields.LabelsByID(defs), CaseNoLabel)

		render(w, r, view, log, http.StatusOK, views.Prescription, views.Data{
			"Title":       "Prescription",
			"PatientID":   p.ID,
			"PatientName": p.Name,
			"Gender":      p.Gender,
			"Age":         p.Age,
			"Weight":      p.Weight,
			"CaseNo":      caseNo,
			"HasCaseNo":   hasCaseNo,
			"Date":        now().Format(dateLayout),
		})
	}
}

func render(w http.ResponseWriter, r *http.Request, view *views.Renderer, log logger.Logger, status int, name string, data views.Data) {
	if err := view.Render(w, status, name, data); err != nil {
		internalError(w, r, view, log, "render "+name, err)
	}
}

func internalError(w http.ResponseWriter, r *http.Request, view *views.Renderer, log logger.Logger, op string, err error) {
	log.Error(op+" failed", map[string]any{
		"err":        err,
		"path":       r.URL.Path,
		"request_id": middleware.RequestIDFrom(r.Context()),
	})
	middleware.ReportError(r, err)
	view.RenderError(w, http.StatusInternalServerError, "internal error")
}

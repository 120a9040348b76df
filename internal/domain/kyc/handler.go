package kyc

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hospital-intake/internal/domain/customvalues"
	"hospital-intake/internal/domain/fields"
	"hospital-intake/internal/domain/patients"
	"hospital-intake/internal/middleware"
	"hospital-intake/internal/platform/logger"
	"hospital-intake/internal/web/views"

	"github.com/go-chi/chi/v5"
)

// Un data URL en base64 ocupa ~4/3 de la imagen; margen para el resto del form.
const maxBodyBytes = MaxImageBytes*4/3 + 1<<20

func RegisterRoutes(
	r chi.Router,
	svc *Service,
	patientsSvc *patients.Service,
	fieldsSvc *fields.Service,
	valuesSvc *customvalues.Service,
	view *views.Renderer,
	log logger.Logger,
) {
	r.Get("/kyc-camera", kycCameraHandler(svc, patientsSvc, fieldsSvc, valuesSvc, view, log))

	r.Route("/kyc", func(kr chi.Router) {
		kr.Post("/capture", captureHandler(svc, patientsSvc, view, log))
		kr.Get("/photo/{recordID}", photoHandler(svc, view, log))
	})
}

// kycCameraHandler godoc
// @Summary Captura KYC
// @Description Datos del paciente, sus campos personalizados como etiqueta -> valor y la cámara para la foto de identidad.
// @Tags kyc
// @Produce html
// @Param patientId query string true "ID del paciente"
// @Success 200 {string} string "HTML"
// @Failure 400 {string} string "patientId requerido"
// @Failure 404 {string} string "patient not found"
// @Failure 500 {string} string "internal error"
// @Router /kyc-camera [get]
func kycCameraHandler(svc *Service, patientsSvc *patients.Service, fieldsSvc *fields.Service, valuesSvc *customvalues.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		patientID := strings.TrimSpace(r.URL.Query().Get("patientId"))
		if patientID == "" {
			view.RenderError(w, http.StatusBadRequest, "patientId is required")
			return
		}

		p, err := patientsSvc.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, patients.ErrNotFound) {
				view.RenderError(w, http.StatusNotFound, "patient not found")
				return
			}
			internalError(w, r, view, log, "get patient", err)
			return
		}

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
		captures, err := svc.ListByPatient(ctx, p.ID)
		if err != nil {
			internalError(w, r, view, log, "list kyc captures", err)
			return
		}

		data := views.Data{
			"Title":         "KYC",
			"Patient":       p,
			"PatientID":     p.ID,
			"DynamicFields": customvalues.LabeledValues(rows, fields.LabelsByID(defs)),
			"Captures":      captures,
		}
		if err := view.Render(w, http.StatusOK, views.KycCamera, data); err != nil {
			internalError(w, r, view, log, "render kyc-camera", err)
		}
	}
}

// captureHandler godoc
// @Summary Guardar foto KYC
// @Description Recibe la foto como data URL (campo photo, desde canvas) o como archivo (photoFile). Redirige a la receta.
// @Tags kyc
// @Accept mpfd
// @Produce html
// @Param patientId formData string true "ID del paciente"
// @Param photo formData string false "data:image/...;base64,..."
// @Param photoFile formData file false "Imagen"
// @Success 303 {string} string "redirect a /prescription?patientId=<id>"
// @Failure 400 {string} string "foto inválida"
// @Failure 404 {string} string "patient not found"
// @Failure 413 {string} string "imagen demasiado grande"
// @Router /kyc/capture [post]
func captureHandler(svc *Service, patientsSvc *patients.Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var err error
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			err = r.ParseMultipartForm(maxBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeCaptureError(w, view, ErrTooLarge)
				return
			}
			view.RenderError(w, http.StatusBadRequest, "invalid form")
			return
		}

		patientID := strings.TrimSpace(r.FormValue("patientId"))
		if patientID == "" {
			view.RenderError(w, http.StatusBadRequest, "patientId is required")
			return
		}
		if _, err := patientsSvc.GetByID(ctx, patientID); err != nil {
			if errors.Is(err, patients.ErrNotFound) {
				view.RenderError(w, http.StatusNotFound, "patient not found")
				return
			}
			internalError(w, r, view, log, "get patient", err)
			return
		}

		image, err := readPhoto(r)
		if err != nil {
			writeCaptureError(w, view, err)
			return
		}

		rec, err := svc.Capture(ctx, patientID, image)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotAnImage) || errors.Is(err, ErrTooLarge) {
				writeCaptureError(w, view, err)
				return
			}
			internalError(w, r, view, log, "save kyc capture", err)
			return
		}

		log.Info("kyc captured", map[string]any{
			"patient_id":   patientID,
			"record_id":    rec.ID,
			"content_type": rec.ContentType,
			"bytes":        len(rec.Image),
			"request_id":   middleware.RequestIDFrom(ctx),
		})

		http.Redirect(w, r, "/prescription?patientId="+url.QueryEscape(patientID), http.StatusSeeOther)
	}
}

// photoHandler godoc
// @Summary Ver foto KYC
// @Tags kyc
// @Produce image/png
// @Param recordID path string true "ID de la captura"
// @Success 200 {file} binary
// @Failure 404 {string} string "kyc record not found"
// @Router /kyc/photo/{recordID} [get]
func photoHandler(svc *Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				view.RenderError(w, http.StatusNotFound, "kyc record not found")
				return
			}
			internalError(w, r, view, log, "get kyc capture", err)
			return
		}

		w.Header().Set("Content-Type", rec.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(rec.Image)))
		w.Header().Set("Cache-Control", "private, no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(rec.Image)
	}
}

// readPhoto prioriza el data URL de la cámara; si no viene, el archivo subido.
func readPhoto(r *http.Request) ([]byte, error) {
	if v := strings.TrimSpace(r.FormValue("photo")); v != "" {
		return DecodeDataURL(v)
	}

	file, _, err := r.FormFile("photoFile")
	if err != nil {
		return nil, ErrInvalidInput
	}
	defer file.Close()

	b, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxImageBytes {
		return nil, ErrTooLarge
	}
	return b, nil
}

func writeCaptureError(w http.ResponseWriter, view *views.Renderer, err error) {
	switch {
	case errors.Is(err, ErrTooLarge):
		view.RenderError(w, http.StatusRequestEntityTooLarge, "image too large (max 5MB)")
	case errors.Is(err, ErrNotAnImage):
		view.RenderError(w, http.StatusBadRequest, "uploaded file is not an image")
	default:
		view.RenderError(w, http.StatusBadRequest, "a photo is required")
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

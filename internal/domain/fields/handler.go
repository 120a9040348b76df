package fields

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hospital-intake/internal/middleware"
	"hospital-intake/internal/platform/logger"
	"hospital-intake/internal/web/views"

	"github.com/go-chi/chi/v5"
	"github.com/gofiber/schema"
)

func RegisterRoutes(r chi.Router, svc *Service, view *views.Renderer, log logger.Logger) {
	r.Get("/settings", settingsHandler(svc, view, log))
	r.Get("/settings/customize", customizeHandler(svc, view, log))
	r.Post("/custom-field/save", saveFieldHandler(svc, view, log))
}

// fieldForm acepta "labelName" (nombre del formulario original) o "label".
type fieldForm struct {
	ID        int64  `form:"id"`
	LabelName string `form:"labelName"`
	Label     string `form:"label"`
}

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	return d
}()

// settingsHandler godoc
// @Summary Formulario de campo personalizado
// @Description Formulario vacío para definir un campo nuevo. Con ?id= precarga el campo para editar la etiqueta.
// @Tags fields
// @Produce html
// @Param id query int false "ID del campo a editar"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "field not found"
// @Router /settings [get]
func settingsHandler(svc *Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := Field{}

		if raw := strings.TrimSpace(r.URL.Query().Get("id")); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				view.RenderError(w, http.StatusBadRequest, "id must be a number")
				return
			}
			f, err = svc.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
					view.RenderError(w, http.StatusNotFound, "field not found")
					return
				}
				internalError(w, r, view, log, "get field", err)
				return
			}
		}

		render(w, r, view, log, views.Setting, views.Data{
			"Title": "Settings",
			"Field": f,
		})
	}
}

// customizeHandler godoc
// @Summary Listar campos personalizados
// @Tags fields
// @Produce html
// @Success 200 {string} string "HTML"
// @Failure 500 {string} string "internal error"
// @Router /settings/customize [get]
func customizeHandler(svc *Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			internalError(w, r, view, log, "list fields", err)
			return
		}

		render(w, r, view, log, views.FieldCustomize, views.Data{
			"Title":  "Custom fields",
			"Fields": items,
		})
	}
}

// saveFieldHandler godoc
// @Summary Guardar campo personalizado
// @Description Crea un campo (sin id) o renombra uno existente. Redirige al listado.
// @Tags fields
// @Accept x-www-form-urlencoded
// @Produce html
// @Param labelName formData string true "Etiqueta visible"
// @Param id formData int false "ID del campo (solo para editar)"
// @Success 303 {string} string "redirect a /settings/customize"
// @Failure 400 {string} string "etiqueta vacía"
// @Failure 404 {string} string "field not found"
// @Router /custom-field/save [post]
func saveFieldHandler(svc *Service, view *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			view.RenderError(w, http.StatusBadRequest, "invalid form")
			return
		}

		var in fieldForm
		if err := formDecoder.Decode(&in, r.PostForm); err != nil {
			view.RenderError(w, http.StatusBadRequest, "invalid form")
			return
		}
		label := in.LabelName
		if strings.TrimSpace(label) == "" {
			label = in.Label
		}

		f, err := svc.Save(r.Context(), SaveInput{ID: in.ID, Label: label})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				view.RenderError(w, http.StatusBadRequest, "label is required")
			case errors.Is(err, ErrNotFound):
				view.RenderError(w, http.StatusNotFound, "field not found")
			default:
				internalError(w, r, view, log, "save field", err)
			}
			return
		}

		log.Info("custom field saved", map[string]any{
			"field_id":   f.ID,
			"label":      f.Label,
			"request_id": middleware.RequestIDFrom(r.Context()),
		})

		http.Redirect(w, r, "/settings/customize", http.StatusSeeOther)
	}
}

func render(w http.ResponseWriter, r *http.Request, view *views.Renderer, log logger.Logger, name string, data views.Data) {
	if err := view.Render(w, http.StatusOK, name, data); err != nil {
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

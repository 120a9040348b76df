package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

// Nombres de vista (uno por template de página).
const (
	Dashboard      = "index"
	AddPatient     = "add-patient"
	KycCamera      = "kyc-camera"
	Setting        = "setting"
	FieldCustomize = "field-customize"
	Prescription   = "prescription"
	Error          = "error"
)

var pages = []string{Dashboard, AddPatient, KycCamera, Setting, FieldCustomize, Prescription, Error}

// Data son los atributos del modelo que recibe la vista.
type Data map[string]any

// Renderer tiene un template por página, cada uno con el layout común.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew es para wiring en router/tests: los templates van embebidos,
// si no parsean es un bug de build.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render ejecuta a un buffer primero para no mandar HTML a medias si falla.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data Data) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderError pinta la página de error con el status dado.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, msg string) {
	err := r.Render(w, status, Error, Data{
		"Title":   http.StatusText(status),
		"Message": msg,
	})
	if err != nil {
		http.Error(w, msg, status)
	}
}

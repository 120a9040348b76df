package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_ParsesAllPages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for _, name := range pages {
		if _, ok := r.pages[name]; !ok {
			t.Fatalf("expected page %s to be parsed", name)
		}
	}
}

func TestRender_EscapesAndSetsHeaders(t *testing.T) {
	r := MustNew()
	w := httptest.NewRecorder()

	err := r.Render(w, http.StatusOK, Error, Data{
		"Title":   "Oops",
		"Message": "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatalf("expected message to be escaped")
	}
	if !strings.Contains(body, "Oops · Hospital Intake") {
		t.Fatalf("expected layout title, got %s", body)
	}
}

func TestRender_UnknownView(t *testing.T) {
	r := MustNew()
	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, "nope", nil); err == nil {
		t.Fatalf("expected error for unknown view")
	}
	if w.Body.Len() != 0 {
		t.Fatalf("nothing should be written for an unknown view")
	}
}

func TestRenderError_Status(t *testing.T) {
	r := MustNew()
	w := httptest.NewRecorder()
	r.RenderError(w, http.StatusNotFound, "patient not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "patient not found") {
		t.Fatalf("expected message in body")
	}
}

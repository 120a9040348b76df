package router_test

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hospital-intake/internal/domain/kyc"
	"hospital-intake/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_IntakeFlow(t *testing.T) {
	ts := newServer(t)

	// 1) Definir el campo "Doctor Name" (id 1)
	{
		st, loc, body := postForm(t, ts.URL, "/custom-field/save", url.Values{"labelName": {"Doctor Name"}})
		if st != http.StatusSeeOther || loc != "/settings/customize" {
			t.Fatalf("expected 303 to /settings/customize, got %d loc=%q body=%s", st, loc, body)
		}
	}
	{
		st, body := get(t, ts.URL, "/settings/customize")
		if st != http.StatusOK || !strings.Contains(body, "Doctor Name") {
			t.Fatalf("expected field listed, got %d body=%s", st, body)
		}
	}

	// 2) El formulario de alta tiene un input custom_1
	{
		st, body := get(t, ts.URL, "/patients/new")
		if st != http.StatusOK || !strings.Contains(body, `name="custom_1"`) {
			t.Fatalf("expected custom_1 input, got %d body=%s", st, body)
		}
	}

	// 3) Alta de P1 con valor
	{
		st, loc, body := postForm(t, ts.URL, "/patients/save", url.Values{
			"patientId":   {"P1"},
			"patientName": {"Asha"},
			"gender":      {"Female"},
			"age":         {"34"},
			"weight":      {"61.5"},
			"custom_1":    {"Dr. Jimit"},
		})
		if st != http.StatusSeeOther || loc != "/kyc-camera?patientId=P1" {
			t.Fatalf("expected 303 to kyc-camera, got %d loc=%q body=%s", st, loc, body)
		}
	}

	// 4) KYC muestra etiqueta -> valor
	{
		st, body := get(t, ts.URL, "/kyc-camera?patientId=P1")
		if st != http.StatusOK {
			t.Fatalf("expected 200 kyc-camera, got %d body=%s", st, body)
		}
		if !strings.Contains(body, "Doctor Name") || !strings.Contains(body, "Dr. Jimit") {
			t.Fatalf("expected Doctor Name / Dr. Jimit in kyc page, got %s", body)
		}
	}

	// 5) P2 sin valores aparece igual en el dashboard
	{
		st, _, body := postForm(t, ts.URL, "/patients/save", url.Values{
			"patientId":   {"P2"},
			"patientName": {"Ravi"},
			"custom_1":    {"   "},
		})
		if st != http.StatusSeeOther {
			t.Fatalf("expected 303 saving P2, got %d body=%s", st, body)
		}
	}
	{
		st, body := get(t, ts.URL, "/")
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		for _, want := range []string{"P1", "Asha", "Dr. Jimit", "P2", "Ravi"} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %q in dashboard, got %s", want, body)
			}
		}
	}
	{
		_, body := get(t, ts.URL, "/kyc-camera?patientId=P2")
		if !strings.Contains(body, "No custom values.") {
			t.Fatalf("blank custom value must not be stored, got %s", body)
		}
	}

	// 6) Re-enviar P1 actualiza el valor (no duplica)
	{
		st, _, body := postForm(t, ts.URL, "/patients/save", url.Values{
			"patientId":   {"P1"},
			"patientName": {"Asha"},
			"custom_1":    {"Dr. Mehta"},
		})
		if st != http.StatusSeeOther {
			t.Fatalf("expected 303 re-saving P1, got %d body=%s", st, body)
		}
		_, page := get(t, ts.URL, "/kyc-camera?patientId=P1")
		if !strings.Contains(page, "Dr. Mehta") || strings.Contains(page, "Dr. Jimit") {
			t.Fatalf("expected only the updated value, got %s", page)
		}
	}
}

func TestHTTP_Prescription_CaseNo(t *testing.T) {
	ts := newServer(t)

	postForm(t, ts.URL, "/custom-field/save", url.Values{"labelName": {"Case No"}})
	postForm(t, ts.URL, "/patients/save", url.Values{
		"patientId":   {"P1"},
		"patientName": {"Asha"},
		"custom_1":    {"CN-778"},
	})
	postForm(t, ts.URL, "/patients/save", url.Values{
		"patientId":   {"P2"},
		"patientName": {"Ravi"},
	})

	today := time.Now().Format("2006-01-02")

	st, body := get(t, ts.URL, "/prescription?patientId=P1")
	if st != http.StatusOK {
		t.Fatalf("expected 200 prescription, got %d body=%s", st, body)
	}
	if !strings.Contains(body, "CN-778") || !strings.Contains(body, "Asha") {
		t.Fatalf("expected case no and name, got %s", body)
	}
	if !strings.Contains(body, today) {
		t.Fatalf("expected today's date %s, got %s", today, body)
	}

	st, body = get(t, ts.URL, "/prescription?patientId=P2")
	if st != http.StatusOK {
		t.Fatalf("expected 200 prescription P2, got %d", st)
	}
	if strings.Contains(body, "<th>Case No</th>") {
		t.Fatalf("case no row must be omitted when absent, got %s", body)
	}
}

func TestHTTP_NotFoundAndBadRequest(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		path string
		want int
	}{
		{"/prescription?patientId=nope", http.StatusNotFound},
		{"/prescription", http.StatusBadRequest},
		{"/kyc-camera?patientId=nope", http.StatusNotFound},
		{"/kyc-camera", http.StatusBadRequest},
		{"/settings?id=99", http.StatusNotFound},
		{"/settings?id=abc", http.StatusBadRequest},
		{"/kyc/photo/not-a-uuid", http.StatusNotFound},
		{"/does-not-exist", http.StatusNotFound},
	}
	for _, tc := range cases {
		st, body := get(t, ts.URL, tc.path)
		if st != tc.want {
			t.Fatalf("GET %s: expected %d, got %d body=%s", tc.path, tc.want, st, body)
		}
	}

	st, _, _ := postForm(t, ts.URL, "/patients/save", url.Values{"patientName": {"No ID"}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without patientId, got %d", st)
	}
	st, _, _ = postForm(t, ts.URL, "/custom-field/save", url.Values{"labelName": {"  "}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 with blank label, got %d", st)
	}
	st, _, _ = postForm(t, ts.URL, "/patients/save", url.Values{"patientId": {"P1"}, "age": {"old"}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 with non-numeric age, got %d", st)
	}
}

func TestHTTP_KycCapture(t *testing.T) {
	ts := newServer(t)

	postForm(t, ts.URL, "/patients/save", url.Values{"patientId": {"P1"}, "patientName": {"Asha"}})

	img := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)

	st, loc, body := postForm(t, ts.URL, "/kyc/capture", url.Values{
		"patientId": {"P1"},
		"photo":     {dataURL},
	})
	if st != http.StatusSeeOther || loc != "/prescription?patientId=P1" {
		t.Fatalf("expected 303 to prescription, got %d loc=%q body=%s", st, loc, body)
	}

	_, page := get(t, ts.URL, "/kyc-camera?patientId=P1")
	i := strings.Index(page, "/kyc/photo/")
	if i < 0 {
		t.Fatalf("expected link to previous capture, got %s", page)
	}
	rest := page[i:]
	photoPath := rest[:strings.IndexByte(rest, '"')]

	resp, err := http.Get(ts.URL + photoPath)
	if err != nil {
		t.Fatalf("get photo: %v", err)
	}
	defer resp.Body.Close()
	got, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/png" {
		t.Fatalf("expected 200 image/png, got %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if string(got) != string(img) {
		t.Fatalf("photo bytes mismatch")
	}

	// Sin foto / no imagen / paciente inexistente
	st, _, _ = postForm(t, ts.URL, "/kyc/capture", url.Values{"patientId": {"P1"}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without photo, got %d", st)
	}
	st, _, _ = postForm(t, ts.URL, "/kyc/capture", url.Values{
		"patientId": {"P1"},
		"photo":     {"data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image, got %d", st)
	}
	st, _, _ = postForm(t, ts.URL, "/kyc/capture", url.Values{"patientId": {"ghost"}, "photo": {dataURL}})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown patient, got %d", st)
	}
}

func TestHTTP_SavePatient_NegativeNumbersAccepted(t *testing.T) {
	ts := newServer(t)

	st, loc, body := postForm(t, ts.URL, "/patients/save", url.Values{
		"patientId": {"P9"},
		"age":       {"-3"},
		"weight":    {"-1"},
	})
	if st != http.StatusSeeOther || loc != "/kyc-camera?patientId=P9" {
		t.Fatalf("expected 303 to kyc-camera, got %d loc=%q body=%s", st, loc, body)
	}
	_, page := get(t, ts.URL, "/prescription?patientId=P9")
	if !strings.Contains(page, "<td>-3</td>") {
		t.Fatalf("expected age -3 on prescription, got %s", page)
	}
}

func TestHTTP_KycCamera_FieldOrder(t *testing.T) {
	ts := newServer(t)

	for _, label := range []string{"Ward", "Case No", "Admitted By"} {
		postForm(t, ts.URL, "/custom-field/save", url.Values{"labelName": {label}})
	}
	postForm(t, ts.URL, "/patients/save", url.Values{
		"patientId": {"P1"},
		"custom_1":  {"B"},
		"custom_2":  {"CN-1"},
		"custom_3":  {"Dr. Jimit"},
	})

	_, body := get(t, ts.URL, "/kyc-camera?patientId=P1")
	ward := strings.Index(body, "<th>Ward</th>")
	caseNo := strings.Index(body, "<th>Case No</th>")
	admitted := strings.Index(body, "<th>Admitted By</th>")
	if ward < 0 || caseNo < 0 || admitted < 0 {
		t.Fatalf("expected all three labels, got %s", body)
	}
	if !(ward < caseNo && caseNo < admitted) {
		t.Fatalf("labels must follow field id order, got positions %d %d %d", ward, caseNo, admitted)
	}
}

func TestHTTP_KycCapture_BodyTooLarge(t *testing.T) {
	h := router.NewRouter(router.Options{})

	form := url.Values{"patientId": {"P1"}}
	form.Set("photo", "data:image/png;base64,"+strings.Repeat("A", 2*kyc.MaxImageBytes))

	req := httptest.NewRequest(http.MethodPost, "/kyc/capture", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestHTTP_NewPatientForm_GenderOptions(t *testing.T) {
	ts := newServer(t)
	_, body := get(t, ts.URL, "/patients/new")
	for _, g := range []string{"<option>Male</option>", "<option>Female</option>", "<option>Other</option>"} {
		if !strings.Contains(body, g) {
			t.Fatalf("expected %s in form, got %s", g, body)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)
	st, body := get(t, ts.URL, "/health")
	if st != http.StatusOK || body != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}
}

// ---------------- helpers ----------------

var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

func get(t *testing.T, baseURL, path string) (int, string) {
	t.Helper()
	resp, err := noRedirect.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func postForm(t *testing.T, baseURL, path string, form url.Values) (int, string, string) {
	t.Helper()
	resp, err := noRedirect.PostForm(baseURL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, resp.Header.Get("Location"), string(b)
}

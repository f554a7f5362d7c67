package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"postergen/internal/poster"
	"postergen/internal/providers/background"
	"postergen/internal/providers/copywriter"
	"postergen/internal/storage"
	"postergen/internal/template"
)

func newTestApp(t *testing.T, history History) *App {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	svc := poster.NewService(zerolog.Nop(), copywriter.NewStaticComposer(), background.NewSyntheticGenerator(), store, template.LoadFonts(""), nil)
	return NewApp(zerolog.Nop(), svc, history, store)
}

func TestGenerateSuccess(t *testing.T) {
	app := newTestApp(t, nil)

	body := `{
		"property_type": "Luxury Apartments",
		"location": "Pune",
		"price": "₹2.5 Cr Onwards",
		"bhk": "3 & 4 BHK",
		"phone": "+91 98765 43210",
		"amenities": ["Pool", "Gym"],
		"template_id": "modern"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success      bool   `json:"success"`
		Status       string `json:"status"`
		ImageURL     string `json:"image_url"`
		ImagePath    string `json:"image_path"`
		ImageBase64  string `json:"image_base64"`
		TemplateUsed string `json:"template_used"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Status != "success" {
		t.Fatalf("response = %+v", resp)
	}
	if resp.TemplateUsed != "modern" {
		t.Fatalf("TemplateUsed = %q", resp.TemplateUsed)
	}
	if !strings.HasPrefix(resp.ImageURL, "http://localhost:8080/static/") {
		t.Fatalf("ImageURL = %q", resp.ImageURL)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.ImageBase64)
	if err != nil {
		t.Fatalf("image_base64 not decodable: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("image_base64 is not a png: %v", err)
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	app.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"location":"Pune"}`))
	rec := httptest.NewRecorder()
	app.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["code"] != "bad_request" {
		t.Fatalf("code = %q", resp["code"])
	}
}

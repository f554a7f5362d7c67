package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"postergen/internal/domain"
	"postergen/internal/middleware"
)

type generateResponse struct {
	Success      bool   `json:"success"`
	Status       string `json:"status"`
	ImageURL     string `json:"image_url"`
	ImagePath    string `json:"image_path"`
	ImageBase64  string `json:"image_base64"`
	TemplateUsed string `json:"template_used"`
}

// Generate handles POST /api/generate: the full listing-to-poster pipeline.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var listing domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.Posters.Generate(r.Context(), listing, locale)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		case errors.Is(err, domain.ErrProviderFailure):
			a.error(w, http.StatusBadGateway, "provider_failure", "upstream model call failed")
		default:
			a.Log.Error().Err(err).Msg("generate poster failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to generate poster")
		}
		return
	}

	a.json(w, http.StatusOK, generateResponse{
		Success:      true,
		Status:       "success",
		ImageURL:     result.URL,
		ImagePath:    result.StorageKey,
		ImageBase64:  base64.StdEncoding.EncodeToString(result.PNG),
		TemplateUsed: result.TemplateID,
	})
}

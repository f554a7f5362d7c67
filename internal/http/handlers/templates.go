package handlers

import (
	"net/http"

	"postergen/internal/template"
)

// Templates handles GET /api/templates.
func (a *App) Templates(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"templates": template.List()})
}

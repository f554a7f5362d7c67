package handlers

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"postergen/internal/domain"
	"postergen/pkg/zip"
)

const maxHistoryLimit = 100

// ListPosters handles GET /api/posters. It requires the optional database.
func (a *App) ListPosters(w http.ResponseWriter, r *http.Request) {
	if a.History == nil {
		a.error(w, http.StatusServiceUnavailable, "history_disabled", "no database configured")
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"), 20)
	posters, err := a.History.ListRecent(r.Context(), limit)
	if err != nil {
		a.Log.Error().Err(err).Msg("list posters failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list posters")
		return
	}
	items := make([]map[string]any, 0, len(posters))
	for _, p := range posters {
		items = append(items, map[string]any{
			"id":            p.ID,
			"template_id":   p.TemplateID,
			"property_type": p.PropertyType,
			"location":      p.Location,
			"storage_key":   p.StorageKey,
			"url":           a.Store.URL(p.StorageKey),
			"bytes":         p.Bytes,
			"created_at":    p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ArchivePosters handles GET /api/posters/archive: the most recent posters
// bundled into a single zip download.
func (a *App) ArchivePosters(w http.ResponseWriter, r *http.Request) {
	if a.History == nil {
		a.error(w, http.StatusServiceUnavailable, "history_disabled", "no database configured")
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"), 10)
	posters, err := a.History.ListRecent(r.Context(), limit)
	if err != nil {
		a.Log.Error().Err(err).Msg("archive posters failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list posters")
		return
	}
	if len(posters) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no posters generated yet")
		return
	}

	entries := make([]zip.Entry, 0, len(posters))
	for _, p := range posters {
		data, err := a.Store.Read(r.Context(), p.StorageKey)
		if errors.Is(err, domain.ErrNotFound) {
			// Ledger rows can outlive files on disk; skip the gaps.
			a.Log.Warn().Str("storage_key", p.StorageKey).Msg("poster file missing")
			continue
		}
		if err != nil {
			a.Log.Error().Err(err).Str("storage_key", p.StorageKey).Msg("read poster failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to read poster")
			return
		}
		entries = append(entries, zip.Entry{Filename: path.Base(p.StorageKey), Data: data})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no poster files available")
		return
	}

	archive, err := zip.Archive(entries)
	if err != nil {
		a.Log.Error().Err(err).Msg("archive build failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="posters.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > maxHistoryLimit {
		return maxHistoryLimit
	}
	return n
}

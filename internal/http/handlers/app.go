package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"postergen/internal/domain"
	"postergen/internal/poster"
	"postergen/internal/storage"
)

// History lists previously generated posters. It is nil when the service
// runs without a database.
type History interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Poster, error)
}

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Log     zerolog.Logger
	Posters *poster.Service
	History History
	Store   *storage.FileStore
}

func NewApp(log zerolog.Logger, svc *poster.Service, history History, store *storage.FileStore) *App {
	return &App{Log: log, Posters: svc, History: history, Store: store}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"code": errCode, "message": message})
}

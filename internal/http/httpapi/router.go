package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"postergen/internal/http/handlers"
	"postergen/internal/infra"
	"postergen/internal/middleware"
)

// NewRouter wires the API surface: health, the generate pipeline, template
// metadata, history, and static serving of generated posters.
func NewRouter(cfg *infra.Config, log infra.Logger, app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(log),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.Locale(cfg.DefaultLocale),
	)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).
			Post("/generate", app.Generate)
		r.Get("/templates", app.Templates)
		r.Get("/posters", app.ListPosters)
		r.Get("/posters/archive", app.ArchivePosters)
	})

	// Generated posters are served straight from the output directory.
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Store.BasePath())))
	r.Get("/static/*", fileServer.ServeHTTP)

	return r
}

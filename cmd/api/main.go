package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"postergen/internal/adapter/repo"
	"postergen/internal/http/handlers"
	"postergen/internal/http/httpapi"
	"postergen/internal/infra"
	"postergen/internal/poster"
	"postergen/internal/providers/background"
	"postergen/internal/providers/copywriter"
	"postergen/internal/storage"
	"postergen/internal/template"
)

func main() {
	// Load .env (optional, local development only)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)
	ctx := context.Background()

	store, err := storage.NewFileStore(cfg.OutputDir, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	composer := buildComposer(cfg, logger)
	generator := buildGenerator(ctx, cfg, logger)
	fonts := template.LoadFonts(cfg.FontsDir)

	// The poster ledger is optional; without DATABASE_URL the history
	// endpoints report unavailable and everything else works.
	var recorder poster.Recorder
	var history handlers.History
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		posterRepo := repo.NewPosterRepo(pool)
		if err := posterRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		recorder = posterRepo
		history = posterRepo
	}

	svc := poster.NewService(logger, composer, generator, store, fonts, recorder)
	app := handlers.NewApp(logger, svc, history, store)
	router := httpapi.NewRouter(cfg, logger, app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func buildComposer(cfg *infra.Config, logger infra.Logger) copywriter.Composer {
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set; using static copywriter")
		return copywriter.NewStaticComposer()
	}
	composer, err := copywriter.NewGeminiComposer(copywriter.GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiTextModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize copywriter")
	}
	return composer
}

func buildGenerator(ctx context.Context, cfg *infra.Config, logger infra.Logger) background.Generator {
	switch cfg.BackgroundProvider {
	case "imagen":
		generator, err := background.NewImagenGenerator(ctx, background.ImagenOptions{
			Project:  cfg.GoogleProject,
			Location: cfg.GoogleLocation,
			Model:    cfg.ImagenModel,
			Logger:   &logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize imagen provider")
		}
		return generator
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn().Msg("GEMINI_API_KEY not set; using synthetic backgrounds")
			return background.NewSyntheticGenerator()
		}
		generator, err := background.NewGeminiGenerator(background.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiImageModel,
			BaseURL: cfg.GeminiBaseURL,
			Logger:  &logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize gemini image provider")
		}
		return generator
	default:
		return background.NewSyntheticGenerator()
	}
}

package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	OutputDir          string
	StorageBaseURL     string
	FontsDir           string
	DatabaseURL        string
	BackgroundProvider string
	GeminiAPIKey       string
	GeminiTextModel    string
	GeminiImageModel   string
	GeminiBaseURL      string
	GoogleProject      string
	GoogleLocation     string
	ImagenModel        string
	DefaultLocale      string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The service boots without any credentials; the
// background provider then degrades to the synthetic renderer.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		OutputDir:          getEnv("OUTPUT_DIR", "outputs"),
		StorageBaseURL:     getEnv("STORAGE_BASE_URL", "http://localhost:8080/static"),
		FontsDir:           os.Getenv("FONTS_DIR"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		BackgroundProvider: getEnv("BACKGROUND_PROVIDER", "gemini"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiTextModel:    getEnv("GEMINI_TEXT_MODEL", "gemini-2.0-flash"),
		GeminiImageModel:   getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GoogleProject:      os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleLocation:     getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		ImagenModel:        getEnv("IMAGEN_MODEL", "imagen-3.0-generate-002"),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "en"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	switch cfg.BackgroundProvider {
	case "gemini", "synthetic":
	case "imagen":
		if cfg.GoogleProject == "" {
			return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when BACKGROUND_PROVIDER=imagen")
		}
	default:
		return nil, fmt.Errorf("unsupported BACKGROUND_PROVIDER %q", cfg.BackgroundProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

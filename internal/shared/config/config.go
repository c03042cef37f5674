package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	MaxUploadBytes   int64
	MaxCandidates    int
	ScreeningWorkers int
	SemanticMatching bool
	GeminiAPIKey     string
	GeminiEmbedModel string
	LogJSON          bool
	LogDebug         bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded environment from .env")
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	semantic := getEnvBool("SEMANTIC_MATCHING", false)
	apiKey := os.Getenv("GEMINI_API_KEY")

	if semantic && apiKey == "" {
		log.Printf("SEMANTIC_MATCHING is enabled but GEMINI_API_KEY is empty, falling back to lexical matching")
		semantic = false
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		MaxCandidates:    getEnvInt("MAX_CANDIDATES", 50),
		ScreeningWorkers: getEnvInt("SCREENING_WORKERS", 4),
		SemanticMatching: semantic,
		GeminiAPIKey:     apiKey,
		GeminiEmbedModel: getEnv("GEMINI_EMBED_MODEL", ""),
		LogJSON:          getEnvBool("LOG_JSON", env == "production"),
		LogDebug:         getEnvBool("LOG_DEBUG", env == "dev"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if val, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

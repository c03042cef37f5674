package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cv-screener/internal/screenings"
	"cv-screener/internal/screenings/scoring"
	"cv-screener/internal/semantic"
	"cv-screener/internal/semantic/gemini"
	"cv-screener/internal/services/health"
	"cv-screener/internal/shared/config"
	"cv-screener/internal/shared/metrics"
	"cv-screener/internal/shared/server/middleware"
	"cv-screener/internal/shared/server/respond"
)

var rateLimitRules = map[string]middleware.RateLimitRule{
	"DEFAULT":    {Rate: 20, Burst: 40},
	"SCREENINGS": {Rate: 2, Burst: 10},
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules:        rateLimitRules,
		}),
	)

	// Dependencies
	var embedder semantic.Embedder
	if cfg.SemanticMatching {
		client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiEmbedModel)
		if err != nil {
			log.Warn("semantic matching disabled", zap.Error(err))
		} else {
			embedder = client
			log.Info("semantic matching enabled")
		}
	}

	engineCfg := scoring.DefaultConfig()
	if cfg.ScreeningWorkers > 0 {
		engineCfg.Workers = cfg.ScreeningWorkers
	}
	engine := &scoring.Engine{Config: engineCfg, Embedder: embedder, Logger: log}

	screeningSvc := screenings.NewService(engine, cfg.MaxCandidates, cfg.MaxUploadBytes, log)
	screeningHandler := screenings.NewHandler(screeningSvc)
	healthSvc := health.NewService(embedder != nil)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	screeningHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/screenings" {
		return "SCREENINGS"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package main

import (
	"log"

	"go.uber.org/zap"

	"cv-screener/internal/shared/config"
	"cv-screener/internal/shared/server"
	"cv-screener/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	logger, err := telemetry.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	r := server.NewRouter(cfg, logger)

	addr := server.Addr(cfg.Port)
	logger.Info("starting API server", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

package main

import (
	"log"

	"fyyur/config"
	"fyyur/internal/app"
	"fyyur/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	a, err := app.NewApp(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize application", zap.Error(err))
	}
	if err := a.Run(); err != nil {
		zl.Fatal("application stopped with error", zap.Error(err))
	}
}

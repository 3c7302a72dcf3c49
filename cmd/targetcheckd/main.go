package main

import (
	"log/slog"
	"os"

	"targetcheck/internal/common"
	"targetcheck/internal/reconcile"
	"targetcheck/internal/server"
	"targetcheck/internal/validation"
	"targetcheck/internal/verifier/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.Verifier.APIKey,
		BaseURL:     cfg.Verifier.BaseURL,
		Model:       cfg.Verifier.Model,
		Temperature: cfg.Verifier.Temperature,
		Timeout:     cfg.Verifier.Timeout,
	}, logger)

	engine := reconcile.NewEngine(logger, cfg.Reconcile.NumericTolerance)
	svc := validation.NewService(logger, client, engine)
	router := server.NewRouter(server.NewHandler(svc, logger))

	logger.Info("targetcheckd listening", "addr", cfg.Server.HTTPAddr, "model", cfg.Verifier.Model)
	if err := router.Run(cfg.Server.HTTPAddr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/core"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file, empty for defaults")
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the config")
	flag.Parse()

	if err := config.LoadEnv(*envFile); err != nil {
		log.Fatal("Error loading env file:", err)
	}

	path := *configPath
	if _, err := os.Stat(path); path != "" && os.IsNotExist(err) {
		path = ""
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	logger, err := createLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Error creating logger:", err)
	}
	defer logger.Sync()

	if path == "" {
		logger.Info("config file not found, using defaults", zap.String("path", *configPath))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := core.Setup(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to setup services", zap.Error(err))
	}

	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		logger.Fatal("failed to start services", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("received shutdown signal, stopping services")
	cancel()
	registry.StopAll()
}

// createLogger builds a zap logger from the logging section of the config
func createLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoding := cfg.Encoding
	if encoding != "console" {
		encoding = "json"
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}

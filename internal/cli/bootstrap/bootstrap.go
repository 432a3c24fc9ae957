package bootstrap

import (
	"fmt"
	"net/http"

	"Lombard/internal/cli/api"
	"Lombard/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OpenAPI собирает API-клиент и логгер по конфигу и возвращает (client, logger, cleanup, error).
// cleanup необходимо вызвать по завершении команды, чтобы сбросить буфер логгера.
func OpenAPI(cfg *config.Config) (*api.Client, *zap.SugaredLogger, func(), error) {
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	client := api.New(cfg.ServerURL, httpClient, logger)
	cleanup := func() { _ = logger.Sync() }
	return client, logger, cleanup, nil
}

// NewLogger создаёт консольный логгер в stderr с заданным уровнем.
// Пустой уровень означает warn.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
)

const serviceName = "asset-store"

// NewLogger builds a colored console logger for "console" and a JSON one
// otherwise. Output defaults to stderr.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.DisableStacktrace = true
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.InitialFields = map[string]any{"service": serviceName}
	}

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	if len(cfg.Output) > 0 {
		zcfg.OutputPaths = cfg.Output
	}

	logger, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}

package log

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level string `config:"LOG_LEVEL" default:"info"`
}

// Initialize builds the production logger and registers it in the dependency
// container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	level, err := zapcore.ParseLevel(il.Level)
	if err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", il.Level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return ctx, fmt.Errorf("failed to build logger: %w", err)
	}

	depend.Register(logger)
	return ctx, nil
}

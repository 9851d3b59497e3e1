package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/backscroll/internal/config"
)

// newLogger returns a no-op logger unless debug logging was requested. The
// TUI owns the terminal, so debug output goes to a file under log_dir.
func newLogger(opts Options, cfg *config.Config) (*zap.Logger, error) {
	if !opts.Debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{cfg.DebugLogPath()}
	zc.ErrorOutputPaths = []string{cfg.DebugLogPath()}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}

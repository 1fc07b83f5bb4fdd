// Package logging builds the application logger. The terminal belongs to
// the UI, so log output goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"villaoasis/internal/config"
)

// New opens (or creates) the log file and returns a JSON logger writing to
// it at the configured level. The returned close func flushes and closes
// the file.
func New(cfg config.LogSettings) (*zap.SugaredLogger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.File == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log := NewWithWriter(zapcore.AddSync(f), level)
	closeFn := func() {
		_ = log.Sync()
		_ = f.Close()
	}
	return log, closeFn, nil
}

// NewWithWriter returns a JSON logger on an arbitrary sink
func NewWithWriter(w zapcore.WriteSyncer, level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, zap.NewAtomicLevelAt(level))
	return zap.New(core).Sugar().Named("villaoasis")
}

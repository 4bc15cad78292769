// Package logging builds the zap logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLevel = zapcore.WarnLevel

// New returns a console logger writing to w at the named level ("debug",
// "info", "warn", "error"). An empty level means DefaultLevel.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}

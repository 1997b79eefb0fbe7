// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/taxdrag/internal/calculation"
)

var _ calculation.Logger = (*zap.SugaredLogger)(nil)

// New creates a console logger on stderr. Only warnings and errors are shown
// unless debug is set.
func New(debug bool) *zap.SugaredLogger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter creates a console logger writing to w.
func NewWithWriter(w io.Writer, debug bool) *zap.SugaredLogger {
	level := zap.WarnLevel
	if debug {
		level = zap.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core).Sugar()
}

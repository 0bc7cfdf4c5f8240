// Package logger sets up the zap logger used by the column-mapper CLI.
// Library packages do not log.
package logger

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for the -v flag count.
const (
	VerbosityUser  = 0 // results and errors only
	VerbosityInfo  = 1 // -v: + progress
	VerbosityDebug = 2 // -vv: + config and file details
)

// VerbosityToLevel maps a -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(name string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", name)
	}

	return lvl, nil
}

// New returns a sugared logger writing to w at the given level.
// JSON output suits machines; otherwise a compact console encoding is used.
func New(w io.Writer, level zapcore.Level, jsonOutput bool) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

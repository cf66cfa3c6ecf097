// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	Console = "console"
	JSON    = "json"
	Logfmt  = "logfmt"
)

// Config selects the level, encoding and sink of a logger.
type Config struct {
	// Level is a zap level name such as "debug" or "warn". Empty means info.
	Level string `mapstructure:"level"`

	// Format is one of console, json or logfmt. Empty means console.
	Format string `mapstructure:"format"`

	// Writer receives encoded records. Nil means os.Stderr.
	Writer io.Writer `mapstructure:"-"`
}

// New returns a logger configured by c.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
			return nil, errors.Wrapf(err, "log level %q", c.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", Console:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case Logfmt:
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("unknown log format %q", c.Format)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	var sink zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		sink = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sink = t
	default:
		sink = zapcore.AddSync(w)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

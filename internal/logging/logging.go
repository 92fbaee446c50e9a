// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	level       zapcore.Level
	development bool
	output      zapcore.WriteSyncer
	fields      []zap.Field
}

// Option configures New.
type Option func(*config) error

// WithLevel sets the minimum level: debug, info, warn or error.
func WithLevel(level string) Option {
	return func(cfg *config) error {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		cfg.level = lvl
		return nil
	}
}

// WithDevelopment switches to the human-readable console encoder.
func WithDevelopment(dev bool) Option {
	return func(cfg *config) error {
		cfg.development = dev
		return nil
	}
}

// WithOutput redirects log lines, which go to stderr by default.
func WithOutput(ws zapcore.WriteSyncer) Option {
	return func(cfg *config) error {
		if ws != nil {
			cfg.output = ws
		}
		return nil
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields ...zap.Field) Option {
	return func(cfg *config) error {
		cfg.fields = append(cfg.fields, fields...)
		return nil
	}
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a JSON logger at info level writing to stderr, adjusted by opts.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := config{
		level:  zapcore.InfoLevel,
		output: zapcore.Lock(os.Stderr),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var enc zapcore.Encoder
	if cfg.development {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	} else {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	core := zapcore.NewCore(enc, cfg.output, zap.NewAtomicLevelAt(cfg.level))
	zopts := []zap.Option{zap.AddCaller()}
	if cfg.development {
		zopts = append(zopts, zap.Development())
	}
	return zap.New(core, zopts...).With(cfg.fields...), nil
}

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options control how the process-wide logger is built.
type Options struct {
	Level       string
	Service     string
	Version     string
	Environment string
}

// New builds a structured JSON zap.Logger and replaces the globals. Every
// line carries the service identity so aggregated logs from several catalog
// instances stay distinguishable.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Environment == "development" {
		// Keep every line in development; sampling only matters under
		// production volume.
		cfg.Sampling = nil
	}

	level := opts.Level
	if level == "" {
		level = "info"
	}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	if opts.Service != "" {
		fields := []zap.Field{zap.String("service", opts.Service)}
		if opts.Version != "" {
			fields = append(fields, zap.String("version", opts.Version))
		}
		if opts.Environment != "" {
			fields = append(fields, zap.String("env", opts.Environment))
		}
		log = log.With(fields...)
	}

	zap.ReplaceGlobals(log)
	return log, nil
}

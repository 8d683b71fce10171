// Package logging builds the zap logger used by the numcast binary.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/consts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level,omitempty"`

	// Format is the output format (json, console)
	Format string `yaml:"format,omitempty"`

	// Output is the output destination (stdout, stderr, file path)
	Output string `yaml:"output,omitempty"`

	// Development enables development mode
	Development bool `yaml:"development,omitempty"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Level:  consts.DefaultLogLevel,
		Format: consts.DefaultLogFormat,
		Output: consts.DefaultLogOutput,
	}
}

// WithDefaults fills empty fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Level == "" {
		c.Level = def.Level
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	return c
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	cfg = cfg.WithDefaults()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level: %s", cfg.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console":
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("invalid log format: %s", cfg.Format)
	}

	var sink zapcore.WriteSyncer
	switch cfg.Output {
	case "stdout":
		sink = zapcore.Lock(os.Stdout)
	case "stderr":
		sink = zapcore.Lock(os.Stderr)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, consts.ModeFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open log file: %s", cfg.Output)
		}
		sink = zapcore.AddSync(f)
	}

	core := zapcore.NewCore(encoder, sink, level)
	if cfg.Development {
		return zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
	}
	return zap.New(core, zap.AddCaller()), nil
}

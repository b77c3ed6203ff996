// Package logging builds the zap logger shared by service commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006/01/02 15:04:05.000"

// Config controls log output.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// JSON switches every core to the JSON encoder.
	JSON bool
	// Dir enables a rotating <Service>.log file next to stderr output.
	Dir string
	// Service names the log file and is attached to every entry.
	Service string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Stderr overrides the console destination. Nil means os.Stderr.
	Stderr io.Writer
}

// Logger bundles the zap logger with its adjustable level and the file
// writers that must be closed on shutdown.
type Logger struct {
	*zap.Logger
	Level   zap.AtomicLevel
	closers []io.Closer
}

// New builds a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(cfg.JSON), zapcore.Lock(zapcore.AddSync(stderr)), level),
	}

	var closers []io.Closer
	if cfg.Dir != "" {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, serviceName(cfg)+".log"),
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 5),
			MaxAge:     orDefault(cfg.MaxAgeDays, 7),
			Compress:   true,
		}
		closers = append(closers, writer)
		cores = append(cores, zapcore.NewCore(newEncoder(cfg.JSON), zapcore.AddSync(writer), level))
	}

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.PanicLevel),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 1000, 10)
		}),
	}
	log := zap.New(zapcore.NewTee(cores...), opts...)
	if cfg.Service != "" {
		log = log.With(zap.String("service", cfg.Service))
	}
	return &Logger{Logger: log, Level: level, closers: closers}, nil
}

// Close flushes buffered entries and closes rotating files.
func (l *Logger) Close() error {
	_ = l.Sync()
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func newEncoder(json bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	if json {
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(cfg)
}

func serviceName(cfg Config) string {
	if cfg.Service != "" {
		return cfg.Service
	}
	return "app"
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

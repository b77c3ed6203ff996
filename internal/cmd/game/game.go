// Package game parses game command flags and starts the session server.
package game

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	entrypoint "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/cmd"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/logging"
	server "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/app"
)

// Config holds game command configuration. Environment variables carry the
// FRJ_GAME_ prefix.
type Config struct {
	Port        int    `env:"PORT" envDefault:"50051"`
	Addr        string `env:"ADDR"`
	MetricsAddr string `env:"METRICS_ADDR"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR"`
	LogJSON  bool   `env:"LOG_JSON"`

	MailboxSize      int           `env:"MAILBOX_SIZE" envDefault:"1024"`
	PushBuffer       int           `env:"PUSH_BUFFER" envDefault:"64"`
	SessionExpiry    time.Duration `env:"SESSION_EXPIRY" envDefault:"30m"`
	SweepMinInterval time.Duration `env:"SWEEP_MIN_INTERVAL" envDefault:"1m"`
	SweepMaxInterval time.Duration `env:"SWEEP_MAX_INTERVAL" envDefault:"2m"`
	ActionRate       float64       `env:"ACTION_RATE" envDefault:"20"`
	ActionBurst      int           `env:"ACTION_BURST" envDefault:"40"`
}

// Usage prints the command synopsis and its flags.
func Usage(fs *flag.FlagSet) func(io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "usage: %s [flags] [port]\n\nflags:\n", fs.Name())
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}

// ParseConfig parses environment, flags and the optional positional port.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(entrypoint.ServiceGame, &cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Admin HTTP address for /metrics and /healthz (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for a rotating log file (empty logs to stderr only)")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "Emit JSON log lines")
	fs.DurationVar(&cfg.SessionExpiry, "session-expiry", cfg.SessionExpiry, "Idle time after which a session is evicted")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	port, err := entrypoint.ParsePortArg(fs.Args(), cfg.Port)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port
	return cfg, nil
}

// Run starts the game session server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		JSON:    cfg.LogJSON,
		Dir:     cfg.LogDir,
		Service: entrypoint.ServiceGame,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	options := entrypoint.RunOptions{Logger: logger.Logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceGame, options, func(ctx context.Context) error {
		logger.Info("starting game server",
			zap.Int("port", cfg.Port),
			zap.String("addr", cfg.Addr),
			zap.String("metrics_addr", cfg.MetricsAddr),
			zap.Duration("session_expiry", cfg.SessionExpiry))
		return server.Run(ctx, serverConfig(cfg, logger.Logger))
	})
}

func serverConfig(cfg Config, logger *zap.Logger) server.Config {
	return server.Config{
		Port:             cfg.Port,
		Addr:             cfg.Addr,
		MetricsAddr:      cfg.MetricsAddr,
		MailboxSize:      cfg.MailboxSize,
		PushBuffer:       cfg.PushBuffer,
		SessionExpiry:    cfg.SessionExpiry,
		SweepMinInterval: cfg.SweepMinInterval,
		SweepMaxInterval: cfg.SweepMaxInterval,
		ActionRate:       cfg.ActionRate,
		ActionBurst:      cfg.ActionBurst,
		Logger:           logger,
	}
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/config"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceGame identifies the game session server for telemetry and CLI naming.
const ServiceGame = "game"

// EnvPrefix is the environment variable prefix shared by every command.
const EnvPrefix = "FRJ_"

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
	// Logger receives telemetry shutdown failures. Nil discards them.
	Logger *zap.Logger
}

// ParseConfig loads environment defaults into cfg. Variables are read with
// the FRJ_<SERVICE>_ prefix, e.g. FRJ_GAME_PORT.
func ParseConfig[T any](service string, cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	return config.ParseEnvWithPrefix(cfg, EnvPrefix+strings.ToUpper(service)+"_")
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](service string, cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(service, cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// ParsePortArg reads the optional positional port left after flag parsing.
// It returns fallback when no positional argument is present.
func ParsePortArg(rest []string, fallback int) (int, error) {
	switch len(rest) {
	case 0:
		return fallback, nil
	case 1:
	default:
		return 0, fmt.Errorf("expected at most one positional argument, got %d", len(rest))
	}
	port, err := strconv.Atoi(strings.TrimSpace(rest[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", rest[0], err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}

// RunWithTelemetry configures observability and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures observability and executes a service run loop.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("otel shutdown", zap.String("service", service), zap.Error(err))
		}
	}()
	return run(ctx)
}

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	gamecmd "github.com/fridge-dev/frj-game-ngn-sub000/internal/cmd/game"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/config"
)

func main() {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := gamecmd.ParseConfig(fs, os.Args[1:])
	if err != nil {
		config.UsageExitf(gamecmd.Usage(fs), "parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gamecmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}

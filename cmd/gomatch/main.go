package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/t14raptor/go-match/internal/cli"
	"github.com/t14raptor/go-match/internal/config"
)

const defaultConfigPath = "gomatch.yaml"

func main() {
	path := os.Getenv("GOMATCH_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	level, err := settings.ZapLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "log level: %v\n", err)
		os.Exit(1)
	}

	log, err := cli.NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	cmd, err := cli.NewRootCommand(cli.Config{Logger: log, Settings: settings})
	if err != nil {
		log.Fatal("build command", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error("command failed", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}

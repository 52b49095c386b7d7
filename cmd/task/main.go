// Package main is the entry point for the task CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"task/internal/backend/textfile"
	"task/internal/cli"
	"task/internal/commands"
	"task/internal/config"
	"task/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		return textfile.New(cfg, logger), nil
	}

	// Task files live in the current directory.
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, ".", factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

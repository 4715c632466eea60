// Package main is the entry point for the ztpl CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zaneops/templates/cmd/ztpl/commands"
	"github.com/zaneops/templates/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.ExecuteContext(ctx)
	stop()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

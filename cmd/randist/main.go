package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"randist/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// the command's own logger may not exist if config failed to load
		logger.NewDefault().Error("command failed", "err", err)
		os.Exit(1)
	}
}

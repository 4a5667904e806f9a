package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rops/cmd/cli/app/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cmd.Execute(ctx)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}

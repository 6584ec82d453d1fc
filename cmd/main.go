package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cargo-launcher/cargo-launcher/internal/interfaces/cli"
	"github.com/cargo-launcher/cargo-launcher/internal/interfaces/di"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, di.NewCLIContainer(di.Options{}), os.Args[1:])
	cancel()
	os.Exit(code)
}

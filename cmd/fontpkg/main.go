package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ralt/fontpkg/internal/cli"
	"github.com/sirupsen/logrus"
)

const (
	exitFailure   = 2
	exitInterrupt = 130
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs(cli.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		if ctx.Err() != nil {
			os.Exit(exitInterrupt)
		}
		os.Exit(exitFailure)
	}
}

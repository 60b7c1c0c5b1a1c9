package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/pubcop/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(cmd.ExpandListArgs(os.Args[1:]))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Failed checks have already been reported on stdout
		if !errors.Is(err, cmd.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/lansweep/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	lansweepRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup close handler
	go func() {
		<-c
		fmt.Fprintln(os.Stderr, "\r- Ctrl+C pressed in Terminal, waiting for running probes...")
		cancel()
	}()

	if err := lansweepRunner.Run(ctx); err != nil {
		gologger.Fatal().Msgf("%s\n", runner.FatalMessage(err))
	}
}

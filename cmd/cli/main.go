// Command turnmaze solves a maze where moving forward costs 1 and turning
// costs 1000, writes the maze with the cheapest path drawn in, and prints the
// search counters.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/turnmaze/internal/app"
	"github.com/vk/turnmaze/internal/cli"
	"github.com/vk/turnmaze/internal/hcl"
)

// main is the entrypoint for the turnmaze application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs is swapped in tests.
var parseArgs = cli.Parse

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	// A panic anywhere below is a bug, but it is still reported like any
	// other fatal error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	appConfig, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	turnmaze, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return err
	}

	return turnmaze.Run(context.Background())
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/turnmaze/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("turnmaze", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
turnmaze - finds the cheapest path through a maze where every turn costs 1000.

Usage:
  turnmaze [options] [WORKDIR]

Arguments:
  WORKDIR
    Directory holding input.txt; the annotated result is written to output.txt
    in the same directory. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	workDirFlag := flagSet.String("workdir", "", "Directory holding input.txt and output.txt.")
	wFlag := flagSet.String("w", "", "Directory holding input.txt and output.txt (shorthand).")
	inputFlag := flagSet.String("input", "", "Maze file to solve, overriding WORKDIR/input.txt.")
	outputFlag := flagSet.String("output", "", "File to write the result to, overriding WORKDIR/output.txt.")
	configFlag := flagSet.String("config", "", "HCL settings file or directory describing the mazes to solve.")
	cFlag := flagSet.String("c", "", "HCL settings file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one WORKDIR argument, got %d", flagSet.NArg())}
	}

	workDir := "."
	if *workDirFlag != "" {
		workDir = *workDirFlag
	} else if *wFlag != "" {
		workDir = *wFlag
	} else if flagSet.NArg() > 0 {
		workDir = flagSet.Arg(0)
	}
	slog.Debug("Working directory determined.", "path", workDir)

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		WorkDir:    workDir,
		InputPath:  *inputFlag,
		OutputPath: *outputFlag,
		ConfigPath: configPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/app"
	"github.com/specialistvlad/blocksched/internal/cli"
	"github.com/specialistvlad/blocksched/internal/config"
	"github.com/specialistvlad/blocksched/internal/hcladapter"
)

// main is the entrypoint for the blocksched application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	schedApp, err := startApp(outW, errW, appConfig, hcladapter.NewLoader())
	if err != nil {
		return err
	}

	// Scheduler assertions are not recovered.
	return schedApp.Run(context.Background())
}

// startApp builds the app. The app panics on critical load errors, so we
// recover here to provide a clean exit message to the user.
func startApp(outW, errW io.Writer, cfg *app.Config, loader config.Loader) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(outW, errW, cfg, loader), nil
}

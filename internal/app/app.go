package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/config"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	program *ir.Program
	target  *target.Target
}

// NewApp is the constructor for the main application. It loads the program
// and the target description up front; a failure to load either is a fatal
// startup error and panics.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	prog, err := loader.LoadProgram(ctx, cfg.ProgramPath)
	if err != nil {
		panic(errors.Wrap(err, "failed to load program"))
	}
	logger.Debug("Program loaded.", "functions", len(prog.Functions))

	tgt := target.Default()
	if cfg.TargetPath != "" {
		tgt, err = loader.LoadTarget(ctx, cfg.TargetPath)
		if err != nil {
			panic(errors.Wrap(err, "failed to load target"))
		}
	}
	logger.Debug("Target selected.", "target", tgt.Name)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		program: prog,
		target:  tgt,
	}
}

// Program returns the loaded program. This is primarily for testing.
func (a *App) Program() *ir.Program {
	return a.program
}

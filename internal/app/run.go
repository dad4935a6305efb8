package app

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/sched"
)

// Run schedules every block of the loaded program and writes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.program.Functions) == 0 {
		a.logger.Warn("No functions found in program, scheduling not required.")
		return nil
	}

	var opts []sched.Option
	if a.config.Verify {
		opts = append(opts, sched.WithStrictChecks())
	}
	s := sched.New(a.target, opts...)

	var before []blockSnapshot
	if a.config.Verify {
		before = snapshot(a.program)
	}

	a.logger.Info("Scheduling started.", "functions", len(a.program.Functions), "workers", a.config.WorkerCount, "target", a.target.Name)
	reports, err := sched.NewPass(s, a.config.WorkerCount).RunProgram(ctx, a.program)
	if err != nil {
		return errors.Wrap(err, "scheduling failed")
	}

	if a.config.Verify {
		if err := verifyAll(before); err != nil {
			return err
		}
		a.logger.Debug("Every schedule verified.", "blocks", len(before))
	}

	if err := a.writeProgram(); err != nil {
		return err
	}
	if a.config.Report {
		writeReport(a.outW, reports)
	}

	cycles := 0
	for _, r := range reports {
		cycles += r.Cycles
	}
	a.logger.Info("Scheduling finished.", "blocks", len(reports), "cycles", cycles)
	return nil
}

func (a *App) writeProgram() error {
	text := a.program.String()
	if a.config.OutputPath == "" {
		_, err := io.WriteString(a.outW, text)
		return errors.Wrap(err, "failed to write program")
	}
	if err := os.WriteFile(a.config.OutputPath, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "failed to write program to %s", a.config.OutputPath)
	}
	a.logger.Debug("Program written.", "path", a.config.OutputPath)
	return nil
}

// verifyAll checks every block against its snapshot and reports the first
// failure in program order.
func verifyAll(snaps []blockSnapshot) error {
	for _, snap := range snaps {
		if err := sched.Verify(snap.order, snap.block.Instructions()); err != nil {
			return errors.Wrapf(err, "verification failed for function %s, block %s", snap.block.Func().Name(), snap.block.Label())
		}
	}
	return nil
}

type blockSnapshot struct {
	block *ir.BasicBlock
	order []*ir.Instruction
}

// snapshot records the original order of every block, in program order.
func snapshot(prog *ir.Program) []blockSnapshot {
	var out []blockSnapshot
	for _, fn := range prog.Functions {
		for _, bb := range fn.Blocks() {
			out = append(out, blockSnapshot{block: bb, order: bb.Instructions()})
		}
	}
	return out
}

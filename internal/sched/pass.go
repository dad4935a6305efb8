package sched

import (
	"context"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
	"golang.org/x/sync/errgroup"
)

// Pass runs a Scheduler over every block of a function or program.
type Pass struct {
	sched   *Scheduler
	workers int
}

// NewPass returns a pass scheduling up to workers blocks at a time. Values
// below 2 schedule blocks one after another.
func NewPass(s *Scheduler, workers int) *Pass {
	return &Pass{sched: s, workers: workers}
}

// RunFunction schedules every block of fn and returns their reports in block
// order. Blocks are independent, so they may be scheduled concurrently; the
// first failure fails the pass.
func (p *Pass) RunFunction(ctx context.Context, fn *ir.Function) ([]*Report, error) {
	logger := ctxlog.FromContext(ctx).With("function", fn.Name())
	ctx = ctxlog.WithLogger(ctx, logger)

	blocks := fn.Blocks()
	reports := make([]*Report, len(blocks))

	if p.workers < 2 {
		for i, bb := range blocks {
			r, err := p.sched.ScheduleReport(ctx, bb)
			if err != nil {
				return nil, errors.Wrapf(err, "function %s", fn.Name())
			}
			reports[i] = r
		}
		return reports, nil
	}

	logger.Debug("Scheduling blocks concurrently.", "blocks", len(blocks), "workers", p.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, bb := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := p.sched.ScheduleReport(gctx, bb)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "function %s", fn.Name())
	}
	return reports, nil
}

// RunProgram schedules every function of prog in order.
func (p *Pass) RunProgram(ctx context.Context, prog *ir.Program) ([]*Report, error) {
	var all []*Report
	for _, fn := range prog.Functions {
		reports, err := p.RunFunction(ctx, fn)
		if err != nil {
			return nil, err
		}
		all = append(all, reports...)
	}
	return all, nil
}

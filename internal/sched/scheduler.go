package sched

import (
	"context"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// Scheduler is a list scheduler for single basic blocks. It holds no per-block
// state, so one Scheduler may serve concurrent passes over different blocks.
type Scheduler struct {
	machine Machine
	strict  bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithStrictChecks runs a full cycle check over every dependency graph before
// scheduling it.
func WithStrictChecks() Option {
	return func(s *Scheduler) { s.strict = true }
}

// New returns a scheduler for machine m.
func New(m Machine, opts ...Option) *Scheduler {
	s := &Scheduler{machine: m}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule reorders bb in place. On error the block is unchanged.
func (s *Scheduler) Schedule(ctx context.Context, bb *ir.BasicBlock) error {
	_, err := s.ScheduleReport(ctx, bb)
	return err
}

// ScheduleReport is Schedule that also returns what was decided for every
// instruction.
func (s *Scheduler) ScheduleReport(ctx context.Context, bb *ir.BasicBlock) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateBlock(bb); err != nil {
		return nil, errors.Wrap(err, "scheduling rejected")
	}
	report := &Report{Block: bb.Label()}
	if bb.Len() == 0 {
		return report, nil
	}

	g := buildGraph(ctx, bb)
	report.Edges = g.edges
	if s.strict {
		if err := g.detectCycles(); err != nil {
			invariant(false, "block %s: %v", bb.Label(), err)
		}
	}

	g.calcDepth()
	for n := range g.nodes {
		g.nodes[n].cost = Cost(g.nodes[n].inst, s.machine)
	}
	logger.Debug("Analysis complete.", "block", bb.Label(), "critical_path", g.maxDepth())

	emptyBlock(bb)

	l := &listState{g: g, terminator: g.terminator()}
	for n := range g.nodes {
		if g.nodes[n].parentCount == 0 {
			l.ready = append(l.ready, n)
		}
	}
	logger.Debug("Ready set initialised.", "block", bb.Label(), "ready", len(l.ready))

	for remaining := len(g.nodes); remaining > 0; remaining-- {
		invariant(len(l.ready) > 0, "block %s: ready set empty with %d nodes unscheduled", bb.Label(), remaining)

		n := l.take(l.choose())
		nd := &g.nodes[n]

		issue := l.clock
		bb.InsertTail(nd.inst)
		latency := s.machine.Latency(nd.inst)
		l.clock += latency

		report.Entries = append(report.Entries, Entry{
			Instruction:    nd.inst,
			Cycle:          issue,
			Cost:           nd.cost,
			Latency:        latency,
			Depth:          nd.depth,
			PreferredCycle: nd.preferredCycle,
		})

		for _, c := range nd.children {
			child := &g.nodes[c]
			invariant(!child.retired && child.parentCount > 0, "block %s: %s released twice", bb.Label(), child.inst.Label())
			child.preferredCycle = max(child.preferredCycle, issue+nd.cost)
			child.parentCount--
			if child.parentCount == 0 {
				l.ready = append(l.ready, c)
			}
		}
		g.retire(n)
	}
	invariant(len(l.ready) == 0, "block %s: %d nodes left ready after the last emission", bb.Label(), len(l.ready))

	report.Cycles = l.clock
	logger.Debug("Block scheduled.", "block", bb.Label(), "instructions", len(report.Entries), "cycles", report.Cycles)
	return report, nil
}

// emptyBlock detaches every instruction from bb, discarding the old order.
func emptyBlock(bb *ir.BasicBlock) {
	for inst := bb.Entry(); inst != nil; inst = bb.Entry() {
		bb.Remove(inst)
	}
}

// listState is the mutable part of one scheduling loop.
type listState struct {
	g          *graph
	ready      []int
	clock      int
	terminator int
}

// choose folds the comparator over the ready set from left to right and
// returns the position of the winner.
func (l *listState) choose() int {
	best := 0
	for i := 1; i < len(l.ready); i++ {
		if l.better(l.ready[i], l.ready[best]) {
			best = i
		}
	}
	return best
}

// take removes and returns the ready entry at position i, keeping the order
// of the others.
func (l *listState) take(i int) int {
	n := l.ready[i]
	l.ready = append(l.ready[:i], l.ready[i+1:]...)
	return n
}

// better reports whether node a should issue before node b.
func (l *listState) better(a, b int) bool {
	if a == l.terminator {
		return false
	}
	if b == l.terminator {
		return true
	}

	na, nb := &l.g.nodes[a], &l.g.nodes[b]
	if na.preferredCycle > l.clock || nb.preferredCycle > l.clock {
		if na.preferredCycle != nb.preferredCycle {
			return na.preferredCycle < nb.preferredCycle
		}
	}
	if na.cost != nb.cost {
		return na.cost > nb.cost
	}
	return na.depth > nb.depth
}

func (g *graph) maxDepth() int {
	d := 0
	for n := range g.nodes {
		d = max(d, g.nodes[n].depth)
	}
	return d
}

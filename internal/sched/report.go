package sched

import "github.com/specialistvlad/blocksched/internal/ir"

// Entry describes one emitted instruction.
type Entry struct {
	Instruction *ir.Instruction
	// Cycle is the virtual clock when the instruction was emitted.
	Cycle int
	Cost  int
	// Latency is the target latency the clock advanced by.
	Latency        int
	Depth          int
	PreferredCycle int
}

// Stalled reports whether the instruction was emitted before the cycle its
// parents asked for.
func (e Entry) Stalled() bool {
	return e.PreferredCycle > e.Cycle
}

// Report is the outcome of scheduling one block.
type Report struct {
	Block   string
	Entries []Entry
	Edges   int
	// Cycles is the final value of the virtual clock.
	Cycles int
}

// Order returns the scheduled instructions.
func (r *Report) Order() []*ir.Instruction {
	out := make([]*ir.Instruction, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Instruction
	}
	return out
}

// Stalls counts entries emitted ahead of their preferred cycle.
func (r *Report) Stalls() int {
	n := 0
	for _, e := range r.Entries {
		if e.Stalled() {
			n++
		}
	}
	return n
}

package sched

import (
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
)

// Machine is the target description the scheduler consults.
type Machine interface {
	Latency(inst *ir.Instruction) int
	Throughput(inst *ir.Instruction) int
	Costs() target.CostTable
}

// Cost estimates how many cycles must pass after inst issues before its
// dependents can safely issue. Heavier instructions are scheduled earlier so
// their latency overlaps with other work; moves are free so they sink.
func Cost(inst *ir.Instruction, m Machine) int {
	c := m.Costs()

	switch inst.Op().Class() {
	case ir.ClassAtomic:
		return c.Atomic
	case ir.ClassInterp:
		return c.Interp
	case ir.ClassTexture:
		return c.Texture
	case ir.ClassLoad:
		return c.Load
	case ir.ClassMove:
		return 0
	}

	for _, v := range inst.Srcs() {
		if v.Class().IsMemory() {
			if v.Class() == ir.FileMemoryLocal {
				return c.SrcLocal
			}
			return c.SrcOther
		}
	}
	for _, v := range inst.Defs() {
		if v.Class().IsMemory() {
			if v.Class() == ir.FileMemoryLocal {
				return c.DefLocal
			}
			return c.DefOther
		}
	}

	return m.Throughput(inst) + m.Latency(inst)
}

// IsLoadLike reports whether op belongs to the long fixed-latency family
// (texture, interpolation, load, fetch, atomic).
func IsLoadLike(op ir.Opcode) bool {
	switch op.Class() {
	case ir.ClassAtomic, ir.ClassInterp, ir.ClassTexture, ir.ClassLoad:
		return true
	default:
		return false
	}
}

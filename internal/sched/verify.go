package sched

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// Verify checks that after is a legal schedule of the block whose original
// order was before: the same instructions exactly once, every register and
// memory hazard of the original order preserved, fixed instructions in their
// original slot and the original last instruction still last.
func Verify(before, after []*ir.Instruction) error {
	if len(before) != len(after) {
		return errors.Errorf("schedule has %d instructions, block had %d", len(after), len(before))
	}

	orig := mapset.NewThreadUnsafeSet[*ir.Instruction](before...)
	if orig.Cardinality() != len(before) {
		return errors.New("original order lists an instruction twice")
	}
	seen := mapset.NewThreadUnsafeSet[*ir.Instruction]()
	pos := make(map[*ir.Instruction]int, len(after))
	for i, inst := range after {
		if !orig.Contains(inst) {
			return errors.Errorf("instruction %s was not in the block", inst.Label())
		}
		if !seen.Add(inst) {
			return errors.Errorf("instruction %s emitted twice", inst.Label())
		}
		pos[inst] = i
	}

	for _, inst := range before {
		for _, v := range inst.Defs() {
			if !v.Class().IsRegister() {
				continue
			}
			for _, use := range v.Uses() {
				if orig.Contains(use) && pos[use] <= pos[inst] {
					return errors.Errorf("%s reads %s before %s defines it", use.Label(), v, inst.Label())
				}
			}
		}
	}

	for i, a := range before {
		for _, b := range before[i+1:] {
			if kind := memoryHazard(a, b); kind != "" && pos[a] > pos[b] {
				return errors.Errorf("memory %s hazard between %s and %s reversed", kind, a.Label(), b.Label())
			}
		}
	}

	for i, inst := range before {
		if inst.Fixed() && pos[inst] != i {
			return errors.Errorf("fixed instruction %s moved from %d to %d", inst.Label(), i, pos[inst])
		}
	}
	if n := len(before); n > 0 && after[n-1] != before[n-1] {
		return errors.Errorf("block terminator %s is no longer last", before[n-1].Label())
	}
	return nil
}

// memoryHazard names the hazard that orders a before b, or "" if their memory
// accesses may be swapped.
func memoryHazard(a, b *ir.Instruction) string {
	ar, aw := memorySpaces(a)
	br, bw := memorySpaces(b)
	switch {
	case aw&br != 0:
		return "RAW"
	case aw&bw != 0:
		return "WAW"
	case ar&bw != 0:
		return "WAR"
	}
	return ""
}

// memorySpaces returns bitmasks of the memory spaces inst reads and writes.
func memorySpaces(inst *ir.Instruction) (reads, writes uint8) {
	for _, v := range inst.Srcs() {
		if v.Class().IsMemory() {
			reads |= 1 << v.Class().MemoryIndex()
		}
	}
	for _, v := range inst.Defs() {
		if v.Class().IsMemory() {
			writes |= 1 << v.Class().MemoryIndex()
		}
	}
	return reads, writes
}

package sched

import (
	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// validateBlock checks the operand model before the block is drained, so a
// failure never leaves a half-scheduled block behind. Only instructions of bb
// are dereferenced; readers in other blocks are matched by identity.
func validateBlock(bb *ir.BasicBlock) error {
	if bb == nil {
		return errors.Wrap(ErrMalformedBlock, "nil block")
	}

	pos := make(map[*ir.Instruction]int, bb.Len())
	n := 0
	for inst := bb.Entry(); inst != nil; inst = inst.Next() {
		if inst.Block() != bb {
			return errors.Wrapf(ErrMalformedBlock, "block %s: instruction %s links to another block", bb.Label(), inst.Label())
		}
		if _, seen := pos[inst]; seen {
			return errors.Wrapf(ErrMalformedBlock, "block %s: instruction %s appears twice", bb.Label(), inst.Label())
		}
		pos[inst] = n
		n++
	}
	if n != bb.Len() {
		return errors.Wrapf(ErrMalformedBlock, "block %s: holds %d instructions, reports %d", bb.Label(), n, bb.Len())
	}

	for inst := bb.Entry(); inst != nil; inst = inst.Next() {
		if err := checkOperands(bb, inst, inst.Srcs(), "source"); err != nil {
			return err
		}
		if err := checkOperands(bb, inst, inst.Defs(), "destination"); err != nil {
			return err
		}
		for _, v := range inst.Defs() {
			if !v.Class().IsRegister() {
				continue
			}
			for _, use := range v.Uses() {
				if use == nil {
					return errors.Wrapf(ErrMalformedBlock, "block %s: instruction %s: nil reader of %s", bb.Label(), inst.Label(), v)
				}
				if p, ok := pos[use]; ok && p <= pos[inst] {
					return errors.Wrapf(ErrMalformedBlock, "block %s: %s reads %s before instruction %s defines it", bb.Label(), use.Label(), v, inst.Label())
				}
			}
		}
	}
	return nil
}

func checkOperands(bb *ir.BasicBlock, inst *ir.Instruction, vals []*ir.Value, kind string) error {
	for i, v := range vals {
		if v == nil {
			return errors.Wrapf(ErrMalformedBlock, "block %s: instruction %s: nil %s operand %d", bb.Label(), inst.Label(), kind, i)
		}
		if !v.Class().Valid() {
			return errors.Wrapf(ErrMalformedBlock, "block %s: instruction %s: %s operand %d has storage class %s", bb.Label(), inst.Label(), kind, i, v.Class())
		}
	}
	return nil
}

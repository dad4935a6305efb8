package ir

import (
	"fmt"
	"strings"
)

// Instruction is a single operation inside a basic block. Instructions are
// linked into their block through prev/next pointers.
type Instruction struct {
	id    int
	name  string
	op    Opcode
	fixed bool
	srcs  []*Value
	defs  []*Value

	bb         *BasicBlock
	prev, next *Instruction
}

// ID is unique within the owning function and follows creation order.
func (i *Instruction) ID() int { return i.id }

// Name is an optional human label, such as the one given in a program file.
func (i *Instruction) Name() string { return i.name }

// Op returns the opcode.
func (i *Instruction) Op() Opcode { return i.op }

// Fixed reports whether the instruction must keep its position relative to
// every other instruction of its block.
func (i *Instruction) Fixed() bool { return i.fixed }

// SetFixed sets the fixed-position flag.
func (i *Instruction) SetFixed(fixed bool) { i.fixed = fixed }

// Srcs returns the source operands in order.
func (i *Instruction) Srcs() []*Value { return i.srcs }

// Defs returns the destination operands in order.
func (i *Instruction) Defs() []*Value { return i.defs }

// Block returns the block holding the instruction, or nil while detached.
func (i *Instruction) Block() *BasicBlock { return i.bb }

// Next returns the following instruction of the block.
func (i *Instruction) Next() *Instruction { return i.next }

// Prev returns the preceding instruction of the block.
func (i *Instruction) Prev() *Instruction { return i.prev }

// AddSrc appends a source operand and records the read on non-immediate
// values.
func (i *Instruction) AddSrc(v *Value) {
	i.srcs = append(i.srcs, v)
	if v != nil && v.class != FileImmediate {
		v.uses = append(v.uses, i)
	}
}

// AddDef appends a destination operand. A register value can only be defined
// once.
func (i *Instruction) AddDef(v *Value) {
	if v != nil && v.class.IsRegister() {
		if v.def != nil && v.def != i {
			panic(fmt.Sprintf("ir: value %s already defined by instruction %d", v, v.def.id))
		}
		v.def = i
	}
	i.defs = append(i.defs, v)
}

// Label returns the instruction name, or a generated one from its id.
func (i *Instruction) Label() string {
	if i.name != "" {
		return i.name
	}
	return fmt.Sprintf("i%d", i.id)
}

func (i *Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(i.Label())
	sb.WriteString(": ")
	if len(i.defs) > 0 {
		writeValues(&sb, i.defs)
		sb.WriteString(" = ")
	}
	sb.WriteString(string(i.op))
	if len(i.srcs) > 0 {
		sb.WriteByte(' ')
		writeValues(&sb, i.srcs)
	}
	if i.fixed {
		sb.WriteString(" !fixed")
	}
	return sb.String()
}

func writeValues(sb *strings.Builder, vals []*Value) {
	for n, v := range vals {
		if n > 0 {
			sb.WriteString(", ")
		}
		if v == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(v.String())
	}
}

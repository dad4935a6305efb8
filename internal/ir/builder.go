package ir

import "fmt"

// Builder appends instructions to a function in program order and resolves
// register names: a source names the single definition of that register, or a
// function input when there is none yet. A register name is bound once per
// function, so printed programs keep their meaning after reordering.
type Builder struct {
	fn      *Function
	bb      *BasicBlock
	current map[string]*Value
}

// NewBuilder returns a builder appending to fn.
func NewBuilder(fn *Function) *Builder {
	return &Builder{fn: fn, current: make(map[string]*Value)}
}

// Func returns the function being built.
func (b *Builder) Func() *Function { return b.fn }

// Block starts a new block; following instructions are appended to it.
func (b *Builder) Block(label string) *BasicBlock {
	b.bb = b.fn.NewBlock(label)
	return b.bb
}

// Check reports whether an instruction with these operands can be emitted: no
// destination register may already be defined, read as a function input, or
// named twice.
func (b *Builder) Check(defs, srcs []Operand) error {
	reads := make(map[string]bool, len(srcs))
	for _, s := range srcs {
		if s.Class.IsRegister() {
			reads[s.Name] = true
		}
	}
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if !d.Class.IsRegister() {
			continue
		}
		if v, ok := b.current[d.Name]; ok {
			if v.Def() == nil {
				return fmt.Errorf("register %s is defined after being read as a function input", d.Name)
			}
			return fmt.Errorf("register %s is already defined by %s", d.Name, v.Def().Label())
		}
		if seen[d.Name] {
			return fmt.Errorf("register %s is defined twice", d.Name)
		}
		if reads[d.Name] {
			return fmt.Errorf("register %s is defined after being read as a function input", d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Emit appends a new instruction to the current block. It panics if Check
// rejects the operands.
func (b *Builder) Emit(name string, op Opcode, defs, srcs []Operand) *Instruction {
	if b.bb == nil {
		panic("ir: Emit called before Block")
	}
	if err := b.Check(defs, srcs); err != nil {
		panic(fmt.Sprintf("ir: instruction %s: %v", name, err))
	}
	inst := b.fn.NewInstruction(name, op)
	for _, s := range srcs {
		inst.AddSrc(b.source(s))
	}
	for _, d := range defs {
		v := b.fn.NewValue(d.Class, d.Name, d.Offset)
		inst.AddDef(v)
		if d.Class.IsRegister() {
			b.current[d.Name] = v
		}
	}
	b.bb.InsertTail(inst)
	return inst
}

// EmitFixed is Emit followed by marking the instruction fixed.
func (b *Builder) EmitFixed(name string, op Opcode, defs, srcs []Operand) *Instruction {
	inst := b.Emit(name, op, defs, srcs)
	inst.SetFixed(true)
	return inst
}

func (b *Builder) source(o Operand) *Value {
	if !o.Class.IsRegister() {
		return b.fn.NewValue(o.Class, o.Name, o.Offset)
	}
	if v, ok := b.current[o.Name]; ok {
		return v
	}
	v := b.fn.NewValue(o.Class, o.Name, 0)
	b.current[o.Name] = v
	return v
}

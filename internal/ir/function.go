package ir

import "strings"

// Function owns a list of basic blocks and hands out value and instruction
// ids.
type Function struct {
	name   string
	blocks []*BasicBlock

	nextValue int
	nextInst  int
}

// NewFunction creates an empty function.
func NewFunction(name string) *Function {
	return &Function{name: name}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Blocks returns the blocks in layout order.
func (f *Function) Blocks() []*BasicBlock { return f.blocks }

// NewBlock appends an empty block.
func (f *Function) NewBlock(label string) *BasicBlock {
	bb := &BasicBlock{label: label, fn: f}
	f.blocks = append(f.blocks, bb)
	return bb
}

// NewValue creates an operand value. name is used for registers, offset for
// memory addresses and immediates.
func (f *Function) NewValue(class StorageClass, name string, offset int64) *Value {
	v := &Value{id: f.nextValue, name: name, class: class, offset: offset}
	f.nextValue++
	return v
}

// NewInstruction creates a detached instruction.
func (f *Function) NewInstruction(name string, op Opcode) *Instruction {
	i := &Instruction{id: f.nextInst, name: name, op: op}
	f.nextInst++
	return i
}

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString("function ")
	sb.WriteString(f.name)
	sb.WriteString(" {\n")
	for _, bb := range f.blocks {
		sb.WriteString(bb.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Program is the unit handed to the scheduling pass: every function loaded
// from a set of program files.
type Program struct {
	Functions []*Function
}

// Function looks a function up by name.
func (p *Program) Function(name string) (*Function, bool) {
	for _, f := range p.Functions {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

func (p *Program) String() string {
	var sb strings.Builder
	for n, f := range p.Functions {
		if n > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}

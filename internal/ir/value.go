package ir

import (
	"fmt"
	"strconv"
)

// Value is an operand of an instruction. Register values are defined at most
// once and keep the list of instructions that read them; memory values name an
// address space and an offset; immediates carry a constant.
type Value struct {
	id     int
	name   string
	class  StorageClass
	offset int64

	def  *Instruction
	uses []*Instruction
}

// ID is unique within the owning function.
func (v *Value) ID() int { return v.id }

// Name is the register name for register values, empty otherwise.
func (v *Value) Name() string { return v.name }

// Class returns the value's storage class.
func (v *Value) Class() StorageClass { return v.class }

// Offset is the address of a memory value or the constant of an immediate.
func (v *Value) Offset() int64 { return v.offset }

// Def returns the defining instruction, or nil for function inputs, memory
// references and immediates.
func (v *Value) Def() *Instruction { return v.def }

// Uses returns every instruction in the function that reads v, in the order
// the reads were recorded. An instruction reading v twice appears twice.
func (v *Value) Uses() []*Instruction { return v.uses }

func (v *Value) String() string {
	switch {
	case v.class == FileImmediate:
		return strconv.FormatInt(v.offset, 10)
	case v.class.IsMemory():
		return fmt.Sprintf("%c[%d]", memoryPrefix(v.class), v.offset)
	case v.name != "":
		return v.name
	default:
		return fmt.Sprintf("%%v%d", v.id)
	}
}

func memoryPrefix(c StorageClass) byte {
	switch c {
	case FileMemoryBuffer:
		return 'b'
	case FileMemoryGlobal:
		return 'g'
	case FileMemoryShared:
		return 's'
	case FileMemoryLocal:
		return 'l'
	}
	return '?'
}

package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is a parsed, not yet materialised operand reference.
type Operand struct {
	Class  StorageClass
	Name   string
	Offset int64
}

// Reg returns a register operand reference. The class is taken from the name
// prefix, see ParseOperand.
func Reg(name string) Operand {
	op, err := ParseOperand(name)
	if err != nil || !op.Class.IsRegister() {
		panic(fmt.Sprintf("ir: %q is not a register name", name))
	}
	return op
}

// Imm returns an immediate operand reference.
func Imm(v int64) Operand {
	return Operand{Class: FileImmediate, Offset: v}
}

// Mem returns a memory operand reference.
func Mem(class StorageClass, offset int64) Operand {
	if !class.IsMemory() {
		panic(fmt.Sprintf("ir: storage class %s is not a memory space", class))
	}
	return Operand{Class: class, Offset: offset}
}

// ParseOperand parses the textual operand syntax:
//
//	%rN  general purpose register
//	%pN  predicate
//	%cN  condition flags
//	%aN  address register
//	g[OFF], s[OFF], l[OFF], b[OFF]  global, shared, local and buffer memory
//	decimal or 0x-prefixed integer  immediate
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Operand{}, fmt.Errorf("empty operand")
	}

	if s[0] == '%' {
		if len(s) < 3 {
			return Operand{}, fmt.Errorf("invalid register %q", s)
		}
		var class StorageClass
		switch s[1] {
		case 'r':
			class = FileGPR
		case 'p':
			class = FilePredicate
		case 'c':
			class = FileFlags
		case 'a':
			class = FileAddress
		default:
			return Operand{}, fmt.Errorf("unknown register file in %q", s)
		}
		if _, err := strconv.ParseUint(s[2:], 10, 32); err != nil {
			return Operand{}, fmt.Errorf("invalid register number in %q", s)
		}
		return Operand{Class: class, Name: s}, nil
	}

	if len(s) > 3 && s[1] == '[' && s[len(s)-1] == ']' {
		var class StorageClass
		switch s[0] {
		case 'g':
			class = FileMemoryGlobal
		case 's':
			class = FileMemoryShared
		case 'l':
			class = FileMemoryLocal
		case 'b':
			class = FileMemoryBuffer
		default:
			return Operand{}, fmt.Errorf("unknown memory space in %q", s)
		}
		off, err := strconv.ParseInt(s[2:len(s)-1], 0, 64)
		if err != nil {
			return Operand{}, fmt.Errorf("invalid memory offset in %q", s)
		}
		return Operand{Class: class, Offset: off}, nil
	}

	imm, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("unrecognised operand %q", s)
	}
	return Imm(imm), nil
}

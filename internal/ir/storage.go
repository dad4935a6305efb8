package ir

import "fmt"

// StorageClass is the register file or address space an operand lives in.
type StorageClass uint8

const (
	// FileNone marks an operand whose storage class was never set.
	FileNone StorageClass = iota
	FileGPR
	FilePredicate
	FileFlags
	FileAddress
	FileImmediate
	FileMemoryBuffer
	FileMemoryGlobal
	FileMemoryShared
	FileMemoryLocal

	fileCount
)

// MemorySpaces is the number of memory storage classes. Memory hazards are
// tracked per space, see StorageClass.MemoryIndex.
const MemorySpaces = int(FileMemoryLocal-FileMemoryBuffer) + 1

var storageNames = [...]string{
	FileNone:         "none",
	FileGPR:          "gpr",
	FilePredicate:    "predicate",
	FileFlags:        "flags",
	FileAddress:      "address",
	FileImmediate:    "immediate",
	FileMemoryBuffer: "buffer",
	FileMemoryGlobal: "global",
	FileMemoryShared: "shared",
	FileMemoryLocal:  "local",
}

func (c StorageClass) String() string {
	if c < fileCount {
		return storageNames[c]
	}
	return fmt.Sprintf("StorageClass(%d)", uint8(c))
}

// Valid reports whether c is one of the known storage classes.
func (c StorageClass) Valid() bool {
	return c > FileNone && c < fileCount
}

// IsRegister reports whether c is a register file whose definitions carry
// use lists.
func (c StorageClass) IsRegister() bool {
	switch c {
	case FileGPR, FilePredicate, FileFlags, FileAddress:
		return true
	default:
		return false
	}
}

// IsMemory reports whether c is one of the memory address spaces.
func (c StorageClass) IsMemory() bool {
	switch c {
	case FileMemoryBuffer, FileMemoryGlobal, FileMemoryShared, FileMemoryLocal:
		return true
	default:
		return false
	}
}

// MemoryIndex maps a memory storage class to [0, MemorySpaces). It panics for
// non-memory classes.
func (c StorageClass) MemoryIndex() int {
	if !c.IsMemory() {
		panic(fmt.Sprintf("ir: storage class %s is not a memory space", c))
	}
	return int(c - FileMemoryBuffer)
}

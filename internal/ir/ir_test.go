package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageClass(t *testing.T) {
	assert.True(t, FileGPR.IsRegister())
	assert.True(t, FileAddress.IsRegister())
	assert.False(t, FileImmediate.IsRegister())
	assert.False(t, FileMemoryLocal.IsRegister())

	assert.True(t, FileMemoryBuffer.IsMemory())
	assert.True(t, FileMemoryLocal.IsMemory())
	assert.False(t, FileFlags.IsMemory())

	assert.Equal(t, 4, MemorySpaces)
	assert.Equal(t, 0, FileMemoryBuffer.MemoryIndex())
	assert.Equal(t, 3, FileMemoryLocal.MemoryIndex())
	assert.Panics(t, func() { FileGPR.MemoryIndex() })

	assert.False(t, FileNone.Valid())
	assert.False(t, StorageClass(200).Valid())
	assert.Equal(t, "shared", FileMemoryShared.String())
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in   string
		want Operand
	}{
		{"%r1", Operand{Class: FileGPR, Name: "%r1"}},
		{"%p0", Operand{Class: FilePredicate, Name: "%p0"}},
		{"%c3", Operand{Class: FileFlags, Name: "%c3"}},
		{"%a2", Operand{Class: FileAddress, Name: "%a2"}},
		{"g[16]", Operand{Class: FileMemoryGlobal, Offset: 16}},
		{"s[0x20]", Operand{Class: FileMemoryShared, Offset: 32}},
		{"l[0]", Operand{Class: FileMemoryLocal}},
		{"b[8]", Operand{Class: FileMemoryBuffer, Offset: 8}},
		{"42", Operand{Class: FileImmediate, Offset: 42}},
		{"-7", Operand{Class: FileImmediate, Offset: -7}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseOperand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "%", "%x1", "%rx", "q[1]", "g[zz]", "r1"} {
		_, err := ParseOperand(bad)
		assert.Error(t, err, "operand %q", bad)
	}
}

func TestBasicBlockList(t *testing.T) {
	fn := NewFunction("f")
	bb := fn.NewBlock("entry")
	a := fn.NewInstruction("a", OpNop)
	b := fn.NewInstruction("b", OpNop)
	c := fn.NewInstruction("c", OpNop)

	bb.InsertTail(b)
	bb.InsertTail(c)
	bb.InsertHead(a)
	require.Equal(t, []*Instruction{a, b, c}, bb.Instructions())
	assert.Equal(t, 3, bb.Len())
	assert.Same(t, a, bb.Entry())
	assert.Same(t, c, bb.Exit())
	assert.Same(t, bb, b.Block())

	bb.Remove(b)
	assert.Equal(t, []*Instruction{a, c}, bb.Instructions())
	assert.Nil(t, b.Block())
	assert.Same(t, c, a.Next())
	assert.Same(t, a, c.Prev())

	bb.Remove(a)
	bb.Remove(c)
	assert.Nil(t, bb.Entry())
	assert.Nil(t, bb.Exit())
	assert.Equal(t, 0, bb.Len())

	assert.Panics(t, func() { bb.Remove(a) })
	bb.InsertTail(a)
	assert.Panics(t, func() { bb.InsertTail(a) })
}

func TestBuilderResolvesRegisters(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)
	b.Block("entry")

	ld := b.Emit("ld", OpLoad, []Operand{Reg("%r1")}, []Operand{Mem(FileMemoryGlobal, 0)})
	add := b.Emit("add", OpAdd, []Operand{Reg("%r2")}, []Operand{Reg("%r1"), Reg("%r0")})
	mov := b.Emit("mov", OpMov, []Operand{Reg("%r4")}, []Operand{Imm(3)})

	b.Block("next")
	use := b.Emit("use", OpAdd, []Operand{Reg("%r3")}, []Operand{Reg("%r1"), Reg("%r2")})

	r1 := ld.Defs()[0]
	assert.Same(t, ld, r1.Def())
	assert.Equal(t, []*Instruction{add, use}, r1.Uses())

	input := add.Srcs()[1]
	assert.Nil(t, input.Def(), "%r0 is a function input")

	assert.Same(t, r1, use.Srcs()[0])
	assert.Equal(t, []*Instruction{use}, add.Defs()[0].Uses())
	assert.Empty(t, mov.Srcs()[0].Uses(), "immediates carry no uses")

	require.Len(t, fn.Blocks(), 2)
	assert.Equal(t, "add: %r2 = add %r1, %r0", add.String())
	assert.Equal(t, "ld: %r1 = ld g[0]", ld.String())
}

func TestBuilderRejectsRebinding(t *testing.T) {
	b := NewBuilder(NewFunction("f"))
	b.Block("entry")
	b.Emit("ld", OpLoad, []Operand{Reg("%r1")}, []Operand{Mem(FileMemoryGlobal, 0)})
	b.Emit("add", OpAdd, []Operand{Reg("%r2")}, []Operand{Reg("%r1"), Reg("%r0")})

	testCases := []struct {
		name    string
		defs    []Operand
		srcs    []Operand
		wantErr string
	}{
		{name: "fresh register", defs: []Operand{Reg("%r3")}, srcs: []Operand{Reg("%r1")}},
		{name: "memory destinations repeat", defs: []Operand{Mem(FileMemoryGlobal, 0), Mem(FileMemoryGlobal, 0)}},
		{name: "redefinition", defs: []Operand{Reg("%r1")}, srcs: []Operand{Imm(5)}, wantErr: "register %r1 is already defined by ld"},
		{name: "function input", defs: []Operand{Reg("%r0")}, wantErr: "register %r0 is defined after being read as a function input"},
		{name: "input read by the same instruction", defs: []Operand{Reg("%r7")}, srcs: []Operand{Reg("%r7")}, wantErr: "register %r7 is defined after being read"},
		{name: "two destinations", defs: []Operand{Reg("%r5"), Reg("%r5")}, wantErr: "register %r5 is defined twice"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Check(tc.defs, tc.srcs)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	assert.PanicsWithValue(t, "ir: instruction sin: register %r1 is already defined by ld", func() {
		b.Emit("sin", OpSin, []Operand{Reg("%r1")}, []Operand{Imm(5)})
	})
	assert.Equal(t, 2, b.bb.Len(), "a rejected instruction is not appended")
}

func TestAddDefTwicePanics(t *testing.T) {
	fn := NewFunction("f")
	v := fn.NewValue(FileGPR, "%r1", 0)
	fn.NewInstruction("a", OpMov).AddDef(v)
	assert.Panics(t, func() { fn.NewInstruction("b", OpMov).AddDef(v) })
}

func TestOpcodeClass(t *testing.T) {
	assert.Equal(t, ClassAtomic, OpAtom.Class())
	assert.Equal(t, ClassTexture, OpTxf.Class())
	assert.Equal(t, ClassInterp, OpPinterp.Class())
	assert.Equal(t, ClassLoad, OpVFetch.Class())
	assert.Equal(t, ClassMove, OpMov.Class())
	assert.Equal(t, ClassOther, Opcode("bogus").Class())
	assert.False(t, Opcode("bogus").Known())
	assert.True(t, OpExit.Known())
}

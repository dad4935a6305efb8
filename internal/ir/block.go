package ir

import (
	"fmt"
	"strings"
)

// BasicBlock is a straight-line sequence of instructions kept as a doubly
// linked list.
type BasicBlock struct {
	label string
	fn    *Function

	entry, exit *Instruction
	size        int
}

// Label returns the block label.
func (b *BasicBlock) Label() string { return b.label }

// Func returns the function owning the block.
func (b *BasicBlock) Func() *Function { return b.fn }

// Entry returns the first instruction, or nil for an empty block.
func (b *BasicBlock) Entry() *Instruction { return b.entry }

// Exit returns the last instruction, or nil for an empty block.
func (b *BasicBlock) Exit() *Instruction { return b.exit }

// Len returns the number of instructions.
func (b *BasicBlock) Len() int { return b.size }

// InsertTail appends a detached instruction.
func (b *BasicBlock) InsertTail(i *Instruction) {
	b.attach(i)
	i.prev = b.exit
	if b.exit != nil {
		b.exit.next = i
	} else {
		b.entry = i
	}
	b.exit = i
}

// InsertHead prepends a detached instruction.
func (b *BasicBlock) InsertHead(i *Instruction) {
	b.attach(i)
	i.next = b.entry
	if b.entry != nil {
		b.entry.prev = i
	} else {
		b.exit = i
	}
	b.entry = i
}

func (b *BasicBlock) attach(i *Instruction) {
	if i.bb != nil {
		panic(fmt.Sprintf("ir: instruction %s is still in block %s", i.Label(), i.bb.label))
	}
	i.bb = b
	b.size++
}

// Remove unlinks i from the block. The instruction keeps its operands and can
// be inserted again.
func (b *BasicBlock) Remove(i *Instruction) {
	if i.bb != b {
		panic(fmt.Sprintf("ir: instruction %s is not in block %s", i.Label(), b.label))
	}
	if i.prev != nil {
		i.prev.next = i.next
	} else {
		b.entry = i.next
	}
	if i.next != nil {
		i.next.prev = i.prev
	} else {
		b.exit = i.prev
	}
	i.prev, i.next, i.bb = nil, nil, nil
	b.size--
}

// Instructions returns a snapshot of the instructions in order.
func (b *BasicBlock) Instructions() []*Instruction {
	out := make([]*Instruction, 0, b.size)
	for i := b.entry; i != nil; i = i.next {
		out = append(out, i)
	}
	return out
}

func (b *BasicBlock) String() string {
	var sb strings.Builder
	sb.WriteString(b.label)
	sb.WriteString(":\n")
	for i := b.entry; i != nil; i = i.next {
		sb.WriteString("  ")
		sb.WriteString(i.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

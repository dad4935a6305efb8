package sched

import (
	"fmt"
	"testing"

	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
	"github.com/stretchr/testify/require"
)

// ops shortens operand lists in test programs.
func ops(s ...string) []ir.Operand {
	out := make([]ir.Operand, len(s))
	for i, o := range s {
		op, err := ir.ParseOperand(o)
		if err != nil {
			panic(err)
		}
		out[i] = op
	}
	return out
}

// newBlock builds a single-block function with the given body.
func newBlock(body func(b *ir.Builder)) *ir.BasicBlock {
	b := ir.NewBuilder(ir.NewFunction("test"))
	bb := b.Block("entry")
	body(b)
	return bb
}

// scheduleLabels schedules bb with the default target and returns the new
// order, after checking it with Verify.
func scheduleLabels(t *testing.T, bb *ir.BasicBlock) []string {
	t.Helper()
	before := bb.Instructions()
	s := New(target.Default(), WithStrictChecks())
	require.NoError(t, s.Schedule(t.Context(), bb))
	after := bb.Instructions()
	require.NoError(t, Verify(before, after))
	return labels(after)
}

func labels(insts []*ir.Instruction) []string {
	out := make([]string, len(insts))
	for i, inst := range insts {
		out[i] = inst.Label()
	}
	return out
}

// edges lists the graph's edges as "from->to" in insertion order.
func edges(g *graph) []string {
	var out []string
	for n := range g.nodes {
		for _, c := range g.nodes[n].children {
			out = append(out, fmt.Sprintf("%s->%s", g.nodes[n].inst.Label(), g.nodes[c].inst.Label()))
		}
	}
	return out
}

package testutil

import (
	"testing"

	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/stretchr/testify/require"
)

// Labels maps instructions to their labels, for readable order comparisons.
func Labels(insts []*ir.Instruction) []string {
	out := make([]string, len(insts))
	for i, inst := range insts {
		out[i] = inst.Label()
	}
	return out
}

// AssertBefore fails the test unless each label of chain is scheduled before
// the next one in order.
func AssertBefore(t *testing.T, order []string, chain ...string) {
	t.Helper()

	pos := make(map[string]int, len(order))
	for i, l := range order {
		pos[l] = i
	}
	for i := 0; i+1 < len(chain); i++ {
		a, okA := pos[chain[i]]
		b, okB := pos[chain[i+1]]
		require.True(t, okA && okB, "labels %q and %q must both be scheduled, got %v", chain[i], chain[i+1], order)
		require.Less(t, a, b, "expected %q before %q in %v", chain[i], chain[i+1], order)
	}
}

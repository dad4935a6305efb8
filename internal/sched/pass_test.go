package sched

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockSummary struct {
	Block  string
	Order  []string
	Cycles int
}

func summarize(reports []*Report) []blockSummary {
	out := make([]blockSummary, len(reports))
	for i, r := range reports {
		out[i] = blockSummary{Block: r.Block, Order: labels(r.Order()), Cycles: r.Cycles}
	}
	return out
}

func TestPass_ConcurrentMatchesSequential(t *testing.T) {
	s := New(target.Default())

	for seed := range uint64(20) {
		seqFn := randomFunction(seed, 6)
		parFn := randomFunction(seed, 6)

		seq, err := NewPass(s, 1).RunFunction(t.Context(), seqFn)
		require.NoError(t, err)
		par, err := NewPass(s, 4).RunFunction(t.Context(), parFn)
		require.NoError(t, err)

		if diff := cmp.Diff(summarize(seq), summarize(par)); diff != "" {
			t.Errorf("seed %d: concurrent pass differs from sequential (-seq +par):\n%s", seed, diff)
		}
		for i, bb := range parFn.Blocks() {
			assert.Equal(t, labels(bb.Instructions()), summarize(par)[i].Order)
		}
	}
}

func TestPass_RunProgram(t *testing.T) {
	prog := &ir.Program{Functions: []*ir.Function{randomFunction(1, 2), randomFunction(2, 3)}}

	reports, err := NewPass(New(target.Default()), 2).RunProgram(t.Context(), prog)
	require.NoError(t, err)
	require.Len(t, reports, 5)
	assert.Equal(t, "bb0", reports[0].Block)
	assert.Equal(t, "bb1", reports[1].Block)
	assert.Equal(t, "bb0", reports[2].Block)
}

func TestPass_Errors(t *testing.T) {
	malformed := func() *ir.Function {
		fn := ir.NewFunction("broken")
		fn.NewBlock("ok")
		bb := fn.NewBlock("bad")
		inst := fn.NewInstruction("x", ir.OpAdd)
		inst.AddSrc(nil)
		bb.InsertTail(inst)
		return fn
	}

	for _, workers := range []int{1, 4} {
		_, err := NewPass(New(target.Default()), workers).RunFunction(t.Context(), malformed())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedBlock), "workers=%d: %v", workers, err)
		assert.ErrorContains(t, err, "function broken")
		assert.ErrorContains(t, err, "block bad")
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := NewPass(New(target.Default()), 4).RunFunction(ctx, randomFunction(3, 4))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

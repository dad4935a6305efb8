package target

import (
	"testing"

	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	tgt := Default()
	require.NoError(t, tgt.Validate())

	fn := ir.NewFunction("f")
	tex := fn.NewInstruction("t", ir.OpTex)
	add := fn.NewInstruction("a", ir.OpAdd)

	assert.Equal(t, 32, tgt.Latency(tex))
	assert.Equal(t, 4, tgt.Throughput(tex))
	assert.Equal(t, tgt.Default.Latency, tgt.Latency(add), "unlisted opcodes use the default timing")

	c := tgt.Costs()
	assert.Greater(t, c.Atomic, c.Interp)
	assert.Greater(t, c.Interp, c.Texture)
	assert.Greater(t, c.SrcOther, c.SrcLocal)
	assert.Greater(t, c.SrcOther, c.DefOther)
	assert.Greater(t, c.SrcLocal, c.DefLocal)
}

func TestValidate(t *testing.T) {
	t.Run("unknown opcode", func(t *testing.T) {
		tgt := Default().Clone()
		tgt.Ops["frobnicate"] = Timing{Latency: 1, Throughput: 1}
		assert.ErrorContains(t, tgt.Validate(), `unknown opcode "frobnicate"`)
	})

	t.Run("negative cost", func(t *testing.T) {
		tgt := Default().Clone()
		tgt.Table.DefLocal = -1
		assert.ErrorContains(t, tgt.Validate(), "def_local")
	})

	t.Run("negative default", func(t *testing.T) {
		tgt := Default().Clone()
		tgt.Default.Latency = -3
		assert.ErrorContains(t, tgt.Validate(), "negative default timing")
	})
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Default()
	c := orig.Clone()
	c.Ops[ir.OpTex] = Timing{Latency: 1, Throughput: 1}
	assert.Equal(t, 32, orig.Ops[ir.OpTex].Latency)
}

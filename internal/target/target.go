// Package target describes the execution pipeline the scheduler optimises for:
// per-opcode latency and throughput figures plus the fixed cost constants of
// the scheduling cost model.
package target

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// Timing is the pipeline behaviour of one opcode, in cycles.
type Timing struct {
	Latency    int
	Throughput int
}

// CostTable holds the fixed issue costs of the scheduling cost model. Atomic
// is expected to be the largest figure, Interp slightly above Texture, and the
// destination figures below their source counterparts.
type CostTable struct {
	Atomic  int
	Interp  int
	Texture int
	Load    int

	SrcLocal int
	SrcOther int
	DefLocal int
	DefOther int
}

// Target is a machine description loaded from configuration or taken from
// Default.
type Target struct {
	Name    string
	Default Timing
	Ops     map[ir.Opcode]Timing
	Table   CostTable
}

// Latency returns the cycles before the result of inst can be consumed.
func (t *Target) Latency(inst *ir.Instruction) int {
	return t.timing(inst.Op()).Latency
}

// Throughput returns the issue interval of inst.
func (t *Target) Throughput(inst *ir.Instruction) int {
	return t.timing(inst.Op()).Throughput
}

// Costs returns the cost model constants.
func (t *Target) Costs() CostTable {
	return t.Table
}

func (t *Target) timing(op ir.Opcode) Timing {
	if tm, ok := t.Ops[op]; ok {
		return tm
	}
	return t.Default
}

// Validate rejects negative figures and unknown opcodes.
func (t *Target) Validate() error {
	if t.Default.Latency < 0 || t.Default.Throughput < 0 {
		return errors.Errorf("target %s: negative default timing", t.Name)
	}
	ops := make([]string, 0, len(t.Ops))
	for op := range t.Ops {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)
	for _, name := range ops {
		op := ir.Opcode(name)
		if !op.Known() {
			return errors.Errorf("target %s: unknown opcode %q", t.Name, name)
		}
		if tm := t.Ops[op]; tm.Latency < 0 || tm.Throughput < 0 {
			return errors.Errorf("target %s: negative timing for opcode %q", t.Name, name)
		}
	}
	c := t.Table
	for name, v := range map[string]int{
		"atomic": c.Atomic, "interp": c.Interp, "texture": c.Texture, "load": c.Load,
		"src_local": c.SrcLocal, "src_other": c.SrcOther,
		"def_local": c.DefLocal, "def_other": c.DefOther,
	} {
		if v < 0 {
			return errors.Errorf("target %s: negative cost %q", t.Name, name)
		}
	}
	return nil
}

// Clone returns a deep copy that can be modified freely.
func (t *Target) Clone() *Target {
	c := *t
	c.Ops = make(map[ir.Opcode]Timing, len(t.Ops))
	for op, tm := range t.Ops {
		c.Ops[op] = tm
	}
	return &c
}

// Default returns the built-in profile, modelled on a GPU shader core with
// long fixed-latency texture and memory units.
func Default() *Target {
	alu := Timing{Latency: 4, Throughput: 1}
	sfu := Timing{Latency: 8, Throughput: 4}
	tex := Timing{Latency: 32, Throughput: 4}
	flow := Timing{Latency: 1, Throughput: 1}

	return &Target{
		Name:    "default",
		Default: alu,
		Ops: map[ir.Opcode]Timing{
			ir.OpNop: {Latency: 1, Throughput: 1},
			ir.OpMov: {Latency: 2, Throughput: 1},
			ir.OpMul: {Latency: 6, Throughput: 2},
			ir.OpMad: {Latency: 6, Throughput: 2},

			ir.OpRcp: sfu, ir.OpRsq: sfu, ir.OpSin: sfu,
			ir.OpCos: sfu, ir.OpEx2: sfu, ir.OpLg2: sfu,

			ir.OpLoad:   {Latency: 24, Throughput: 2},
			ir.OpVFetch: {Latency: 24, Throughput: 2},
			ir.OpPFetch: {Latency: 24, Throughput: 2},
			ir.OpStore:  {Latency: 4, Throughput: 2},

			ir.OpTex: tex, ir.OpTxb: tex, ir.OpTxl: tex, ir.OpTxf: tex,
			ir.OpTxq: tex, ir.OpTxd: tex, ir.OpTxg: tex, ir.OpTxlq: tex,

			ir.OpLinterp: {Latency: 12, Throughput: 2},
			ir.OpPinterp: {Latency: 12, Throughput: 2},

			ir.OpAtom: {Latency: 48, Throughput: 8},
			ir.OpCas:  {Latency: 48, Throughput: 8},

			ir.OpBra: flow, ir.OpExit: flow, ir.OpRet: flow,
			ir.OpBar: flow, ir.OpDiscard: flow,
		},
		Table: CostTable{
			Atomic:   40,
			Interp:   22,
			Texture:  20,
			Load:     20,
			SrcLocal: 4,
			SrcOther: 16,
			DefLocal: 2,
			DefOther: 8,
		},
	}
}

package hcladapter

import (
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/specialistvlad/blocksched/internal/target"
)

// translateTarget applies the figures set in tb on top of target.Default.
func translateTarget(tb *targetBlock) *target.Target {
	t := target.Default().Clone()
	t.Name = tb.Name

	setInt(&t.Default.Latency, tb.DefaultLatency)
	setInt(&t.Default.Throughput, tb.DefaultThroughput)

	if c := tb.Costs; c != nil {
		setInt(&t.Table.Atomic, c.Atomic)
		setInt(&t.Table.Interp, c.Interp)
		setInt(&t.Table.Texture, c.Texture)
		setInt(&t.Table.Load, c.Load)
		setInt(&t.Table.SrcLocal, c.SrcLocal)
		setInt(&t.Table.SrcOther, c.SrcOther)
		setInt(&t.Table.DefLocal, c.DefLocal)
		setInt(&t.Table.DefOther, c.DefOther)
	}

	for _, ob := range tb.Ops {
		op := ir.Opcode(ob.Name)
		tm, ok := t.Ops[op]
		if !ok {
			tm = t.Default
		}
		setInt(&tm.Latency, ob.Latency)
		setInt(&tm.Throughput, ob.Throughput)
		t.Ops[op] = tm
	}
	return t
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

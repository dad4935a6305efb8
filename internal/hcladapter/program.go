// This file translates decoded program blocks into ir functions.

package hcladapter

import (
	"context"

	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ctxlog"
	"github.com/specialistvlad/blocksched/internal/ir"
)

// translateFunction builds fb through an ir.Builder, so register names are
// resolved function-wide in declaration order.
func (l *Loader) translateFunction(ctx context.Context, fb *functionBlock) (*ir.Function, error) {
	logger := ctxlog.FromContext(ctx).With("function", fb.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	b := ir.NewBuilder(ir.NewFunction(fb.Name))
	labels := make(map[string]struct{})
	names := make(map[string]struct{})

	for _, bb := range fb.Blocks {
		if _, dup := labels[bb.Label]; dup {
			return nil, errors.Errorf("function %s: block %q declared twice", fb.Name, bb.Label)
		}
		labels[bb.Label] = struct{}{}
		b.Block(bb.Label)

		for _, in := range bb.Insts {
			if _, dup := names[in.Name]; dup {
				return nil, errors.Errorf("function %s: instruction %q declared twice", fb.Name, in.Name)
			}
			names[in.Name] = struct{}{}

			if err := l.emit(ctx, b, in); err != nil {
				return nil, errors.Wrapf(err, "function %s, block %s, instruction %s", fb.Name, bb.Label, in.Name)
			}
		}
	}

	logger.Debug("Translated function.", "blocks", len(fb.Blocks), "instructions", len(names))
	return b.Func(), nil
}

func (l *Loader) emit(ctx context.Context, b *ir.Builder, in *instBlock) error {
	op := ir.Opcode(in.Op)
	if !op.Known() {
		return errors.Errorf("unknown opcode %q", in.Op)
	}

	defs, err := decodeOperands(ctx, in.Defs, "defs")
	if err != nil {
		return err
	}
	for _, d := range defs {
		if d.Class == ir.FileImmediate {
			return errors.New("defs: an immediate cannot be a destination")
		}
	}
	srcs, err := decodeOperands(ctx, in.Srcs, "srcs")
	if err != nil {
		return err
	}
	if err := b.Check(defs, srcs); err != nil {
		return errors.WithStack(err)
	}

	if in.Fixed != nil && *in.Fixed {
		b.EmitFixed(in.Name, op, defs, srcs)
	} else {
		b.Emit(in.Name, op, defs, srcs)
	}
	return nil
}

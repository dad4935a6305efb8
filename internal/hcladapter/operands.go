package hcladapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	"github.com/specialistvlad/blocksched/internal/ir"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeOperands evaluates an operand list attribute. Elements are either
// operand strings ("%r1", "g[16]", "0x10") or whole numbers, which become
// immediates. A single string is accepted in place of a one-element list.
func decodeOperands(ctx context.Context, expr hcl.Expression, attrName string) ([]ir.Operand, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "%s: invalid expression", attrName)
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		op, err := operandFromCty(val)
		if err != nil {
			return nil, errors.Wrap(err, attrName)
		}
		return []ir.Operand{op}, nil
	case ty.IsTupleType() || ty.IsListType():
	default:
		return nil, errors.Errorf("%s: expected a list of operands, got %s", attrName, ty.FriendlyName())
	}

	out := make([]ir.Operand, 0, val.LengthInt())
	for i, it := 0, val.ElementIterator(); it.Next(); i++ {
		_, elem := it.Element()
		op, err := operandFromCty(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", attrName, i)
		}
		out = append(out, op)
	}
	return out, nil
}

func operandFromCty(v cty.Value) (ir.Operand, error) {
	if v.IsNull() {
		return ir.Operand{}, errors.New("null operand")
	}
	if !v.IsKnown() {
		return ir.Operand{}, errors.New("operand value is not known")
	}

	switch v.Type() {
	case cty.String:
		op, err := ir.ParseOperand(v.AsString())
		if err != nil {
			return ir.Operand{}, errors.WithStack(err)
		}
		return op, nil
	case cty.Number:
		if !v.AsBigFloat().IsInt() {
			return ir.Operand{}, errors.Errorf("immediate %s is not a whole number", v.AsBigFloat().Text('g', -1))
		}
		var n int64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return ir.Operand{}, errors.Wrap(err, "immediate out of range")
		}
		return ir.Imm(n), nil
	default:
		return ir.Operand{}, errors.Errorf("operand must be a string or a number, got %s", v.Type().FriendlyName())
	}
}

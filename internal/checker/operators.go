package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

var mathTypeNames = map[string]bool{
	"Vector3": true, "Vector2": true, "CFrame": true,
	"UDim": true, "UDim2": true, "Color3": true,
}

// isMathNamed reports whether t is one of the named math types, by Class
// name or Reference name — the universe may model Roblox datatypes either
// way.
func isMathNamed(t types.Type) bool {
	switch v := types.Resolve(t).(type) {
	case types.Reference:
		return mathTypeNames[v.Name]
	case *types.Class:
		return mathTypeNames[v.Name]
	}
	return false
}

// hasNumericSignature reports whether t is a structural table shaped like a
// math value (X/Y, Width/Height, or Scale/Offset pairs) per spec §4.6's
// heuristic for accepting arithmetic on plain tables mimicking Vector2/
// UDim2/etc. without a registered class.
func hasNumericSignature(t types.Type) bool {
	tbl, ok := types.Resolve(t).(*types.Table)
	if !ok {
		return false
	}
	pairs := [][2]string{{"X", "Y"}, {"Width", "Height"}, {"Scale", "Offset"}}
	for _, p := range pairs {
		_, a := tbl.Get(p[0])
		_, b := tbl.Get(p[1])
		if a && b {
			return true
		}
	}
	return false
}

// isNumericCompatible implements spec §4.6's arithmetic-operand rule.
func (c *Checker) isNumericCompatible(t types.Type) bool {
	t = types.Resolve(t)
	switch t.Kind() {
	case types.KindNumber, types.KindAny, types.KindError:
		return true
	}
	if lit, ok := t.(types.Literal); ok {
		return lit.Base == types.LiteralBaseNumber
	}
	if isMathNamed(t) || hasNumericSignature(t) {
		return true
	}
	if u, ok := t.(types.Union); ok {
		if c.ctx.Mode != types.ModeNonStrict {
			return false
		}
		for _, m := range u.Members {
			if c.isNumericCompatible(m) {
				return true
			}
		}
	}
	return false
}

// mathResultType returns the first math-type operand encountered, else
// number, per spec §4.6.
func mathResultType(left, right types.Type) types.Type {
	if isMathNamed(left) || hasNumericSignature(left) {
		return left
	}
	if isMathNamed(right) || hasNumericSignature(right) {
		return right
	}
	return types.Number
}

func isArithmeticOp(op token.Kind) bool {
	switch op {
	case token.Plus, token.Minus, token.Star, token.Slash, token.DoubleSlash, token.Percent, token.Caret:
		return true
	}
	return false
}

func isComparisonOp(op token.Kind) bool {
	switch op {
	case token.EqEq, token.NotEq, token.LessThan, token.GreaterThan, token.LessEq, token.GreaterEq:
		return true
	}
	return false
}

// inferBinary implements spec §4.6's "Binary-operator semantics".
func (c *Checker) inferBinary(op token.Kind, left, right types.Type, rng token.Range) types.Type {
	if types.IsError(types.Resolve(left)) || types.IsError(types.Resolve(right)) {
		return types.ErrorType{Message: "operand already errored"}
	}
	switch {
	case isArithmeticOp(op):
		if !c.isNumericCompatible(left) || !c.isNumericCompatible(right) {
			c.diags.errorf(E011, rng, "operator %q requires numeric-compatible operands, got %s and %s", op, left.String(), right.String())
			return types.ErrorType{Message: "arithmetic operand mismatch"}
		}
		return mathResultType(left, right)
	case op == token.DotDot:
		return types.String
	case isComparisonOp(op):
		return types.Boolean
	case op == token.And:
		falseLit := types.Literal{Base: types.LiteralBaseBoolean, BVal: false}
		return types.NewUnion(right, falseLit, types.Nil)
	case op == token.Or:
		return types.NewUnion(left, right)
	default:
		return types.Unknown
	}
}

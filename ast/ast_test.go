package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clite/types"
)

func classify(op Operator) []bool {
	return []bool{
		op.IsArithmetic(),
		op.IsRelational(),
		op.IsBoolean(),
		op.IsNot(),
		op.IsNegate(),
		op.IsIntCast(),
		op.IsFloatCast(),
		op.IsCharCast(),
	}
}

func TestOperatorHasExactlyOneKind(t *testing.T) {
	check := func(op Operator) {
		var n int
		for _, is := range classify(op) {
			if is {
				n++
			}
		}

		assert.Equal(t, 1, n, "operator %s", op)
	}

	for sym := range binaryOperators {
		op, err := BinaryOperator(sym)
		require.NoError(t, err)
		check(op)
	}

	for sym := range unaryOperators {
		op, err := UnaryOperator(sym)
		require.NoError(t, err)
		check(op)
	}
}

func TestOperatorLookup(t *testing.T) {
	minus, err := BinaryOperator("-")
	require.NoError(t, err)
	assert.True(t, minus.IsArithmetic())

	neg, err := UnaryOperator("-")
	require.NoError(t, err)
	assert.True(t, neg.IsNegate())

	_, err = BinaryOperator("!")
	assert.EqualError(t, err, "unknown binary operator: `!`")

	_, err = UnaryOperator("+")
	assert.EqualError(t, err, "unknown unary operator: `+`")
}

func TestRepr(t *testing.T) {
	plus, _ := BinaryOperator("+")
	not, _ := UnaryOperator("!")
	cast, _ := UnaryOperator("float")

	expr := &Binary{
		Op:    plus,
		Left:  &Unary{Op: cast, Operand: &Variable{Name: "x"}},
		Right: &Call{Name: "f", Args: []Expr{&Value{Type: types.Char, Lit: "a"}, &Value{Type: types.Int, Lit: "2"}}},
	}
	assert.Equal(t, "(float(x) + f('a', 2))", expr.Repr())
	assert.Equal(t, "!b", (&Unary{Op: not, Operand: &Variable{Name: "b"}}).Repr())
}

func TestFunctions(t *testing.T) {
	first := &Function{Name: "f", Type: types.Int}
	second := &Function{Name: "f", Type: types.Float}
	g := &Function{Name: "g", Type: types.Void}

	fns := NewFunctions(first, g, second)

	fn, ok := fns.Lookup("f")
	require.True(t, ok)
	assert.Same(t, first, fn)

	_, ok = fns.Lookup("h")
	assert.False(t, ok)

	assert.Equal(t, 3, fns.Len())
	assert.Equal(t, []*Function{first, g, second}, fns.All())
	assert.Equal(t, Declarations{
		{Name: "f", Type: types.Int},
		{Name: "g", Type: types.Void},
		{Name: "f", Type: types.Float},
	}, fns.Names())
}

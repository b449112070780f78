package ast

import "fmt"

// OpKind classifies an operator.  Every operator has exactly one kind.
type OpKind int

// Enumeration of operator kinds
const (
	OpArithmetic OpKind = iota // + - * /
	OpRelational               // < > <= >= == !=
	OpBoolean                  // && ||
	OpNot                      // !
	OpNegate                   // unary -
	OpIntCast                  // int(...)
	OpFloatCast                // float(...)
	OpCharCast                 // char(...)
)

// Operator is an operator together with its classification.
type Operator struct {
	Symbol string
	Kind   OpKind
}

var binaryOperators = map[string]OpKind{
	"+":  OpArithmetic,
	"-":  OpArithmetic,
	"*":  OpArithmetic,
	"/":  OpArithmetic,
	"<":  OpRelational,
	">":  OpRelational,
	"<=": OpRelational,
	">=": OpRelational,
	"==": OpRelational,
	"!=": OpRelational,
	"&&": OpBoolean,
	"||": OpBoolean,
}

var unaryOperators = map[string]OpKind{
	"!":     OpNot,
	"-":     OpNegate,
	"int":   OpIntCast,
	"float": OpFloatCast,
	"char":  OpCharCast,
}

// BinaryOperator returns the binary operator with the given symbol.
func BinaryOperator(symbol string) (Operator, error) {
	if kind, ok := binaryOperators[symbol]; ok {
		return Operator{Symbol: symbol, Kind: kind}, nil
	}

	return Operator{}, fmt.Errorf("unknown binary operator: `%s`", symbol)
}

// UnaryOperator returns the unary operator with the given symbol.
func UnaryOperator(symbol string) (Operator, error) {
	if kind, ok := unaryOperators[symbol]; ok {
		return Operator{Symbol: symbol, Kind: kind}, nil
	}

	return Operator{}, fmt.Errorf("unknown unary operator: `%s`", symbol)
}

func (op Operator) IsArithmetic() bool { return op.Kind == OpArithmetic }
func (op Operator) IsRelational() bool { return op.Kind == OpRelational }
func (op Operator) IsBoolean() bool    { return op.Kind == OpBoolean }
func (op Operator) IsNot() bool        { return op.Kind == OpNot }
func (op Operator) IsNegate() bool     { return op.Kind == OpNegate }
func (op Operator) IsIntCast() bool    { return op.Kind == OpIntCast }
func (op Operator) IsFloatCast() bool  { return op.Kind == OpFloatCast }
func (op Operator) IsCharCast() bool   { return op.Kind == OpCharCast }

func (op Operator) String() string {
	return op.Symbol
}

package types

import "fmt"

// Type represents a primitive Clite type.  Its value must be one of the
// enumerated primitive types below.  Two types are equal only if they are the
// same enumerated value: there is no subtyping between them.
type Type uint

// Enumeration of primitive types
const (
	Int Type = iota
	Float
	Bool
	Char
	Void
)

// Repr of a primitive type is just its corresponding keyword
func (t Type) Repr() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Char:
		return "char"
	default:
		return "void"
	}
}

func (t Type) String() string {
	return t.Repr()
}

// Parse converts a type keyword into its primitive type.
func Parse(name string) (Type, error) {
	switch name {
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "bool":
		return Bool, nil
	case "char":
		return Char, nil
	case "void":
		return Void, nil
	}

	return Void, fmt.Errorf("unknown type: `%s`", name)
}

// IsNumeric returns whether arithmetic may be performed on values of type t.
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// Widens returns whether a value of type `from` may be implicitly widened to
// type `to` at an assignment boundary.  Equal types are not widenings.
func Widens(from, to Type) bool {
	switch to {
	case Float:
		return from == Int
	case Int:
		return from == Char
	}

	return false
}

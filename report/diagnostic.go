package report

import "clite/ast"

// Kind classifies a diagnostic.  It must be one of the enumerated kinds below.
type Kind int

// Enumeration of diagnostic kinds
const (
	KindName   Kind = iota // duplicate or undefined names
	KindTyping             // operand, assignment and return type mismatches
	KindArg                // argument count and argument type mismatches
	KindUsage              // void functions used as values and vice versa
	KindReturn             // misplaced, missing or superfluous returns
	KindDef                // program-level definition requirements (main)
)

var kindStrings = map[Kind]string{
	KindName:   "Name",
	KindTyping: "Type",
	KindArg:    "Argument",
	KindUsage:  "Usage",
	KindReturn: "Return",
	KindDef:    "Definition",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}

	return "Unknown"
}

// Diagnostic is a single type error found in a program.
type Diagnostic struct {
	Kind    Kind
	Message string

	// Function is the name of the function being checked when the error was
	// found.  It is empty for program-level errors.
	Function string

	// Node is the offending AST node if there is one.
	Node ast.Node
}

func (d Diagnostic) String() string {
	if d.Function == "" {
		return d.Message
	}

	return d.Function + ": " + d.Message
}

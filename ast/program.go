package ast

import "clite/types"

// Declaration binds a name to a type.
type Declaration struct {
	Name string
	Type types.Type
}

// Declarations is an ordered list of declarations.  The order only matters for
// the order in which duplicate declarations are reported.
type Declarations []Declaration

// Function is a function definition.
type Function struct {
	Name   string
	Type   types.Type
	Params Declarations
	Locals Declarations
	Body   *Block
}

// Functions is the table of all functions in a program.  It preserves
// definition order and indexes functions by name once, on construction.
type Functions struct {
	list  []*Function
	index map[string]int
}

// NewFunctions creates a function table.  If several functions share a name,
// lookups resolve to the first of them.  Nil entries are kept but never
// indexed.
func NewFunctions(fns ...*Function) *Functions {
	table := &Functions{
		list:  fns,
		index: make(map[string]int, len(fns)),
	}

	for i, fn := range fns {
		if fn == nil {
			continue
		}

		if _, ok := table.index[fn.Name]; !ok {
			table.index[fn.Name] = i
		}
	}

	return table
}

// Lookup returns the function with the given name if it exists.
func (fs *Functions) Lookup(name string) (*Function, bool) {
	if i, ok := fs.index[name]; ok {
		return fs.list[i], true
	}

	return nil, false
}

// All returns the functions in definition order.
func (fs *Functions) All() []*Function {
	return fs.list
}

// Len returns the number of functions in the table.
func (fs *Functions) Len() int {
	return len(fs.list)
}

// Names returns a declaration for each function pairing its name with its
// return type.
func (fs *Functions) Names() Declarations {
	decls := make(Declarations, len(fs.list))
	for i, fn := range fs.list {
		decls[i] = Declaration{Name: fn.Name, Type: fn.Type}
	}

	return decls
}

// Program is the root of the AST: its globals and functions.
type Program struct {
	Globals   Declarations
	Functions *Functions
}

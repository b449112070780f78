package walk

import (
	"sort"

	"clite/ast"
	"clite/types"
)

// TypeMap maps the names visible in a scope to their types.
type TypeMap map[string]types.Type

// Typing builds a type map from several lists of declarations.  Declarations
// in later lists override those in earlier ones with the same name: this is
// how parameters and locals shadow globals.  No duplicate checking is done
// here: see checkDeclarations.
func Typing(decls ...ast.Declarations) TypeMap {
	tm := make(TypeMap)
	for _, d := range decls {
		for _, decl := range d {
			tm[decl.Name] = decl.Type
		}
	}

	return tm
}

// Lookup returns the type of name if it is visible.
func (tm TypeMap) Lookup(name string) (types.Type, bool) {
	t, ok := tm[name]
	return t, ok
}

// Declarations returns the contents of the type map sorted by name.
func (tm TypeMap) Declarations() ast.Declarations {
	decls := make(ast.Declarations, 0, len(tm))
	for name, t := range tm {
		decls = append(decls, ast.Declaration{Name: name, Type: t})
	}

	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})

	return decls
}

package walk

import (
	"clite/ast"
	"clite/report"
)

// checkDeclarations reports every pair of declarations in d that share a
// name.  The list is treated as a single scope.
func (w *Walker) checkDeclarations(d ast.Declarations) {
	for i := 0; i < len(d)-1; i++ {
		for j := i + 1; j < len(d); j++ {
			if d[i].Name == d[j].Name {
				w.error(report.KindName, nil, "duplicate declaration: `%s`", d[j].Name)
			}
		}
	}
}

// concat joins several declaration lists into a new one.
func concat(decls ...ast.Declarations) ast.Declarations {
	var n int
	for _, d := range decls {
		n += len(d)
	}

	all := make(ast.Declarations, 0, n)
	for _, d := range decls {
		all = append(all, d...)
	}

	return all
}

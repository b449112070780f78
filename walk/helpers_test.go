package walk

import (
	"clite/ast"
	"clite/types"
)

func intv(lit string) *ast.Value   { return &ast.Value{Type: types.Int, Lit: lit} }
func floatv(lit string) *ast.Value { return &ast.Value{Type: types.Float, Lit: lit} }
func boolv(lit string) *ast.Value  { return &ast.Value{Type: types.Bool, Lit: lit} }
func charv(lit string) *ast.Value  { return &ast.Value{Type: types.Char, Lit: lit} }

func vr(name string) *ast.Variable { return &ast.Variable{Name: name} }

func bin(sym string, left, right ast.Expr) *ast.Binary {
	op, err := ast.BinaryOperator(sym)
	if err != nil {
		panic(err)
	}

	return &ast.Binary{Op: op, Left: left, Right: right}
}

func un(sym string, operand ast.Expr) *ast.Unary {
	op, err := ast.UnaryOperator(sym)
	if err != nil {
		panic(err)
	}

	return &ast.Unary{Op: op, Operand: operand}
}

func call(name string, args ...ast.Expr) *ast.Call {
	return &ast.Call{Name: name, Args: args}
}

func callStmt(name string, args ...ast.Expr) *ast.CallStmt {
	return &ast.CallStmt{Call: call(name, args...)}
}

func assign(target string, src ast.Expr) *ast.Assignment {
	return &ast.Assignment{Target: vr(target), Source: src}
}

func ret(fnName string, result ast.Expr) *ast.Return {
	return &ast.Return{Target: fnName, Result: result}
}

func block(stmts ...ast.Stmt) *ast.Block {
	return &ast.Block{Members: stmts}
}

func decls(pairs ...interface{}) ast.Declarations {
	var d ast.Declarations
	for i := 0; i < len(pairs); i += 2 {
		d = append(d, ast.Declaration{Name: pairs[i].(string), Type: pairs[i+1].(types.Type)})
	}

	return d
}

func fn(name string, t types.Type, params, locals ast.Declarations, body ...ast.Stmt) *ast.Function {
	return &ast.Function{Name: name, Type: t, Params: params, Locals: locals, Body: block(body...)}
}

// voidMain is a main function that does nothing.
func voidMain() *ast.Function {
	return fn("main", types.Void, nil, nil)
}

func program(globals ast.Declarations, fns ...*ast.Function) *ast.Program {
	return &ast.Program{Globals: globals, Functions: ast.NewFunctions(fns...)}
}

func messages(res *Result) []string {
	msgs := make([]string, len(res.Diagnostics))
	for i, d := range res.Diagnostics {
		msgs[i] = d.Message
	}

	return msgs
}

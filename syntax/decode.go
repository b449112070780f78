package syntax

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"clite/ast"
	"clite/types"
)

// LoadProgram loads and decodes the program document at path.
func LoadProgram(path string) (*ast.Program, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prog, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

// Decode decodes a program document.  The document must be well-formed: any
// unknown field, type, operator or literal is an error.
func Decode(r io.Reader) (*ast.Program, error) {
	var doc programDoc

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty program document")
		}

		return nil, fmt.Errorf("parse: %w", err)
	}

	return doc.toProgram()
}

// -----------------------------------------------------------------------------

func (pd *programDoc) toProgram() (*ast.Program, error) {
	globals, err := toDeclarations(pd.Globals)
	if err != nil {
		return nil, fmt.Errorf("globals: %w", err)
	}

	fns := make([]*ast.Function, len(pd.Functions))
	for i := range pd.Functions {
		fn, err := pd.Functions[i].toFunction()
		if err != nil {
			return nil, fmt.Errorf("function `%s`: %w", pd.Functions[i].Name, err)
		}

		fns[i] = fn
	}

	return &ast.Program{Globals: globals, Functions: ast.NewFunctions(fns...)}, nil
}

func toDeclarations(docs []declDoc) (ast.Declarations, error) {
	decls := make(ast.Declarations, len(docs))
	for i, dd := range docs {
		if dd.Name == "" {
			return nil, fmt.Errorf("declaration %d has no name", i+1)
		}

		t, err := types.Parse(dd.Type)
		if err != nil {
			return nil, fmt.Errorf("declaration of `%s`: %w", dd.Name, err)
		}

		decls[i] = ast.Declaration{Name: dd.Name, Type: t}
	}

	return decls, nil
}

func (fd *funcDoc) toFunction() (*ast.Function, error) {
	if fd.Name == "" {
		return nil, errors.New("function has no name")
	}

	t, err := types.Parse(fd.Type)
	if err != nil {
		return nil, err
	}

	params, err := toDeclarations(fd.Params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}

	locals, err := toDeclarations(fd.Locals)
	if err != nil {
		return nil, fmt.Errorf("locals: %w", err)
	}

	// return statements are bound to the function they appear in
	body, err := toBlock(fd.Body, fd.Name)
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:   fd.Name,
		Type:   t,
		Params: params,
		Locals: locals,
		Body:   body,
	}, nil
}

func toBlock(docs []stmtDoc, fnName string) (*ast.Block, error) {
	block := &ast.Block{Members: make([]ast.Stmt, len(docs))}
	for i := range docs {
		stmt, err := docs[i].toStmt(fnName)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}

		block.Members[i] = stmt
	}

	return block, nil
}

// count returns the number of kinds set on a statement document.
func (sd *stmtDoc) count() int {
	n := 0
	for _, set := range []bool{sd.Skip != nil, sd.Assign != nil, sd.Block != nil, sd.If != nil, sd.While != nil, sd.Call != nil, sd.Return != nil} {
		if set {
			n++
		}
	}

	return n
}

func (sd *stmtDoc) toStmt(fnName string) (ast.Stmt, error) {
	if n := sd.count(); n != 1 {
		return nil, fmt.Errorf("statement must be of exactly one kind (found %d)", n)
	}

	switch {
	case sd.Skip != nil:
		return &ast.Skip{}, nil
	case sd.Assign != nil:
		if sd.Assign.Target == "" {
			return nil, errors.New("assignment has no target")
		}

		src, err := sd.Assign.Source.toExpr()
		if err != nil {
			return nil, fmt.Errorf("assignment to `%s`: %w", sd.Assign.Target, err)
		}

		return &ast.Assignment{Target: &ast.Variable{Name: sd.Assign.Target}, Source: src}, nil
	case sd.Block != nil:
		return toBlock(*sd.Block, fnName)
	case sd.If != nil:
		test, err := sd.If.Test.toExpr()
		if err != nil {
			return nil, fmt.Errorf("if test: %w", err)
		}

		thenBlock, err := toBlock(sd.If.Then, fnName)
		if err != nil {
			return nil, fmt.Errorf("then: %w", err)
		}

		var elseStmt ast.Stmt = &ast.Skip{}
		if sd.If.Else != nil {
			if elseStmt, err = toBlock(sd.If.Else, fnName); err != nil {
				return nil, fmt.Errorf("else: %w", err)
			}
		}

		return &ast.Conditional{Test: test, Then: thenBlock, Else: elseStmt}, nil
	case sd.While != nil:
		test, err := sd.While.Test.toExpr()
		if err != nil {
			return nil, fmt.Errorf("while test: %w", err)
		}

		body, err := toBlock(sd.While.Body, fnName)
		if err != nil {
			return nil, fmt.Errorf("while body: %w", err)
		}

		return &ast.Loop{Test: test, Body: body}, nil
	case sd.Call != nil:
		call, err := sd.Call.toCall()
		if err != nil {
			return nil, err
		}

		return &ast.CallStmt{Call: call}, nil
	default:
		result, err := sd.Return.toExpr()
		if err != nil {
			return nil, fmt.Errorf("return: %w", err)
		}

		return &ast.Return{Target: fnName, Result: result}, nil
	}
}

func (cd *callDoc) toCall() (*ast.Call, error) {
	if cd.Name == "" {
		return nil, errors.New("call has no function name")
	}

	call := &ast.Call{Name: cd.Name, Args: make([]ast.Expr, len(cd.Args))}
	for i := range cd.Args {
		arg, err := cd.Args[i].toExpr()
		if err != nil {
			return nil, fmt.Errorf("argument %d of call to `%s`: %w", i+1, cd.Name, err)
		}

		call.Args[i] = arg
	}

	return call, nil
}

// count returns the number of kinds set on an expression document.
func (ed *exprDoc) count() int {
	n := 0
	for _, set := range []bool{ed.Int != nil, ed.Float != nil, ed.Bool != nil, ed.Char != nil, ed.Var != nil, ed.Binary != nil, ed.Unary != nil, ed.Call != nil} {
		if set {
			n++
		}
	}

	return n
}

func (ed *exprDoc) toExpr() (ast.Expr, error) {
	if n := ed.count(); n != 1 {
		return nil, fmt.Errorf("expression must be of exactly one kind (found %d)", n)
	}

	switch {
	case ed.Int != nil:
		if _, err := strconv.Atoi(*ed.Int); err != nil {
			return nil, fmt.Errorf("invalid int literal `%s`", *ed.Int)
		}

		return &ast.Value{Type: types.Int, Lit: *ed.Int}, nil
	case ed.Float != nil:
		if _, err := strconv.ParseFloat(*ed.Float, 64); err != nil {
			return nil, fmt.Errorf("invalid float literal `%s`", *ed.Float)
		}

		return &ast.Value{Type: types.Float, Lit: *ed.Float}, nil
	case ed.Bool != nil:
		if *ed.Bool != "true" && *ed.Bool != "false" {
			return nil, fmt.Errorf("invalid bool literal `%s`", *ed.Bool)
		}

		return &ast.Value{Type: types.Bool, Lit: *ed.Bool}, nil
	case ed.Char != nil:
		if utf8.RuneCountInString(*ed.Char) != 1 {
			return nil, fmt.Errorf("invalid char literal `%s`", *ed.Char)
		}

		return &ast.Value{Type: types.Char, Lit: *ed.Char}, nil
	case ed.Var != nil:
		if *ed.Var == "" {
			return nil, errors.New("variable has no name")
		}

		return &ast.Variable{Name: *ed.Var}, nil
	case ed.Binary != nil:
		op, err := ast.BinaryOperator(ed.Binary.Op)
		if err != nil {
			return nil, err
		}

		left, err := ed.Binary.Left.toExpr()
		if err != nil {
			return nil, fmt.Errorf("left operand of %s: %w", op, err)
		}

		right, err := ed.Binary.Right.toExpr()
		if err != nil {
			return nil, fmt.Errorf("right operand of %s: %w", op, err)
		}

		return &ast.Binary{Op: op, Left: left, Right: right}, nil
	case ed.Unary != nil:
		op, err := ast.UnaryOperator(ed.Unary.Op)
		if err != nil {
			return nil, err
		}

		operand, err := ed.Unary.Operand.toExpr()
		if err != nil {
			return nil, fmt.Errorf("operand of %s: %w", op, err)
		}

		return &ast.Unary{Op: op, Operand: operand}, nil
	default:
		return ed.Call.toCall()
	}
}

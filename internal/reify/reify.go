// Package reify turns function types into runtime signature descriptors.
// Peeling the arrow spine of a type with n arrows yields n-1 argument layers
// and one final layer, so the descriptor shape bijects with the spine.
package reify

import (
	"metaquot/internal/ast"
	"metaquot/internal/errors"
	"metaquot/internal/lift"
)

// Repr wraps the lifted tree of a type as an annotated representation value,
// the expansion of the type-representation marker.
func Repr(t ast.Type, env lift.Env) (ast.Expr, []errors.CompilerError) {
	span := ast.MakeSpan(t.NodePos(), t.NodeEndPos())
	tree, errs := lift.Expr(ast.TypeFragment(t), env)
	value := &ast.CallExpr{
		Pos:    span.Start,
		EndPos: span.End,
		Callee: ast.MakePath(env.Names.TyModule + ".repr"),
		Args:   []ast.Expr{tree},
	}
	// a type with escapes is only closed at runtime, so there is no static
	// annotation to pin it with
	if containsEscape(t) {
		return value, errs
	}
	return &ast.AnnotExpr{
		Pos:    span.Start,
		EndPos: span.End,
		Value:  value,
		Type: &ast.NamedType{
			Pos:    span.Start,
			EndPos: span.End,
			Name:   ast.MakePath(env.Names.TyModule + ".repr"),
			Args:   []ast.Type{t},
		},
	}, errs
}

// Reify expands a function-signature marker: it peels the arrow spine of t,
// builds the nested argument/final descriptor over per-type representations,
// and annotates the whole descriptor so the host typechecker correlates it
// with the original arrow type, its uncurried form and its return type.
func Reify(t ast.Type, env lift.Env) (ast.Expr, []errors.CompilerError) {
	span := ast.MakeSpan(t.NodePos(), t.NodeEndPos())
	arrow, ok := t.(*ast.ArrowType)
	if !ok {
		err := errors.New(errors.ErrorArrowExpected, span.Start,
			"arrow type expected, found %s", t.String()).WithSpan(span).
			WithHelp("signature reification describes functions; reify a type of the form a -> b")
		return nil, []errors.CompilerError{err}
	}

	params, ret := peel(arrow)

	var errs []errors.CompilerError
	reprOf := func(t ast.Type) ast.Expr {
		r, es := Repr(t, env)
		errs = append(errs, es...)
		return r
	}

	// innermost layer pairs the final parameter with the return type
	retRepr := reprOf(ret)
	desc := &ast.CallExpr{
		Pos:    span.Start,
		EndPos: span.End,
		Callee: ast.MakePath(env.Names.TyModule + ".last"),
		Args:   []ast.Expr{reprOf(params[len(params)-1]), retRepr},
	}
	out := ast.Expr(desc)
	for i := len(params) - 2; i >= 0; i-- {
		out = &ast.CallExpr{
			Pos:    span.Start,
			EndPos: span.End,
			Callee: ast.MakePath(env.Names.TyModule + ".arg"),
			Args:   []ast.Expr{reprOf(params[i]), out},
		}
	}

	if containsEscape(t) {
		return out, errs
	}
	annot := &ast.NamedType{
		Pos:    span.Start,
		EndPos: span.End,
		Name:   ast.MakePath(env.Names.TyModule + ".fn"),
		Args:   []ast.Type{t, uncurryToUnit(span, params), ret},
	}
	return &ast.AnnotExpr{Pos: span.Start, EndPos: span.End, Value: out, Type: annot}, errs
}

// containsEscape reports whether any escape marker occurs in the type.
func containsEscape(t ast.Type) bool {
	switch t := t.(type) {
	case *ast.NamedType:
		for _, a := range t.Args {
			if containsEscape(a) {
				return true
			}
		}
		return false
	case *ast.ArrowType:
		return containsEscape(t.Param) || containsEscape(t.Result)
	case *ast.ProductType:
		for _, e := range t.Elems {
			if containsEscape(e) {
				return true
			}
		}
		return false
	case *ast.EscapeType:
		return true
	default:
		return false
	}
}

// peel flattens a right-associated arrow spine into its parameter list and
// return type.
func peel(t *ast.ArrowType) ([]ast.Type, ast.Type) {
	params := []ast.Type{t.Param}
	rest := t.Result
	for {
		arrow, ok := rest.(*ast.ArrowType)
		if !ok {
			return params, rest
		}
		params = append(params, arrow.Param)
		rest = arrow.Result
	}
}

// uncurryToUnit rebuilds the parameter spine with a unit return, the form
// the correlation annotation uses to pin the argument types independently of
// the return type.
func uncurryToUnit(span ast.Span, params []ast.Type) ast.Type {
	out := ast.Type(&ast.NamedType{Pos: span.Start, EndPos: span.End, Name: ast.MakePath("unit")})
	for i := len(params) - 1; i >= 0; i-- {
		out = &ast.ArrowType{Pos: span.Start, EndPos: span.End, Param: params[i], Result: out}
	}
	return out
}

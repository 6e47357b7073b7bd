package lift

import (
	"metaquot/internal/ast"
	"metaquot/internal/config"
	"metaquot/internal/errors"
)

// Env is the expansion context the lifter reads: the location expression in
// scope, the harness symbol names, and the callback that recursively expands
// escape payloads through the active expander. The callback takes the
// location in scope at the payload's position, so quotations nested inside
// the payload see the same override the surrounding items do. Env is
// threaded by value, so location overrides inside an item sequence stay
// scoped to that sequence.
type Env struct {
	Loc    ast.Expr
	Names  config.Names
	Expand func(e ast.Expr, loc ast.Expr) (ast.Expr, []errors.CompilerError)
}

// Expr lifts a fragment in expression mode, producing host code that
// reconstructs the fragment's tree at runtime.
func Expr(frag *ast.Fragment, env Env) (ast.Expr, []errors.CompilerError) {
	l := &lifter[ast.Expr]{strat: exprStrategy, env: env}
	out := liftFragment(l, frag)
	return out, l.errs
}

// Pattern lifts a fragment in pattern mode, producing a host pattern that
// matches the fragment's tree, with location and metadata fields wildcarded.
func Pattern(frag *ast.Fragment, env Env) (ast.Pattern, []errors.CompilerError) {
	l := &lifter[ast.Pattern]{strat: patternStrategy, env: env}
	out := liftFragment(l, frag)
	return out, l.errs
}

// lifter drives one lifting pass. R is ast.Expr in expression mode and
// ast.Pattern in pattern mode.
type lifter[R any] struct {
	strat *Strategy[R]
	env   Env
	errs  []errors.CompilerError
}

func (l *lifter[R]) report(err errors.CompilerError) {
	l.errs = append(l.errs, err)
}

func liftFragment[R any](l *lifter[R], frag *ast.Fragment) R {
	switch frag.Kind {
	case ast.FragExpr:
		return l.lift(l.describeExpr(frag.Expr))
	case ast.FragPattern:
		return l.lift(l.describePattern(frag.Pat))
	case ast.FragType:
		return l.lift(l.describeType(frag.Type))
	case ast.FragItem, ast.FragSigItem:
		return l.lift(l.describeSingleItem(frag))
	default: // FragItems, FragSigItems
		return l.lift(l.describeItems(frag))
	}
}

func (l *lifter[R]) lift(s Shape) R {
	switch s := s.(type) {
	case *RecordShape:
		return l.strat.Record(l, s)
	case *ConstructorShape:
		return l.strat.Constructor(l, s)
	case *ListShape:
		return l.strat.List(l, s)
	case *TupleShape:
		return l.strat.Tuple(l, s)
	case *LeafShape:
		return l.strat.Leaf(l, s)
	default:
		return l.strat.Escape(l, s.(*EscapeShape))
	}
}

func (l *lifter[R]) liftAll(shapes []Shape) []R {
	out := make([]R, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, l.lift(s))
	}
	return out
}

// astPath qualifies an unqualified constructor, type or builder name with the
// harness AST module.
func (l *lifter[R]) astPath(name string) ast.Path {
	return ast.MakePath(l.env.Names.AstModule + "." + name)
}

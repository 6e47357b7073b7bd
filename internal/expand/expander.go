// Package expand is the single compile-time pass over a host unit: it walks
// every item, replaces quotation and reification markers with generated host
// code, and threads the location value markers stamp into lifted trees.
package expand

import (
	"metaquot/internal/ast"
	"metaquot/internal/config"
	"metaquot/internal/errors"
	"metaquot/internal/lift"
	"metaquot/internal/reify"
)

// Unit expands every marker in a unit, depth-first in one pass. Location
// attributes at the unit level are consumed: they re-bind the location for
// the items that follow and do not appear in the output. On any diagnostic
// the caller must discard the returned unit; nothing may be emitted from a
// failed expansion.
func Unit(u *ast.Unit, names config.Names) (*ast.Unit, []errors.CompilerError) {
	x := &expander{names: names}
	ctx := context{loc: x.defaultLoc()}
	items := make([]ast.Item, 0, len(u.Items))
	for _, item := range u.Items {
		if loc, ok := item.(*ast.LocItem); ok {
			ctx.loc = x.expr(loc.Value, ctx)
			continue
		}
		if out := x.item(item, ctx); out != nil {
			items = append(items, out)
		}
	}
	return &ast.Unit{Items: items}, x.errs
}

// Expr expands a standalone expression with the default location in scope.
func Expr(e ast.Expr, names config.Names) (ast.Expr, []errors.CompilerError) {
	x := &expander{names: names}
	out := x.expr(e, context{loc: x.defaultLoc()})
	return out, x.errs
}

type expander struct {
	names config.Names
	errs  []errors.CompilerError
}

// context is the expansion state threaded by value, so a location override
// ends where its scope ends.
type context struct {
	loc ast.Expr
}

func (x *expander) report(err errors.CompilerError) {
	x.errs = append(x.errs, err)
}

// defaultLoc reads the harness default-location holder, the location in
// scope when no override attribute applies.
func (x *expander) defaultLoc() ast.Expr {
	return &ast.CallExpr{Callee: ast.MakePath(x.names.DefaultLocation)}
}

// liftEnv exposes the expansion context to the lifter. The expand callback
// re-enters this expander under the location the lifter hands back, so
// markers inside escape payloads expand recursively, see the override in
// force at the escape, and land their diagnostics in the same collection.
func (x *expander) liftEnv(ctx context) lift.Env {
	return lift.Env{
		Loc:   ctx.loc,
		Names: x.names,
		Expand: func(e ast.Expr, loc ast.Expr) (ast.Expr, []errors.CompilerError) {
			return x.expr(e, context{loc: loc}), nil
		},
	}
}

func (x *expander) item(item ast.Item, ctx context) ast.Item {
	switch item := item.(type) {
	case *ast.LetItem:
		return &ast.LetItem{
			Pos:     item.Pos,
			EndPos:  item.EndPos,
			Binding: x.pattern(item.Binding, ctx),
			Value:   x.expr(item.Value, ctx),
		}
	case *ast.ExprItem:
		return &ast.ExprItem{Pos: item.Pos, EndPos: item.EndPos, Value: x.expr(item.Value, ctx)}
	case *ast.ValItem:
		return item
	default:
		esc := item.(*ast.EscapeItem)
		x.report(errors.New(errors.ErrorUnknownMarker, esc.Pos,
			"escape %%%s outside a quotation", esc.Tag).
			WithHelp("escapes are only meaningful inside quoted fragments"))
		return nil
	}
}

func (x *expander) expr(e ast.Expr, ctx context) ast.Expr {
	switch e := e.(type) {
	case *ast.LitExpr, *ast.PathExpr:
		return e
	case *ast.ConstructExpr:
		return &ast.ConstructExpr{Pos: e.Pos, EndPos: e.EndPos, Tag: e.Tag, Args: x.exprs(e.Args, ctx)}
	case *ast.CallExpr:
		return &ast.CallExpr{Pos: e.Pos, EndPos: e.EndPos, Callee: e.Callee, Args: x.exprs(e.Args, ctx)}
	case *ast.RecordExpr:
		fields := make([]*ast.RecordField, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, &ast.RecordField{Pos: f.Pos, EndPos: f.EndPos, Name: f.Name, Value: x.expr(f.Value, ctx)})
		}
		return &ast.RecordExpr{Pos: e.Pos, EndPos: e.EndPos, Type: e.Type, Fields: fields}
	case *ast.ListExpr:
		return &ast.ListExpr{Pos: e.Pos, EndPos: e.EndPos, Elems: x.exprs(e.Elems, ctx)}
	case *ast.TupleExpr:
		return &ast.TupleExpr{Pos: e.Pos, EndPos: e.EndPos, Elems: x.exprs(e.Elems, ctx)}
	case *ast.ParenExpr:
		return &ast.ParenExpr{Pos: e.Pos, EndPos: e.EndPos, Value: x.expr(e.Value, ctx)}
	case *ast.AnnotExpr:
		return &ast.AnnotExpr{Pos: e.Pos, EndPos: e.EndPos, Value: x.expr(e.Value, ctx), Type: e.Type}
	case *ast.OpenExpr:
		return &ast.OpenExpr{Pos: e.Pos, EndPos: e.EndPos, Namespace: e.Namespace, Body: x.expr(e.Body, ctx)}
	case *ast.QuoteExpr:
		return x.quote(e, ctx)
	default:
		esc := e.(*ast.EscapeExpr)
		x.report(errors.New(errors.ErrorUnknownMarker, esc.Pos,
			"escape %%%s outside a quotation", esc.Tag).
			WithHelp("escapes are only meaningful inside quoted fragments"))
		return &ast.TupleExpr{Pos: esc.Pos, EndPos: esc.EndPos}
	}
}

func (x *expander) exprs(es []ast.Expr, ctx context) []ast.Expr {
	out := make([]ast.Expr, 0, len(es))
	for _, e := range es {
		out = append(out, x.expr(e, ctx))
	}
	return out
}

func (x *expander) quote(q *ast.QuoteExpr, ctx context) ast.Expr {
	env := x.liftEnv(ctx)
	switch q.Kind {
	case ast.QuoteTyKind:
		out, errs := reify.Repr(q.Frag.Type, env)
		x.errs = append(x.errs, errs...)
		return out
	case ast.QuoteFunTyKind:
		out, errs := reify.Reify(q.Frag.Type, env)
		x.errs = append(x.errs, errs...)
		if out == nil {
			return &ast.TupleExpr{Pos: q.Pos, EndPos: q.EndPos}
		}
		return out
	case ast.QuotePrintableKind:
		return x.printable(q, ctx)
	case ast.QuoteCodeKind:
		return x.code(q, ctx)
	default:
		out, errs := lift.Expr(q.Frag, env)
		x.errs = append(x.errs, errs...)
		return out
	}
}

func (x *expander) pattern(p ast.Pattern, ctx context) ast.Pattern {
	switch p := p.(type) {
	case *ast.WildcardPat, *ast.VarPat, *ast.LitPat:
		return p
	case *ast.ConstructPat:
		return &ast.ConstructPat{Pos: p.Pos, EndPos: p.EndPos, Tag: p.Tag, Args: x.patterns(p.Args, ctx)}
	case *ast.ListPat:
		return &ast.ListPat{Pos: p.Pos, EndPos: p.EndPos, Elems: x.patterns(p.Elems, ctx)}
	case *ast.TuplePat:
		return &ast.TuplePat{Pos: p.Pos, EndPos: p.EndPos, Elems: x.patterns(p.Elems, ctx)}
	case *ast.RecordPat:
		fields := make([]*ast.RecordPatField, 0, len(p.Fields))
		for _, f := range p.Fields {
			fields = append(fields, &ast.RecordPatField{Pos: f.Pos, EndPos: f.EndPos, Name: f.Name, Value: x.pattern(f.Value, ctx)})
		}
		return &ast.RecordPat{Pos: p.Pos, EndPos: p.EndPos, Type: p.Type, Fields: fields}
	case *ast.QuotePat:
		return x.quotePat(p, ctx)
	default:
		esc := p.(*ast.EscapePat)
		x.report(errors.New(errors.ErrorUnknownMarker, esc.Pos,
			"escape %%%s outside a quotation", esc.Tag).
			WithHelp("escapes are only meaningful inside quoted fragments"))
		return &ast.WildcardPat{Pos: esc.Pos, EndPos: esc.EndPos}
	}
}

func (x *expander) patterns(ps []ast.Pattern, ctx context) []ast.Pattern {
	out := make([]ast.Pattern, 0, len(ps))
	for _, p := range ps {
		out = append(out, x.pattern(p, ctx))
	}
	return out
}

func (x *expander) quotePat(q *ast.QuotePat, ctx context) ast.Pattern {
	switch q.Kind {
	case ast.QuoteTyKind, ast.QuoteFunTyKind, ast.QuotePrintableKind, ast.QuoteCodeKind:
		x.report(errors.New(errors.ErrorUnknownMarker, q.Pos,
			"marker [%%%s] is not valid at pattern position", q.Kind))
		return &ast.WildcardPat{Pos: q.Pos, EndPos: q.EndPos}
	default:
		out, errs := lift.Pattern(q.Frag, x.liftEnv(ctx))
		x.errs = append(x.errs, errs...)
		return out
	}
}

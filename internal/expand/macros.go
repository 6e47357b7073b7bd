package expand

import (
	"metaquot/internal/ast"
	"metaquot/internal/lift"
)

// Convenience macros built on the lifter.

// printable pairs the expanded expression with the rendered source text of
// the fragment as written, so the harness can show the grader's expression
// verbatim in reports.
func (x *expander) printable(q *ast.QuoteExpr, ctx context) ast.Expr {
	value := x.expr(q.Frag.Expr, ctx)
	text := &ast.LitExpr{Pos: q.Pos, EndPos: q.EndPos, Value: ast.StringLit(q.Frag.Expr.String())}
	return &ast.RecordExpr{
		Pos:    q.Pos,
		EndPos: q.EndPos,
		Type:   ast.MakePath(x.names.Printable),
		Fields: []*ast.RecordField{
			{Pos: q.Pos, EndPos: q.EndPos, Name: "value", Value: value},
			{Pos: q.Pos, EndPos: q.EndPos, Name: "text", Value: text},
		},
	}
}

// code builds the grading triple for an expression: its value under the
// reference namespace, its value under the submission namespace, and its
// lifted syntax tree.
func (x *expander) code(q *ast.QuoteExpr, ctx context) ast.Expr {
	body := x.expr(q.Frag.Expr, ctx)
	tree, errs := lift.Expr(q.Frag, x.liftEnv(ctx))
	x.errs = append(x.errs, errs...)
	return &ast.TupleExpr{
		Pos:    q.Pos,
		EndPos: q.EndPos,
		Elems: []ast.Expr{
			&ast.OpenExpr{Pos: q.Pos, EndPos: q.EndPos, Namespace: ast.MakePath(x.names.Reference), Body: body},
			&ast.OpenExpr{Pos: q.Pos, EndPos: q.EndPos, Namespace: ast.MakePath(x.names.Submission), Body: body},
			tree,
		},
	}
}

package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"metaquot/grammar"
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

// converter accumulates diagnostics while lowering; lowering never stops at
// the first error so the reporter can show everything at once.
type converter struct {
	errs []errors.CompilerError
}

func (c *converter) report(err errors.CompilerError) {
	c.errs = append(c.errs, err)
}

func pos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func path(parts []string) ast.Path {
	return ast.Path{Parts: parts}
}

func (c *converter) items(items []*grammar.Item) []ast.Item {
	out := make([]ast.Item, 0, len(items))
	for _, item := range items {
		out = append(out, c.item(item))
	}
	return out
}

func (c *converter) item(g *grammar.Item) ast.Item {
	switch {
	case g.Loc != nil:
		return &ast.LocItem{Pos: pos(g.Loc.Pos), EndPos: pos(g.Loc.EndPos), Value: c.expr(g.Loc.Value)}
	case g.Let != nil:
		return &ast.LetItem{
			Pos:     pos(g.Let.Pos),
			EndPos:  pos(g.Let.EndPos),
			Binding: c.pattern(g.Let.Binding),
			Value:   c.expr(g.Let.Value),
		}
	case g.Val != nil:
		return c.valItem(g.Val)
	case g.Escape != nil:
		tag, payload := c.escape(g.Escape)
		return &ast.EscapeItem{Pos: pos(g.Escape.Pos), EndPos: pos(g.Escape.EndPos), Tag: tag, Payload: payload}
	default:
		return &ast.ExprItem{Pos: pos(g.Expr.Pos), EndPos: pos(g.Expr.EndPos), Value: c.expr(g.Expr)}
	}
}

func (c *converter) valItem(g *grammar.ValItem) *ast.ValItem {
	return &ast.ValItem{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Name: g.Name, Type: c.typ(g.Type)}
}

func (c *converter) sigItems(items []*grammar.SigItem) []ast.Item {
	out := make([]ast.Item, 0, len(items))
	for _, item := range items {
		switch {
		case item.Loc != nil:
			out = append(out, &ast.LocItem{Pos: pos(item.Loc.Pos), EndPos: pos(item.Loc.EndPos), Value: c.expr(item.Loc.Value)})
		case item.Val != nil:
			out = append(out, c.valItem(item.Val))
		default:
			tag, payload := c.escape(item.Escape)
			out = append(out, &ast.EscapeItem{Pos: pos(item.Escape.Pos), EndPos: pos(item.Escape.EndPos), Tag: tag, Payload: payload})
		}
	}
	return out
}

func (c *converter) expr(g *grammar.Expr) ast.Expr {
	switch {
	case g.Quote != nil:
		return c.quoteExpr(g.Quote)
	case g.Escape != nil:
		tag, payload := c.escape(g.Escape)
		return &ast.EscapeExpr{Pos: pos(g.Escape.Pos), EndPos: pos(g.Escape.EndPos), Tag: tag, Payload: payload}
	case g.Lit != nil:
		return &ast.LitExpr{Pos: pos(g.Lit.Pos), EndPos: pos(g.Lit.EndPos), Value: c.lit(g.Lit)}
	case g.List != nil:
		elems := make([]ast.Expr, 0, len(g.List.Elems))
		for _, e := range g.List.Elems {
			elems = append(elems, c.expr(e))
		}
		return &ast.ListExpr{Pos: pos(g.List.Pos), EndPos: pos(g.List.EndPos), Elems: elems}
	case g.Paren != nil:
		return c.paren(g.Paren)
	default:
		return c.pathExpr(g.Path)
	}
}

func (c *converter) paren(g *grammar.Paren) ast.Expr {
	first := c.expr(g.First)
	switch {
	case g.Annot != nil:
		return &ast.AnnotExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Value: first, Type: c.typ(g.Annot)}
	case len(g.Rest) > 0:
		elems := []ast.Expr{first}
		for _, e := range g.Rest {
			elems = append(elems, c.expr(e))
		}
		return &ast.TupleExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Elems: elems}
	default:
		return &ast.ParenExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Value: first}
	}
}

func (c *converter) pathExpr(g *grammar.PathExpr) ast.Expr {
	p := path(g.Parts)
	switch {
	case g.Open != nil:
		return &ast.OpenExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Namespace: p, Body: c.expr(g.Open)}
	case g.Call != nil:
		args := make([]ast.Expr, 0, len(g.Call.Args))
		for _, a := range g.Call.Args {
			args = append(args, c.expr(a))
		}
		if p.IsConstructor() {
			return &ast.ConstructExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Tag: p, Args: args}
		}
		return &ast.CallExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Callee: p, Args: args}
	case g.Record != nil:
		fields := make([]*ast.RecordField, 0, len(g.Record.Fields))
		for _, f := range g.Record.Fields {
			fields = append(fields, &ast.RecordField{
				Pos:    pos(f.Pos),
				EndPos: pos(f.EndPos),
				Name:   f.Name,
				Value:  c.expr(f.Value),
			})
		}
		return &ast.RecordExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Type: p, Fields: fields}
	case p.IsConstructor():
		return &ast.ConstructExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Tag: p}
	default:
		return &ast.PathExpr{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Path: p}
	}
}

func (c *converter) pattern(g *grammar.Pattern) ast.Pattern {
	switch {
	case g.Quote != nil:
		return c.quotePat(g.Quote)
	case g.Escape != nil:
		tag, payload := c.escape(g.Escape)
		return &ast.EscapePat{Pos: pos(g.Escape.Pos), EndPos: pos(g.Escape.EndPos), Tag: tag, Payload: payload}
	case g.Lit != nil:
		return &ast.LitPat{Pos: pos(g.Lit.Pos), EndPos: pos(g.Lit.EndPos), Value: c.lit(g.Lit)}
	case g.List != nil:
		elems := make([]ast.Pattern, 0, len(g.List.Elems))
		for _, p := range g.List.Elems {
			elems = append(elems, c.pattern(p))
		}
		return &ast.ListPat{Pos: pos(g.List.Pos), EndPos: pos(g.List.EndPos), Elems: elems}
	case g.Tuple != nil:
		first := c.pattern(g.Tuple.First)
		if len(g.Tuple.Rest) == 0 {
			// plain grouping parens
			return first
		}
		elems := []ast.Pattern{first}
		for _, p := range g.Tuple.Rest {
			elems = append(elems, c.pattern(p))
		}
		return &ast.TuplePat{Pos: pos(g.Tuple.Pos), EndPos: pos(g.Tuple.EndPos), Elems: elems}
	default:
		return c.pathPat(g.Path)
	}
}

func (c *converter) pathPat(g *grammar.PathPat) ast.Pattern {
	p := path(g.Parts)
	switch {
	case g.Record != nil:
		fields := make([]*ast.RecordPatField, 0, len(g.Record.Fields))
		for _, f := range g.Record.Fields {
			fields = append(fields, &ast.RecordPatField{
				Pos:    pos(f.Pos),
				EndPos: pos(f.EndPos),
				Name:   f.Name,
				Value:  c.pattern(f.Value),
			})
		}
		return &ast.RecordPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Type: p, Fields: fields}
	case g.Args != nil:
		args := make([]ast.Pattern, 0, len(g.Args.Args))
		for _, a := range g.Args.Args {
			args = append(args, c.pattern(a))
		}
		if !p.IsConstructor() {
			c.report(errors.New(errors.ErrorSyntax, pos(g.Pos),
				"pattern %q is applied like a constructor but is not capitalized", p.String()))
		}
		return &ast.ConstructPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Tag: p, Args: args}
	case len(g.Parts) == 1 && g.Parts[0] == "_":
		return &ast.WildcardPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos)}
	case p.IsConstructor():
		return &ast.ConstructPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Tag: p}
	case len(g.Parts) == 1:
		return &ast.VarPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Name: g.Parts[0]}
	default:
		c.report(errors.New(errors.ErrorSyntax, pos(g.Pos),
			"qualified name %q cannot be bound in a pattern", p.String()))
		return &ast.WildcardPat{Pos: pos(g.Pos), EndPos: pos(g.EndPos)}
	}
}

func (c *converter) typ(g *grammar.Type) ast.Type {
	left := c.productType(g.Left)
	if g.Right == nil {
		return left
	}
	return &ast.ArrowType{
		Pos:    pos(g.Pos),
		EndPos: pos(g.EndPos),
		Param:  left,
		Result: c.typ(g.Right),
	}
}

func (c *converter) productType(g *grammar.ProductType) ast.Type {
	if len(g.Factors) == 1 {
		return c.primType(g.Factors[0])
	}
	elems := make([]ast.Type, 0, len(g.Factors))
	for _, f := range g.Factors {
		elems = append(elems, c.primType(f))
	}
	return &ast.ProductType{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Elems: elems}
}

func (c *converter) primType(g *grammar.PrimType) ast.Type {
	switch {
	case g.Escape != nil:
		tag, payload := c.escape(g.Escape)
		return &ast.EscapeType{Pos: pos(g.Escape.Pos), EndPos: pos(g.Escape.EndPos), Tag: tag, Payload: payload}
	case g.Var != nil:
		return &ast.VarType{Pos: pos(g.Pos), EndPos: pos(g.EndPos), Name: strings.TrimPrefix(*g.Var, "'")}
	case g.Named != nil:
		args := make([]ast.Type, 0, len(g.Named.Args))
		for _, a := range g.Named.Args {
			args = append(args, c.typ(a))
		}
		return &ast.NamedType{Pos: pos(g.Named.Pos), EndPos: pos(g.Named.EndPos), Name: path(g.Named.Parts), Args: args}
	default:
		return c.typ(g.Paren)
	}
}

// escape lowers an escape marker; the payload is always read as an
// expression, and pattern-mode lifting re-reads it as a pattern later.
func (c *converter) escape(g *grammar.Escape) (ast.EscapeTag, *ast.Fragment) {
	tag := ast.EscapeTag(strings.TrimPrefix(g.Tag, "%"))
	var payload ast.Expr
	if g.Ident != nil {
		p := pos(g.Pos)
		payload = &ast.PathExpr{Pos: p, EndPos: pos(g.EndPos), Path: ast.Path{Parts: []string{*g.Ident}}}
	} else {
		payload = c.expr(g.Paren)
	}
	return tag, ast.ExprFragment(payload)
}

func (c *converter) quoteExpr(g *grammar.Quote) ast.Expr {
	kind, frag, span := c.quoteParts(g)
	return &ast.QuoteExpr{Pos: span.Start, EndPos: span.End, Kind: kind, Frag: frag}
}

func (c *converter) quotePat(g *grammar.Quote) ast.Pattern {
	kind, frag, span := c.quoteParts(g)
	return &ast.QuotePat{Pos: span.Start, EndPos: span.End, Kind: kind, Frag: frag}
}

func (c *converter) quoteParts(g *grammar.Quote) (ast.QuoteKind, *ast.Fragment, ast.Span) {
	switch {
	case g.Expr != nil:
		span := ast.MakeSpan(pos(g.Expr.Pos), pos(g.Expr.EndPos))
		return ast.QuoteExprKind, ast.ExprFragment(c.expr(g.Expr.Body)), span
	case g.Pat != nil:
		span := ast.MakeSpan(pos(g.Pat.Pos), pos(g.Pat.EndPos))
		return ast.QuotePatKind, ast.PatternFragment(c.pattern(g.Pat.Body)), span
	case g.Items != nil:
		span := ast.MakeSpan(pos(g.Items.Pos), pos(g.Items.EndPos))
		return ast.QuoteItemsKind, ast.ItemsFragment(ast.FragItems, span, c.items(g.Items.Body)), span
	case g.Item != nil:
		span := ast.MakeSpan(pos(g.Item.Pos), pos(g.Item.EndPos))
		return ast.QuoteItemKind, ast.ItemsFragment(ast.FragItem, span, []ast.Item{c.item(g.Item.Body)}), span
	case g.SigItems != nil:
		span := ast.MakeSpan(pos(g.SigItems.Pos), pos(g.SigItems.EndPos))
		return ast.QuoteSigItemsKind, ast.ItemsFragment(ast.FragSigItems, span, c.sigItems(g.SigItems.Body)), span
	case g.SigItem != nil:
		span := ast.MakeSpan(pos(g.SigItem.Pos), pos(g.SigItem.EndPos))
		items := c.sigItems([]*grammar.SigItem{g.SigItem.Body})
		return ast.QuoteSigItemKind, ast.ItemsFragment(ast.FragSigItem, span, items), span
	case g.Type != nil:
		span := ast.MakeSpan(pos(g.Type.Pos), pos(g.Type.EndPos))
		return ast.QuoteTypeKind, ast.TypeFragment(c.typ(g.Type.Body)), span
	case g.Ty != nil:
		span := ast.MakeSpan(pos(g.Ty.Pos), pos(g.Ty.EndPos))
		return ast.QuoteTyKind, ast.TypeFragment(c.typ(g.Ty.Body)), span
	case g.FunTy != nil:
		span := ast.MakeSpan(pos(g.FunTy.Pos), pos(g.FunTy.EndPos))
		return ast.QuoteFunTyKind, ast.TypeFragment(c.typ(g.FunTy.Body)), span
	case g.Printable != nil:
		span := ast.MakeSpan(pos(g.Printable.Pos), pos(g.Printable.EndPos))
		return ast.QuotePrintableKind, ast.ExprFragment(c.expr(g.Printable.Body)), span
	default:
		span := ast.MakeSpan(pos(g.Code.Pos), pos(g.Code.EndPos))
		return ast.QuoteCodeKind, ast.ExprFragment(c.expr(g.Code.Body)), span
	}
}

package lift

import (
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

// Escape resolution. Payloads were parsed as expressions; they are expanded
// through the active expander first, so quotation markers inside a payload
// expand recursively before the result is spliced.

// expandPayload runs an escape payload through the expander and splices the
// resulting expression. The payload expands under the location captured at
// the escape's position, not the one at quote entry: rendering happens after
// the item walk restored the env, but an override in force at the escape
// must still reach quotations nested inside the payload.
func (l *lifter[R]) expandPayload(s *EscapeShape) ast.Expr {
	out, errs := l.env.Expand(s.Payload.Expr, s.Loc)
	l.errs = append(l.errs, errs...)
	if out == nil {
		return &ast.TupleExpr{Pos: s.Span.Start, EndPos: s.Span.End}
	}
	return out
}

func liftEscapeExpr(l *lifter[ast.Expr], s *EscapeShape) ast.Expr {
	if s.Tag == ast.EscapeSeqTag {
		// a sequence splice that survived to here sits outside a list slot
		l.report(errors.New(errors.ErrorSequenceNotAllowed, s.Span.Start,
			"sequence escape is only valid inside a list or item sequence").WithSpan(s.Span))
		return &ast.TupleExpr{Pos: s.Span.Start, EndPos: s.Span.End}
	}
	return l.expandPayload(s)
}

func liftEscapePat(l *lifter[ast.Pattern], s *EscapeShape) ast.Pattern {
	if s.Tag == ast.EscapeSeqTag {
		l.report(errors.New(errors.ErrorSequenceInPattern, s.Span.Start,
			"sequence escape cannot be matched in pattern mode").WithSpan(s.Span))
		return &ast.WildcardPat{Pos: s.Span.Start, EndPos: s.Span.End}
	}
	expanded := l.expandPayload(s)
	pat, ok := exprToPattern(expanded)
	if !ok {
		l.report(errors.New(errors.ErrorMalformedEscape, s.Span.Start,
			"escape payload %s cannot be read as a pattern", s.Payload.String()).WithSpan(s.Span).
			WithHelp("a pattern-mode escape payload must be a variable, literal or constructor form"))
		return &ast.WildcardPat{Pos: s.Span.Start, EndPos: s.Span.End}
	}
	return pat
}

// exprToPattern re-reads an expression as the pattern it spells. Escape
// payloads are parsed under the expression grammar, so a pattern-mode splice
// recovers the pattern here; forms with no pattern reading fail.
func exprToPattern(e ast.Expr) (ast.Pattern, bool) {
	switch e := e.(type) {
	case *ast.LitExpr:
		return &ast.LitPat{Pos: e.Pos, EndPos: e.EndPos, Value: e.Value}, true
	case *ast.PathExpr:
		if len(e.Path.Parts) != 1 {
			return nil, false
		}
		name := e.Path.Parts[0]
		if name == "_" {
			return &ast.WildcardPat{Pos: e.Pos, EndPos: e.EndPos}, true
		}
		return &ast.VarPat{Pos: e.Pos, EndPos: e.EndPos, Name: name}, true
	case *ast.ConstructExpr:
		args := make([]ast.Pattern, 0, len(e.Args))
		for _, a := range e.Args {
			p, ok := exprToPattern(a)
			if !ok {
				return nil, false
			}
			args = append(args, p)
		}
		return &ast.ConstructPat{Pos: e.Pos, EndPos: e.EndPos, Tag: e.Tag, Args: args}, true
	case *ast.ListExpr:
		elems := make([]ast.Pattern, 0, len(e.Elems))
		for _, el := range e.Elems {
			p, ok := exprToPattern(el)
			if !ok {
				return nil, false
			}
			elems = append(elems, p)
		}
		return &ast.ListPat{Pos: e.Pos, EndPos: e.EndPos, Elems: elems}, true
	case *ast.TupleExpr:
		elems := make([]ast.Pattern, 0, len(e.Elems))
		for _, el := range e.Elems {
			p, ok := exprToPattern(el)
			if !ok {
				return nil, false
			}
			elems = append(elems, p)
		}
		return &ast.TuplePat{Pos: e.Pos, EndPos: e.EndPos, Elems: elems}, true
	case *ast.RecordExpr:
		fields := make([]*ast.RecordPatField, 0, len(e.Fields))
		for _, f := range e.Fields {
			p, ok := exprToPattern(f.Value)
			if !ok {
				return nil, false
			}
			fields = append(fields, &ast.RecordPatField{Pos: f.Pos, EndPos: f.EndPos, Name: f.Name, Value: p})
		}
		return &ast.RecordPat{Pos: e.Pos, EndPos: e.EndPos, Type: e.Type, Fields: fields}, true
	case *ast.ParenExpr:
		return exprToPattern(e.Value)
	default:
		return nil, false
	}
}

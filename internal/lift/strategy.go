package lift

import (
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

// Strategy renders each shape kind into generated host syntax. The
// expression strategy builds code that reconstructs the tree at runtime; the
// pattern strategy builds a pattern that matches it, wildcarding location
// and metadata fields.
type Strategy[R any] struct {
	Record      func(*lifter[R], *RecordShape) R
	Constructor func(*lifter[R], *ConstructorShape) R
	List        func(*lifter[R], *ListShape) R
	Tuple       func(*lifter[R], *TupleShape) R
	Leaf        func(*lifter[R], *LeafShape) R
	Escape      func(*lifter[R], *EscapeShape) R
}

var exprStrategy = &Strategy[ast.Expr]{
	Record:      liftRecordExpr,
	Constructor: liftConstructorExpr,
	List:        liftListExpr,
	Tuple:       liftTupleExpr,
	Leaf:        liftLeafExpr,
	Escape:      liftEscapeExpr,
}

var patternStrategy = &Strategy[ast.Pattern]{
	Record:      liftRecordPat,
	Constructor: liftConstructorPat,
	List:        liftListPat,
	Tuple:       liftTuplePat,
	Leaf:        liftLeafPat,
	Escape:      liftEscapePat,
}

// leafBuilder names the literal-construction function for a leaf kind; the
// capitalized form is the constructor those functions apply, matched by
// pattern-mode leaves.
func leafBuilder(kind ast.LitKind) string {
	switch kind {
	case ast.LitInt32:
		return "int32"
	case ast.LitInt64:
		return "int64"
	case ast.LitNative:
		return "nativeint"
	case ast.LitString:
		return "string"
	case ast.LitChar:
		return "char"
	default:
		return "int"
	}
}

func leafTag(kind ast.LitKind) string {
	switch kind {
	case ast.LitInt32:
		return "Int32"
	case ast.LitInt64:
		return "Int64"
	case ast.LitNative:
		return "Nativeint"
	case ast.LitString:
		return "String"
	case ast.LitChar:
		return "Char"
	default:
		return "Int"
	}
}

func liftRecordExpr(l *lifter[ast.Expr], s *RecordShape) ast.Expr {
	fields := make([]*ast.RecordField, 0, len(s.Fields))
	for _, f := range s.Fields {
		var v ast.Expr
		switch {
		case f.Loc:
			v = f.Value
		case f.Meta:
			v = &ast.CallExpr{Pos: s.Span.Start, EndPos: s.Span.End, Callee: l.astPath("meta")}
		default:
			v = l.lift(f.Shape)
		}
		fields = append(fields, &ast.RecordField{Pos: s.Span.Start, EndPos: s.Span.End, Name: f.Name, Value: v})
	}
	return &ast.RecordExpr{Pos: s.Span.Start, EndPos: s.Span.End, Type: l.astPath(s.TypeName), Fields: fields}
}

func liftConstructorExpr(l *lifter[ast.Expr], s *ConstructorShape) ast.Expr {
	return &ast.ConstructExpr{Pos: s.Span.Start, EndPos: s.Span.End, Tag: l.astPath(s.Tag), Args: l.liftAll(s.Args)}
}

// liftListExpr renders a collection. Runs of ordinary elements become list
// literals; sequence escapes split the collection into segments that are
// concatenated with the harness append function, so a splice contributes
// however many elements its payload holds at runtime.
func liftListExpr(l *lifter[ast.Expr], s *ListShape) ast.Expr {
	var segments []ast.Expr
	var run []ast.Expr
	flush := func() {
		if len(run) > 0 {
			segments = append(segments, &ast.ListExpr{Pos: s.Span.Start, EndPos: s.Span.End, Elems: run})
			run = nil
		}
	}
	for _, elem := range s.Elems {
		if esc, ok := elem.(*EscapeShape); ok && esc.Tag == ast.EscapeSeqTag {
			if !s.Splice {
				l.report(errors.New(errors.ErrorSequenceNotAllowed, esc.Span.Start,
					"sequence escape where exactly one element is required").WithSpan(esc.Span))
				continue
			}
			flush()
			segments = append(segments, l.expandPayload(esc))
			continue
		}
		run = append(run, l.lift(elem))
	}
	flush()
	switch len(segments) {
	case 0:
		return &ast.ListExpr{Pos: s.Span.Start, EndPos: s.Span.End}
	case 1:
		return segments[0]
	}
	out := segments[len(segments)-1]
	for i := len(segments) - 2; i >= 0; i-- {
		out = &ast.CallExpr{
			Pos:    s.Span.Start,
			EndPos: s.Span.End,
			Callee: ast.MakePath(l.env.Names.Append),
			Args:   []ast.Expr{segments[i], out},
		}
	}
	return out
}

func liftTupleExpr(l *lifter[ast.Expr], s *TupleShape) ast.Expr {
	return &ast.TupleExpr{Pos: s.Span.Start, EndPos: s.Span.End, Elems: l.liftAll(s.Elems)}
}

func liftLeafExpr(l *lifter[ast.Expr], s *LeafShape) ast.Expr {
	return &ast.CallExpr{
		Pos:    s.Span.Start,
		EndPos: s.Span.End,
		Callee: l.astPath(leafBuilder(s.Value.Kind)),
		Args:   []ast.Expr{&ast.LitExpr{Pos: s.Span.Start, EndPos: s.Span.End, Value: s.Value}},
	}
}

func liftRecordPat(l *lifter[ast.Pattern], s *RecordShape) ast.Pattern {
	fields := make([]*ast.RecordPatField, 0, len(s.Fields))
	for _, f := range s.Fields {
		var v ast.Pattern
		if f.Loc || f.Meta {
			v = &ast.WildcardPat{Pos: s.Span.Start, EndPos: s.Span.End}
		} else {
			v = l.lift(f.Shape)
		}
		fields = append(fields, &ast.RecordPatField{Pos: s.Span.Start, EndPos: s.Span.End, Name: f.Name, Value: v})
	}
	return &ast.RecordPat{Pos: s.Span.Start, EndPos: s.Span.End, Type: l.astPath(s.TypeName), Fields: fields}
}

func liftConstructorPat(l *lifter[ast.Pattern], s *ConstructorShape) ast.Pattern {
	return &ast.ConstructPat{Pos: s.Span.Start, EndPos: s.Span.End, Tag: l.astPath(s.Tag), Args: l.liftAll(s.Args)}
}

func liftListPat(l *lifter[ast.Pattern], s *ListShape) ast.Pattern {
	elems := make([]ast.Pattern, 0, len(s.Elems))
	for _, elem := range s.Elems {
		if esc, ok := elem.(*EscapeShape); ok && esc.Tag == ast.EscapeSeqTag {
			l.report(errors.New(errors.ErrorSequenceInPattern, esc.Span.Start,
				"sequence escape cannot be matched in pattern mode").WithSpan(esc.Span).
				WithHelp("match the whole list with a variable instead"))
			continue
		}
		elems = append(elems, l.lift(elem))
	}
	return &ast.ListPat{Pos: s.Span.Start, EndPos: s.Span.End, Elems: elems}
}

func liftTuplePat(l *lifter[ast.Pattern], s *TupleShape) ast.Pattern {
	return &ast.TuplePat{Pos: s.Span.Start, EndPos: s.Span.End, Elems: l.liftAll(s.Elems)}
}

func liftLeafPat(l *lifter[ast.Pattern], s *LeafShape) ast.Pattern {
	return &ast.ConstructPat{
		Pos:    s.Span.Start,
		EndPos: s.Span.End,
		Tag:    l.astPath(leafTag(s.Value.Kind)),
		Args:   []ast.Pattern{&ast.LitPat{Pos: s.Span.Start, EndPos: s.Span.End, Value: s.Value}},
	}
}

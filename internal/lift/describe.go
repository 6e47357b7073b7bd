package lift

import (
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

// The describe step lowers AST nodes into shapes. Every lifted node is a
// wrapper record (position, description, metadata) whose description is a
// variant constructor; collections become list shapes, primitive values
// become leaves, and escapes pass through for the strategies to splice.

// slotKind names the sub-grammar an escape marker was found in, for tag
// validation.
type slotKind int

const (
	slotExpr slotKind = iota
	slotPattern
	slotType
	slotItem
)

func (s slotKind) String() string {
	switch s {
	case slotExpr:
		return "expression"
	case slotPattern:
		return "pattern"
	case slotType:
		return "type"
	default:
		return "item"
	}
}

func spanOf(n ast.Node) ast.Span {
	return ast.MakeSpan(n.NodePos(), n.NodeEndPos())
}

// wrap builds the node-wrapper record around a description shape. The
// location field captures the location expression in scope right now, so
// overrides inside an item sequence stamp only the items that follow them.
func (l *lifter[R]) wrap(span ast.Span, typeName string, desc Shape) Shape {
	return &RecordShape{
		Span:     span,
		TypeName: typeName,
		Fields: []RecordShapeField{
			{Name: "pos", Loc: true, Value: l.env.Loc},
			{Name: "desc", Shape: desc},
			{Name: "meta", Meta: true},
		},
	}
}

func con(span ast.Span, tag string, args ...Shape) *ConstructorShape {
	return &ConstructorShape{Span: span, Tag: tag, Args: args}
}

func strLeaf(span ast.Span, s string) *LeafShape {
	return &LeafShape{Span: span, Value: ast.StringLit(s)}
}

func (l *lifter[R]) describeExpr(e ast.Expr) Shape {
	span := spanOf(e)
	switch e := e.(type) {
	case *ast.LitExpr:
		return l.wrap(span, "Expr", con(span, "Const", &LeafShape{Span: span, Value: e.Value}))
	case *ast.PathExpr:
		return l.wrap(span, "Expr", con(span, "Ident", strLeaf(span, e.Path.String())))
	case *ast.ConstructExpr:
		return l.wrap(span, "Expr", con(span, "Construct",
			strLeaf(span, e.Tag.String()), l.describeExprs(span, e.Args, false)))
	case *ast.CallExpr:
		return l.wrap(span, "Expr", con(span, "Call",
			strLeaf(span, e.Callee.String()), l.describeExprs(span, e.Args, false)))
	case *ast.RecordExpr:
		fields := make([]Shape, 0, len(e.Fields))
		for _, f := range e.Fields {
			fspan := ast.MakeSpan(f.Pos, f.EndPos)
			fields = append(fields, &TupleShape{Span: fspan, Elems: []Shape{
				strLeaf(fspan, f.Name),
				l.describeExpr(f.Value),
			}})
		}
		return l.wrap(span, "Expr", con(span, "Record",
			strLeaf(span, e.Type.String()), &ListShape{Span: span, Elems: fields}))
	case *ast.ListExpr:
		return l.wrap(span, "Expr", con(span, "List", l.describeExprs(span, e.Elems, true)))
	case *ast.TupleExpr:
		return l.wrap(span, "Expr", con(span, "Tuple", l.describeExprs(span, e.Elems, false)))
	case *ast.ParenExpr:
		return l.describeExpr(e.Value)
	case *ast.AnnotExpr:
		return l.wrap(span, "Expr", con(span, "Annot", l.describeExpr(e.Value), l.describeType(e.Type)))
	case *ast.OpenExpr:
		return l.wrap(span, "Expr", con(span, "Open",
			strLeaf(span, e.Namespace.String()), l.describeExpr(e.Body)))
	case *ast.QuoteExpr:
		return l.nestedQuote(span, e.Kind)
	default:
		esc := e.(*ast.EscapeExpr)
		return l.escapeShape(esc.Tag, esc.Payload, span, slotExpr)
	}
}

func (l *lifter[R]) describeExprs(span ast.Span, exprs []ast.Expr, splice bool) *ListShape {
	elems := make([]Shape, 0, len(exprs))
	for _, e := range exprs {
		elems = append(elems, l.describeExpr(e))
	}
	return &ListShape{Span: span, Splice: splice, Elems: elems}
}

func (l *lifter[R]) describePattern(p ast.Pattern) Shape {
	span := spanOf(p)
	switch p := p.(type) {
	case *ast.WildcardPat:
		return l.wrap(span, "Pat", con(span, "Wildcard"))
	case *ast.VarPat:
		return l.wrap(span, "Pat", con(span, "Var", strLeaf(span, p.Name)))
	case *ast.LitPat:
		return l.wrap(span, "Pat", con(span, "PatConst", &LeafShape{Span: span, Value: p.Value}))
	case *ast.ConstructPat:
		return l.wrap(span, "Pat", con(span, "PatConstruct",
			strLeaf(span, p.Tag.String()), l.describePatterns(span, p.Args, false)))
	case *ast.ListPat:
		return l.wrap(span, "Pat", con(span, "PatList", l.describePatterns(span, p.Elems, true)))
	case *ast.TuplePat:
		return l.wrap(span, "Pat", con(span, "PatTuple", l.describePatterns(span, p.Elems, false)))
	case *ast.RecordPat:
		fields := make([]Shape, 0, len(p.Fields))
		for _, f := range p.Fields {
			fspan := ast.MakeSpan(f.Pos, f.EndPos)
			fields = append(fields, &TupleShape{Span: fspan, Elems: []Shape{
				strLeaf(fspan, f.Name),
				l.describePattern(f.Value),
			}})
		}
		return l.wrap(span, "Pat", con(span, "PatRecord",
			strLeaf(span, p.Type.String()), &ListShape{Span: span, Elems: fields}))
	case *ast.QuotePat:
		return l.nestedQuote(span, p.Kind)
	default:
		esc := p.(*ast.EscapePat)
		return l.escapeShape(esc.Tag, esc.Payload, span, slotPattern)
	}
}

func (l *lifter[R]) describePatterns(span ast.Span, pats []ast.Pattern, splice bool) *ListShape {
	elems := make([]Shape, 0, len(pats))
	for _, p := range pats {
		elems = append(elems, l.describePattern(p))
	}
	return &ListShape{Span: span, Splice: splice, Elems: elems}
}

func (l *lifter[R]) describeType(t ast.Type) Shape {
	span := spanOf(t)
	switch t := t.(type) {
	case *ast.NamedType:
		args := make([]Shape, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, l.describeType(a))
		}
		return l.wrap(span, "Type", con(span, "Named",
			strLeaf(span, t.Name.String()), &ListShape{Span: span, Elems: args}))
	case *ast.VarType:
		return l.wrap(span, "Type", con(span, "TyVar", strLeaf(span, t.Name)))
	case *ast.ArrowType:
		return l.wrap(span, "Type", con(span, "Arrow", l.describeType(t.Param), l.describeType(t.Result)))
	case *ast.ProductType:
		elems := make([]Shape, 0, len(t.Elems))
		for _, e := range t.Elems {
			elems = append(elems, l.describeType(e))
		}
		return l.wrap(span, "Type", con(span, "Product", &ListShape{Span: span, Elems: elems}))
	default:
		esc := t.(*ast.EscapeType)
		return l.escapeShape(esc.Tag, esc.Payload, span, slotType)
	}
}

// describeItems lowers a quoted item sequence. Location attributes are
// consumed: they re-bind the location in scope for the items that follow
// them and leave no trace in the lifted tree. The override ends with the
// sequence because the env is restored on exit.
func (l *lifter[R]) describeItems(frag *ast.Fragment) Shape {
	saved := l.env
	defer func() { l.env = saved }()

	elems := make([]Shape, 0, len(frag.Items))
	for _, item := range frag.Items {
		switch item := item.(type) {
		case *ast.LocItem:
			loc, errs := l.env.Expand(item.Value, l.env.Loc)
			l.errs = append(l.errs, errs...)
			if loc != nil {
				l.env.Loc = loc
			}
		case *ast.EscapeItem:
			elems = append(elems, l.escapeShape(item.Tag, item.Payload, spanOf(item), slotItem))
		default:
			elems = append(elems, l.describeItem(item))
		}
	}
	return &ListShape{Span: frag.Span, Splice: true, Elems: elems}
}

// describeSingleItem lowers a single-item quote, which admits neither
// location attributes nor sequence splices.
func (l *lifter[R]) describeSingleItem(frag *ast.Fragment) Shape {
	item := frag.Items[0]
	switch item := item.(type) {
	case *ast.LocItem:
		l.report(errors.New(errors.ErrorUnknownMarker, frag.Span.Start,
			"a location attribute cannot be quoted as an item").
			WithHelp("quote an item sequence instead, where the attribute has items to apply to"))
		return strLeaf(frag.Span, "")
	case *ast.EscapeItem:
		if item.Tag == ast.EscapeSeqTag {
			l.report(errors.New(errors.ErrorSequenceNotAllowed, item.Pos,
				"sequence escape where exactly one item is required").
				WithHelp("quote an item sequence to splice multiple items"))
			return strLeaf(frag.Span, "")
		}
		return l.escapeShape(item.Tag, item.Payload, spanOf(item), slotItem)
	default:
		return l.describeItem(item)
	}
}

func (l *lifter[R]) describeItem(item ast.Item) Shape {
	span := spanOf(item)
	switch item := item.(type) {
	case *ast.LetItem:
		return l.wrap(span, "Item", con(span, "Let",
			l.describePattern(item.Binding), l.describeExpr(item.Value)))
	case *ast.ExprItem:
		return l.wrap(span, "Item", con(span, "ExprItem", l.describeExpr(item.Value)))
	default:
		val := item.(*ast.ValItem)
		return l.wrap(span, "Item", con(span, "Val",
			strLeaf(span, val.Name), l.describeType(val.Type)))
	}
}

// escapeShape validates the escape tag against its slot's sub-grammar.
// Sequence escapes pass through here so that the list strategies can decide
// between splicing and the pattern-mode diagnostic.
func (l *lifter[R]) escapeShape(tag ast.EscapeTag, payload *ast.Fragment, span ast.Span, slot slotKind) Shape {
	ok := false
	switch slot {
	case slotExpr:
		ok = tag == ast.EscapeExprTag || tag == ast.EscapeSeqTag
	case slotPattern:
		ok = tag == ast.EscapePatTag || tag == ast.EscapeSeqTag
	case slotType:
		ok = tag == ast.EscapeTypeTag
	case slotItem:
		ok = tag == ast.EscapeSeqTag
	}
	if !ok {
		l.report(errors.New(errors.ErrorEscapeSlotMismatch, span.Start,
			"escape %%%s is not valid in %s position", tag, slot).WithSpan(span))
		return strLeaf(span, "")
	}
	return &EscapeShape{Span: span, Tag: tag, Payload: payload, Loc: l.env.Loc}
}

func (l *lifter[R]) nestedQuote(span ast.Span, kind ast.QuoteKind) Shape {
	l.report(errors.New(errors.ErrorNestedQuote, span.Start,
		"quotation marker [%%%s] nested inside a quoted fragment", kind).
		WithSpan(span).
		WithHelp("escape the inner quotation, e.g. %%e([%%%s ...])", kind))
	return strLeaf(span, "")
}

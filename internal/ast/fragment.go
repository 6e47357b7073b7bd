package ast

// FragKind identifies the sub-grammar a fragment was parsed under.
type FragKind int

const (
	FragExpr FragKind = iota
	FragPattern
	FragItems
	FragItem
	FragSigItems
	FragSigItem
	FragType
)

func (k FragKind) String() string {
	switch k {
	case FragExpr:
		return "expression"
	case FragPattern:
		return "pattern"
	case FragItems:
		return "item sequence"
	case FragItem:
		return "item"
	case FragSigItems:
		return "signature sequence"
	case FragSigItem:
		return "signature item"
	case FragType:
		return "type"
	default:
		return "unknown"
	}
}

// Fragment wraps a parsed node of one sub-grammar together with its source
// span. Exactly one of Expr, Pat, Type, Items is populated, depending on Kind
// (Items carries both item and signature-item sequences; a single-item
// fragment holds a one-element slice).
type Fragment struct {
	Kind  FragKind
	Span  Span
	Expr  Expr
	Pat   Pattern
	Type  Type
	Items []Item
}

// ExprFragment wraps an expression node as a fragment.
func ExprFragment(e Expr) *Fragment {
	return &Fragment{Kind: FragExpr, Span: MakeSpan(e.NodePos(), e.NodeEndPos()), Expr: e}
}

// PatternFragment wraps a pattern node as a fragment.
func PatternFragment(p Pattern) *Fragment {
	return &Fragment{Kind: FragPattern, Span: MakeSpan(p.NodePos(), p.NodeEndPos()), Pat: p}
}

// TypeFragment wraps a type node as a fragment.
func TypeFragment(t Type) *Fragment {
	return &Fragment{Kind: FragType, Span: MakeSpan(t.NodePos(), t.NodeEndPos()), Type: t}
}

// ItemsFragment wraps an item sequence as a fragment.
func ItemsFragment(kind FragKind, span Span, items []Item) *Fragment {
	return &Fragment{Kind: kind, Span: span, Items: items}
}

func (f *Fragment) String() string {
	switch f.Kind {
	case FragExpr:
		return f.Expr.String()
	case FragPattern:
		return f.Pat.String()
	case FragType:
		return f.Type.String()
	default:
		var out string
		for i, item := range f.Items {
			if i > 0 {
				out += " "
			}
			out += item.String()
		}
		return out
	}
}

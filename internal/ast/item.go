package ast

// Item is any structure-level item of the fragment language.
type Item interface {
	Node
	isItem()
}

// Unit is a whole compilation unit, the sequence of items the expander walks.
type Unit struct {
	Items []Item
}

func (u *Unit) String() string {
	var out string
	for i, item := range u.Items {
		if i > 0 {
			out += "\n"
		}
		out += item.String()
	}
	return out
}

// LetItem represents let bindings
// Example: "let x = [%expr 1]"
type LetItem struct {
	Pos     Position
	EndPos  Position
	Binding Pattern
	Value   Expr
}

// ExprItem represents bare expression items
type ExprItem struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// LocItem is the location attribute overriding the current location value for
// the remainder of its enclosing scope
// Example: "[@@loc sample_loc]"
type LocItem struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// ValItem represents signature items
// Example: "val solution : int -> string"
type ValItem struct {
	Pos    Position
	EndPos Position
	Name   string
	Type   Type
}

// EscapeItem is an escape marker found at item position of a quoted item
// sequence; only sequence splices are meaningful here.
type EscapeItem struct {
	Pos     Position
	EndPos  Position
	Tag     EscapeTag
	Payload *Fragment
}

func (*LetItem) isItem()    {}
func (*ExprItem) isItem()   {}
func (*LocItem) isItem()    {}
func (*ValItem) isItem()    {}
func (*EscapeItem) isItem() {}

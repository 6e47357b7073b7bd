package ast

// Expr is any expression node of the fragment language.
type Expr interface {
	Node
	isExpr()
}

// LitExpr represents literal values
// Example: 100, 3l, "hello", 'c'
type LitExpr struct {
	Pos    Position
	EndPos Position
	Value  Lit
}

// PathExpr represents identifier references, possibly qualified
// Example: "x", "Stdlib.append"
type PathExpr struct {
	Pos    Position
	EndPos Position
	Path   Path
}

// ConstructExpr represents variant constructor application
// Example: "None", "Some(3)", "Ast.Const(Ast.int(3))"
type ConstructExpr struct {
	Pos    Position
	EndPos Position
	Tag    Path
	Args   []Expr
}

// CallExpr represents function calls
// Example: "f(a, b)", "Ty.repr(t)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Path
	Args   []Expr
}

// RecordExpr represents record literals with a named type
// Example: "Ast.Expr { pos: l, desc: d, meta: m }"
type RecordExpr struct {
	Pos    Position
	EndPos Position
	Type   Path
	Fields []*RecordField
}

// RecordField is one "label: value" entry of a record literal.
type RecordField struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// ListExpr represents list literals with semicolon separators
// Example: "[1; 2; 3]"
type ListExpr struct {
	Pos    Position
	EndPos Position
	Elems  []Expr
}

// TupleExpr represents tuple expressions
// Example: "(a, b)", "(1, "x", 'c')"
type TupleExpr struct {
	Pos    Position
	EndPos Position
	Elems  []Expr
}

// ParenExpr represents parenthesized expressions
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// AnnotExpr represents type-annotated expressions
// Example: "(e : Ty.fn<int -> bool, int -> unit, bool>)"
type AnnotExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Type   Type
}

// OpenExpr evaluates its body with a namespace opened
// Example: "Reference.(solution(5))"
type OpenExpr struct {
	Pos       Position
	EndPos    Position
	Namespace Path
	Body      Expr
}

// QuoteExpr is a quotation or macro marker found at expression position
// Example: "[%expr 1]", "[%funty int -> bool]", "[%code f(5)]"
type QuoteExpr struct {
	Pos    Position
	EndPos Position
	Kind   QuoteKind
	Frag   *Fragment
}

// EscapeExpr is an escape marker found at an expression slot of a quoted
// fragment. The payload is always parsed as an expression; pattern-mode
// lifting re-reads it as a pattern.
// Example: "%e(x)", "%seq(rest)"
type EscapeExpr struct {
	Pos     Position
	EndPos  Position
	Tag     EscapeTag
	Payload *Fragment
}

func (*LitExpr) isExpr()       {}
func (*PathExpr) isExpr()      {}
func (*ConstructExpr) isExpr() {}
func (*CallExpr) isExpr()      {}
func (*RecordExpr) isExpr()    {}
func (*ListExpr) isExpr()      {}
func (*TupleExpr) isExpr()     {}
func (*ParenExpr) isExpr()     {}
func (*AnnotExpr) isExpr()     {}
func (*OpenExpr) isExpr()      {}
func (*QuoteExpr) isExpr()     {}
func (*EscapeExpr) isExpr()    {}

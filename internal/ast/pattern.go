package ast

// Pattern is any pattern node of the fragment language.
type Pattern interface {
	Node
	isPattern()
}

// WildcardPat matches anything
// Example: "_"
type WildcardPat struct {
	Pos    Position
	EndPos Position
}

// VarPat binds a variable
// Example: "x"
type VarPat struct {
	Pos    Position
	EndPos Position
	Name   string
}

// LitPat matches a literal value
// Example: "3", "\"hello\""
type LitPat struct {
	Pos    Position
	EndPos Position
	Value  Lit
}

// ConstructPat matches a variant constructor
// Example: "Some(x)", "None"
type ConstructPat struct {
	Pos    Position
	EndPos Position
	Tag    Path
	Args   []Pattern
}

// ListPat matches a list structurally
// Example: "[a; b]"
type ListPat struct {
	Pos    Position
	EndPos Position
	Elems  []Pattern
}

// TuplePat matches a tuple
// Example: "(a, _)"
type TuplePat struct {
	Pos    Position
	EndPos Position
	Elems  []Pattern
}

// RecordPat matches a record with a closed field set
// Example: "Ast.Expr { pos: _, desc: d, meta: _ }"
type RecordPat struct {
	Pos    Position
	EndPos Position
	Type   Path
	Fields []*RecordPatField
}

// RecordPatField is one "label: pattern" entry of a record pattern.
type RecordPatField struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Pattern
}

// QuotePat is a quotation marker found at pattern position; it triggers
// pattern-mode lifting of the quoted fragment.
// Example: "let [%expr 1] = submitted"
type QuotePat struct {
	Pos    Position
	EndPos Position
	Kind   QuoteKind
	Frag   *Fragment
}

// EscapePat is an escape marker found at a pattern slot of a quoted fragment.
type EscapePat struct {
	Pos     Position
	EndPos  Position
	Tag     EscapeTag
	Payload *Fragment
}

func (*WildcardPat) isPattern()  {}
func (*VarPat) isPattern()       {}
func (*LitPat) isPattern()       {}
func (*ConstructPat) isPattern() {}
func (*ListPat) isPattern()      {}
func (*TuplePat) isPattern()     {}
func (*RecordPat) isPattern()    {}
func (*QuotePat) isPattern()     {}
func (*EscapePat) isPattern()    {}

package ast

// Type is any type node of the fragment language.
type Type interface {
	Node
	isType()
}

// NamedType represents named and parametrized types
// Example: "int", "list<int>", "Ty.fn<a -> b, a -> unit, b>"
type NamedType struct {
	Pos    Position
	EndPos Position
	Name   Path
	Args   []Type
}

// VarType represents type variables
// Example: "'a"
type VarType struct {
	Pos    Position
	EndPos Position
	Name   string // without the leading quote
}

// ArrowType represents one function arrow layer, right associative
// Example: "int -> string -> bool"
type ArrowType struct {
	Pos    Position
	EndPos Position
	Param  Type
	Result Type
}

// ProductType represents tuple types
// Example: "int * string"
type ProductType struct {
	Pos    Position
	EndPos Position
	Elems  []Type
}

// EscapeType is an escape marker found at a type slot of a quoted fragment.
type EscapeType struct {
	Pos     Position
	EndPos  Position
	Tag     EscapeTag
	Payload *Fragment
}

func (*NamedType) isType()   {}
func (*VarType) isType()     {}
func (*ArrowType) isType()   {}
func (*ProductType) isType() {}
func (*EscapeType) isType()  {}

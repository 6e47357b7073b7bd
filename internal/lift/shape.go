// Package lift turns parsed fragments into generated host code that
// reconstructs (expression mode) or matches (pattern mode) the fragment's
// syntax tree at runtime. Every liftable node is first lowered into the
// closed Shape variant; a per-mode strategy then renders shapes without
// knowing which AST node produced them.
package lift

import "metaquot/internal/ast"

// Shape is the closed node-kind variant produced by the describe step.
type Shape interface {
	isShape()
	ShapeSpan() ast.Span
}

// RecordShape is a node-wrapper record such as the expression wrapper with
// its location, description and metadata fields. Fields flagged Loc or Meta
// carry no sub-shape: expression mode fills them with the location in scope
// and fresh metadata, pattern mode wildcards them.
type RecordShape struct {
	Span     ast.Span
	TypeName string // unqualified; qualified with the AST module name at render time
	Fields   []RecordShapeField
}

// RecordShapeField is one field of a RecordShape.
type RecordShapeField struct {
	Name  string
	Loc   bool     // location-bearing field
	Meta  bool     // metadata field
	Value ast.Expr // location expression in scope at describe time, Loc only
	Shape Shape    // nil when Loc or Meta
}

// ConstructorShape is a variant constructor application.
type ConstructorShape struct {
	Span ast.Span
	Tag  string // unqualified; qualified with the AST module name at render time
	Args []Shape
}

// ListShape is an ordered collection of sub-shapes. Splice marks slots where
// sequence escapes are admitted (list literals and item sequences); in other
// collections a sequence escape is a diagnostic.
type ListShape struct {
	Span   ast.Span
	Splice bool
	Elems  []Shape
}

// TupleShape is a fixed-arity grouping of sub-shapes.
type TupleShape struct {
	Span  ast.Span
	Elems []Shape
}

// LeafShape is a primitive literal, reconstructed with a kind-specific
// literal-construction call.
type LeafShape struct {
	Span  ast.Span
	Value ast.Lit
}

// EscapeShape is an escape marker whose payload the strategies splice in
// place of generated structure. Loc is the location expression in scope at
// describe time, so quotations nested inside the payload are stamped with
// the override active at the escape.
type EscapeShape struct {
	Span    ast.Span
	Tag     ast.EscapeTag
	Payload *ast.Fragment
	Loc     ast.Expr
}

func (*RecordShape) isShape()      {}
func (*ConstructorShape) isShape() {}
func (*ListShape) isShape()        {}
func (*TupleShape) isShape()       {}
func (*LeafShape) isShape()        {}
func (*EscapeShape) isShape()      {}

func (s *RecordShape) ShapeSpan() ast.Span      { return s.Span }
func (s *ConstructorShape) ShapeSpan() ast.Span { return s.Span }
func (s *ListShape) ShapeSpan() ast.Span        { return s.Span }
func (s *TupleShape) ShapeSpan() ast.Span       { return s.Span }
func (s *LeafShape) ShapeSpan() ast.Span        { return s.Span }
func (s *EscapeShape) ShapeSpan() ast.Span      { return s.Span }

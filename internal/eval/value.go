// Package eval is a small tree-walking evaluator for expanded host
// expressions. It exists so generated reconstructions are executable: tests
// run the lifter's output against the builtin harness modules and compare
// the resulting tree values.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"metaquot/internal/ast"
)

// Value is a runtime value of the host fragment language.
type Value interface {
	isValue()
	String() string
}

// IntValue carries every integer width; Kind preserves which one.
type IntValue struct {
	Kind ast.LitKind
	Val  int64
}

type StrValue string

type CharValue rune

type ListValue []Value

type TupleValue []Value

// RecordValue keeps its fields ordered so rendering is stable.
type RecordValue struct {
	Type   string
	Fields []RecordFieldValue
}

type RecordFieldValue struct {
	Name  string
	Value Value
}

// ConstructValue is an applied variant constructor, tagged with its
// qualified name.
type ConstructValue struct {
	Tag  string
	Args []Value
}

// BuiltinValue is a host function provided by a builtin namespace.
type BuiltinValue struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (IntValue) isValue()        {}
func (StrValue) isValue()        {}
func (CharValue) isValue()       {}
func (ListValue) isValue()       {}
func (TupleValue) isValue()      {}
func (*RecordValue) isValue()    {}
func (*ConstructValue) isValue() {}
func (*BuiltinValue) isValue()   {}

func (v IntValue) String() string {
	return ast.Lit{Kind: v.Kind, Int: v.Val}.String()
}

func (v StrValue) String() string {
	return strconv.Quote(string(v))
}

func (v CharValue) String() string {
	return "'" + string(rune(v)) + "'"
}

func (v ListValue) String() string {
	return "[" + joinValues(v, "; ") + "]"
}

func (v TupleValue) String() string {
	return "(" + joinValues(v, ", ") + ")"
}

func (v *RecordValue) String() string {
	var b strings.Builder
	b.WriteString(v.Type)
	b.WriteString(" { ")
	for i, f := range v.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (v *ConstructValue) String() string {
	if len(v.Args) == 0 {
		return v.Tag
	}
	return fmt.Sprintf("%s(%s)", v.Tag, joinValues(v.Args, ", "))
}

func (v *BuiltinValue) String() string {
	return "<builtin " + v.Name + ">"
}

// Field looks up a record field by name.
func (v *RecordValue) Field(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func joinValues(vs []Value, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

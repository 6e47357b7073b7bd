package ast

import (
	"strconv"
	"strings"
)

// LitKind distinguishes the primitive leaf kinds the lifter must reconstruct
// with a kind-specific literal-construction call.
type LitKind int

const (
	LitInt LitKind = iota
	LitInt32
	LitInt64
	LitNative
	LitString
	LitChar
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitInt32:
		return "int32"
	case LitInt64:
		return "int64"
	case LitNative:
		return "nativeint"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	default:
		return "illegal"
	}
}

// Lit is a primitive literal value shared by expression and pattern leaves.
// Example: 3, 3l, 3L, 3n, "hello", 'c'
type Lit struct {
	Kind LitKind
	Int  int64  // LitInt, LitInt32, LitInt64, LitNative
	Str  string // LitString
	Char rune   // LitChar
}

func (l Lit) String() string {
	switch l.Kind {
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitInt32:
		return strconv.FormatInt(l.Int, 10) + "l"
	case LitInt64:
		return strconv.FormatInt(l.Int, 10) + "L"
	case LitNative:
		return strconv.FormatInt(l.Int, 10) + "n"
	case LitString:
		return strconv.Quote(l.Str)
	case LitChar:
		return "'" + escapeChar(l.Char) + "'"
	default:
		return "<illegal literal>"
	}
}

func escapeChar(r rune) string {
	switch r {
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	return string(r)
}

// StringLit builds a string literal, used for lifted path and label leaves.
func StringLit(s string) Lit {
	return Lit{Kind: LitString, Str: s}
}

// Path is a dot-qualified name like "Ast.Expr" or "Stdlib.append".
type Path struct {
	Parts []string
}

// MakePath splits a dotted name into a Path.
func MakePath(dotted string) Path {
	return Path{Parts: strings.Split(dotted, ".")}
}

func (p Path) String() string {
	return strings.Join(p.Parts, ".")
}

// Last returns the final path segment, the unqualified name.
func (p Path) Last() string {
	if len(p.Parts) == 0 {
		return ""
	}
	return p.Parts[len(p.Parts)-1]
}

// IsConstructor reports whether the final segment names a variant constructor.
func (p Path) IsConstructor() bool {
	last := p.Last()
	if last == "" {
		return false
	}
	return last[0] >= 'A' && last[0] <= 'Z'
}

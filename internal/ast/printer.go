package ast

import (
	"fmt"
	"strings"
)

// The String methods render nodes back to fragment-language source text. The
// expander's output is printed with these, and the printable macro embeds the
// rendered text of its quoted fragment, so rendering must re-parse to an
// equivalent tree.

func (e *LitExpr) String() string {
	return e.Value.String()
}

func (e *PathExpr) String() string {
	return e.Path.String()
}

func (e *ConstructExpr) String() string {
	if len(e.Args) == 0 {
		return e.Tag.String()
	}
	return fmt.Sprintf("%s(%s)", e.Tag.String(), joinExprs(e.Args, ", "))
}

func (e *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Callee.String(), joinExprs(e.Args, ", "))
}

func (e *RecordExpr) String() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(" { ")
	for i, f := range e.Fields {
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

func (e *ListExpr) String() string {
	return "[" + joinExprs(e.Elems, "; ") + "]"
}

func (e *TupleExpr) String() string {
	return "(" + joinExprs(e.Elems, ", ") + ")"
}

func (e *ParenExpr) String() string {
	return "(" + e.Value.String() + ")"
}

func (e *AnnotExpr) String() string {
	return fmt.Sprintf("(%s : %s)", e.Value.String(), e.Type.String())
}

func (e *OpenExpr) String() string {
	return fmt.Sprintf("%s.(%s)", e.Namespace.String(), e.Body.String())
}

func (e *QuoteExpr) String() string {
	return fmt.Sprintf("[%%%s %s]", e.Kind, e.Frag.String())
}

func (e *EscapeExpr) String() string {
	return fmt.Sprintf("%%%s(%s)", e.Tag, e.Payload.String())
}

func (p *WildcardPat) String() string {
	return "_"
}

func (p *VarPat) String() string {
	return p.Name
}

func (p *LitPat) String() string {
	return p.Value.String()
}

func (p *ConstructPat) String() string {
	if len(p.Args) == 0 {
		return p.Tag.String()
	}
	return fmt.Sprintf("%s(%s)", p.Tag.String(), joinPats(p.Args, ", "))
}

func (p *ListPat) String() string {
	return "[" + joinPats(p.Elems, "; ") + "]"
}

func (p *TuplePat) String() string {
	return "(" + joinPats(p.Elems, ", ") + ")"
}

func (p *RecordPat) String() string {
	var b strings.Builder
	b.WriteString(p.Type.String())
	b.WriteString(" { ")
	for i, f := range p.Fields {
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

func (p *QuotePat) String() string {
	return fmt.Sprintf("[%%%s %s]", p.Kind, p.Frag.String())
}

func (p *EscapePat) String() string {
	return fmt.Sprintf("%%%s(%s)", p.Tag, p.Payload.String())
}

func (t *NamedType) String() string {
	if len(t.Args) == 0 {
		return t.Name.String()
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Name.String(), strings.Join(parts, ", "))
}

func (t *VarType) String() string {
	return "'" + t.Name
}

func (t *ArrowType) String() string {
	// arrows are right associative, so only the parameter side needs parens
	param := t.Param.String()
	if _, ok := t.Param.(*ArrowType); ok {
		param = "(" + param + ")"
	}
	return param + " -> " + t.Result.String()
}

func (t *ProductType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		s := e.String()
		switch e.(type) {
		case *ArrowType, *ProductType:
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " * ")
}

func (t *EscapeType) String() string {
	return fmt.Sprintf("%%%s(%s)", t.Tag, t.Payload.String())
}

func (i *LetItem) String() string {
	return fmt.Sprintf("let %s = %s", i.Binding.String(), i.Value.String())
}

func (i *ExprItem) String() string {
	return i.Value.String()
}

func (i *LocItem) String() string {
	return fmt.Sprintf("[@@loc %s]", i.Value.String())
}

func (i *ValItem) String() string {
	return fmt.Sprintf("val %s : %s", i.Name, i.Type.String())
}

func (i *EscapeItem) String() string {
	return fmt.Sprintf("%%%s(%s)", i.Tag, i.Payload.String())
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func joinPats(pats []Pattern, sep string) string {
	parts := make([]string, len(pats))
	for i, p := range pats {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}

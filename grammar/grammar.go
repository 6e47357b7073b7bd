package grammar

import "github.com/alecthomas/participle/v2/lexer"

type Unit struct {
	Items []*Item `@@*`
}

type Item struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Loc    *LocItem `  @@`
	Let    *LetItem `| @@`
	Val    *ValItem `| @@`
	Escape *Escape  `| @@`
	Expr   *Expr    `| @@`
}

type LocItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw    string `@LocAttr`
	Value *Expr  `@@ "]"`
}

type LetItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Binding *Pattern `"let" @@`
	Value   *Expr    `"=" @@`
}

type ValItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name string `"val" @Ident`
	Type *Type  `":" @@`
}

type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Quote  *Quote    `  @@`
	Escape *Escape   `| @@`
	Lit    *Lit      `| @@`
	List   *ListLit  `| @@`
	Paren  *Paren    `| @@`
	Path   *PathExpr `| @@`
}

type Lit struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Int  *string `  @Int`
	Str  *string `| @String`
	Char *string `| @Char`
}

type ListLit struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Open  string  `@"["`
	Elems []*Expr `( @@ ( ";" @@ )* )? "]"`
}

// Paren covers grouping, annotation, and tuples: (e), (e : t), (e, e).
type Paren struct {
	Pos    lexer.Position
	EndPos lexer.Position

	First *Expr   `"(" @@`
	Annot *Type   `( ":" @@`
	Rest  []*Expr `| ( "," @@ )+ )? ")"`
}

// PathExpr covers identifier references, calls, constructors, record
// literals, and namespace opens, all of which begin with a qualified path.
type PathExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Parts  []string    `@Ident ( "." @Ident )*`
	Open   *Expr       `( "." "(" @@ ")"`
	Call   *Args       `| @@`
	Record *RecordBody `| @@ )?`
}

type Args struct {
	Pos lexer.Position

	Open string  `@"("`
	Args []*Expr `( @@ ( "," @@ )* )? ")"`
}

type RecordBody struct {
	Pos lexer.Position

	Fields []*RecordField `"{" @@ ( "," @@ )* ","? "}"`
}

type RecordField struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name  string `@Ident`
	Value *Expr  `":" @@`
}

type Escape struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Tag   string  `@EscapeMarker`
	Ident *string `( @Ident`
	Paren *Expr   `| "(" @@ ")" )`
}

type Quote struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Expr      *QuoteExpr      `  @@`
	Pat       *QuotePat       `| @@`
	Items     *QuoteItems     `| @@`
	Item      *QuoteItem      `| @@`
	SigItems  *QuoteSigItems  `| @@`
	SigItem   *QuoteSigItem   `| @@`
	Type      *QuoteType      `| @@`
	Ty        *QuoteTy        `| @@`
	FunTy     *QuoteFunTy     `| @@`
	Printable *QuotePrintable `| @@`
	Code      *QuoteCode      `| @@`
}

type QuoteExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%expr"`
	Body *Expr  `@@ "]"`
}

type QuotePat struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string   `@"[%pat"`
	Body *Pattern `@@ "]"`
}

type QuoteItems struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string  `@"[%items"`
	Body []*Item `@@* "]"`
}

type QuoteItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%item"`
	Body *Item  `@@ "]"`
}

type QuoteSigItems struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string     `@"[%sigitems"`
	Body []*SigItem `@@* "]"`
}

type QuoteSigItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string   `@"[%sigitem"`
	Body *SigItem `@@ "]"`
}

// SigItem is an entry of a quoted signature sequence: a val declaration, a
// location attribute, or a sequence splice.
type SigItem struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Loc    *LocItem `  @@`
	Val    *ValItem `| @@`
	Escape *Escape  `| @@`
}

type QuoteType struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%type"`
	Body *Type  `@@ "]"`
}

type QuoteTy struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%ty"`
	Body *Type  `@@ "]"`
}

type QuoteFunTy struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%funty"`
	Body *Type  `@@ "]"`
}

type QuotePrintable struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%printable"`
	Body *Expr  `@@ "]"`
}

type QuoteCode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Kw   string `@"[%code"`
	Body *Expr  `@@ "]"`
}

type Pattern struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Quote  *Quote    `  @@`
	Escape *Escape   `| @@`
	Lit    *Lit      `| @@`
	List   *ListPat  `| @@`
	Tuple  *TuplePat `| @@`
	Path   *PathPat  `| @@`
}

type ListPat struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Open  string     `@"["`
	Elems []*Pattern `( @@ ( ";" @@ )* )? "]"`
}

type TuplePat struct {
	Pos    lexer.Position
	EndPos lexer.Position

	First *Pattern   `"(" @@`
	Rest  []*Pattern `( "," @@ )* ")"`
}

// PathPat covers wildcards, variables, constructor patterns, and record
// patterns ("_" scans as an identifier and is recognized during conversion).
type PathPat struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Parts  []string   `@Ident ( "." @Ident )*`
	Args   *PatArgs   `( @@`
	Record *PatRecord `| @@ )?`
}

type PatArgs struct {
	Pos lexer.Position

	Open string     `@"("`
	Args []*Pattern `( @@ ( "," @@ )* )? ")"`
}

type PatRecord struct {
	Pos lexer.Position

	Fields []*PatField `"{" @@ ( "," @@ )* ","? "}"`
}

type PatField struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name  string   `@Ident`
	Value *Pattern `":" @@`
}

// Type is one arrow layer; arrows are right associative.
type Type struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Left  *ProductType `@@`
	Right *Type        `( "->" @@ )?`
}

type ProductType struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Factors []*PrimType `@@ ( "*" @@ )*`
}

type PrimType struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Escape *Escape    `  @@`
	Var    *string    `| @TypeVar`
	Named  *NamedType `| @@`
	Paren  *Type      `| "(" @@ ")"`
}

type NamedType struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Parts []string `@Ident ( "." @Ident )*`
	Args  []*Type  `( "<" @@ ( "," @@ )* ">" )?`
}

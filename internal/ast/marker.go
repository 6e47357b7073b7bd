package ast

// EscapeTag identifies which slot an escape marker fills inside a quoted
// fragment.
type EscapeTag string

const (
	EscapeExprTag EscapeTag = "e"
	EscapePatTag  EscapeTag = "p"
	EscapeTypeTag EscapeTag = "t"
	EscapeSeqTag  EscapeTag = "seq"
)

// QuoteKind names the quotation and macro markers recognized by the expander.
type QuoteKind string

const (
	QuoteExprKind      QuoteKind = "expr"
	QuotePatKind       QuoteKind = "pat"
	QuoteItemsKind     QuoteKind = "items"
	QuoteItemKind      QuoteKind = "item"
	QuoteSigItemsKind  QuoteKind = "sigitems"
	QuoteSigItemKind   QuoteKind = "sigitem"
	QuoteTypeKind      QuoteKind = "type"
	QuoteTyKind        QuoteKind = "ty"
	QuoteFunTyKind     QuoteKind = "funty"
	QuotePrintableKind QuoteKind = "printable"
	QuoteCodeKind      QuoteKind = "code"
)

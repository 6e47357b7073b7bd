package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var FragmentLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Quotation and macro markers (longest spellings first)
		{"QuoteMarker", `\[%(sigitems|sigitem|items|item|expr|printable|pat|code|funty|type|ty)\b`, nil},

		// Location attribute opener
		{"LocAttr", `\[@@loc\b`, nil},

		// Escape markers
		{"EscapeMarker", `%(seq|e|p|t)\b`, nil},

		// Char literals must come before type variables ('a' vs 'a)
		{"Char", `'(\\.|[^'\\])'`, nil},
		{"TypeVar", `'[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// String literals
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Integer literals, optional width suffix
		{"Int", `0x[0-9a-fA-F]+[lLn]?|[0-9]+[lLn]?`, nil},

		// Keywords and identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Arrow (must come before punctuation)
		{"Arrow", `->`, nil},

		// Punctuation
		{"Punct", `[{}\[\]().,:;*<>=]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Expressions
	LIT_EXPR
	PATH_EXPR
	CONSTRUCT_EXPR
	CALL_EXPR
	RECORD_EXPR
	LIST_EXPR
	TUPLE_EXPR
	PAREN_EXPR
	ANNOT_EXPR
	OPEN_EXPR
	QUOTE_EXPR
	ESCAPE_EXPR

	// Patterns
	WILDCARD_PAT
	VAR_PAT
	LIT_PAT
	CONSTRUCT_PAT
	LIST_PAT
	TUPLE_PAT
	RECORD_PAT
	QUOTE_PAT
	ESCAPE_PAT

	// Types
	NAMED_TYPE
	VAR_TYPE
	ARROW_TYPE
	PRODUCT_TYPE
	ESCAPE_TYPE

	// Items
	LET_ITEM
	EXPR_ITEM
	LOC_ITEM
	VAL_ITEM
	ESCAPE_ITEM
)

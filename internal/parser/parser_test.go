package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaquot/internal/ast"
	"metaquot/internal/errors"
	"metaquot/internal/parser"
)

func parseExprOK(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, errs := parser.ParseExpr("test.mq", src)
	require.Empty(t, errs, src)
	require.NotNil(t, e, src)
	return e
}

func TestLowerLiteralWidths(t *testing.T) {
	cases := map[string]ast.LitKind{
		"3":    ast.LitInt,
		"3l":   ast.LitInt32,
		"3L":   ast.LitInt64,
		"3n":   ast.LitNative,
		"0xff": ast.LitInt,
	}
	for src, kind := range cases {
		lit, ok := parseExprOK(t, src).(*ast.LitExpr)
		require.True(t, ok, src)
		assert.Equal(t, kind, lit.Value.Kind, src)
	}

	lit := parseExprOK(t, "0xff").(*ast.LitExpr)
	assert.Equal(t, int64(255), lit.Value.Int)
}

func TestLowerLiteralOverflow(t *testing.T) {
	// 2^40 does not fit an int32 literal
	_, errs := parser.ParseExpr("test.mq", "1099511627776l")
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorLiteralOverflow, errs[0].Code)

	// but it does fit the 64-bit width
	e := parseExprOK(t, "1099511627776L")
	lit := e.(*ast.LitExpr)
	assert.Equal(t, int64(1099511627776), lit.Value.Int)
}

func TestLowerStringAndChar(t *testing.T) {
	str := parseExprOK(t, `"hi\n"`).(*ast.LitExpr)
	assert.Equal(t, ast.LitString, str.Value.Kind)
	assert.Equal(t, "hi\n", str.Value.Str)

	ch := parseExprOK(t, `'c'`).(*ast.LitExpr)
	assert.Equal(t, ast.LitChar, ch.Value.Kind)
	assert.Equal(t, 'c', ch.Value.Char)

	esc := parseExprOK(t, `'\n'`).(*ast.LitExpr)
	assert.Equal(t, '\n', esc.Value.Char)
}

func TestLowerConstructorVersusCall(t *testing.T) {
	call, ok := parseExprOK(t, "f(a, b)").(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Callee.String())
	assert.Len(t, call.Args, 2)

	construct, ok := parseExprOK(t, "Some(3)").(*ast.ConstructExpr)
	require.True(t, ok)
	assert.Equal(t, "Some", construct.Tag.String())

	qualified, ok := parseExprOK(t, "Ast.Const(Ast.int(3))").(*ast.ConstructExpr)
	require.True(t, ok)
	assert.Equal(t, "Ast.Const", qualified.Tag.String())

	bare, ok := parseExprOK(t, "None").(*ast.ConstructExpr)
	require.True(t, ok)
	assert.Empty(t, bare.Args)

	ident, ok := parseExprOK(t, "Stdlib.append").(*ast.PathExpr)
	require.True(t, ok)
	assert.Equal(t, "Stdlib.append", ident.Path.String())
}

func TestLowerQuoteAndEscape(t *testing.T) {
	quote, ok := parseExprOK(t, "[%expr [1; 2; %seq rest]]").(*ast.QuoteExpr)
	require.True(t, ok)
	assert.Equal(t, ast.QuoteExprKind, quote.Kind)
	require.Equal(t, ast.FragExpr, quote.Frag.Kind)

	list, ok := quote.Frag.Expr.(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, list.Elems, 3)

	splice, ok := list.Elems[2].(*ast.EscapeExpr)
	require.True(t, ok)
	assert.Equal(t, ast.EscapeSeqTag, splice.Tag)
	require.Equal(t, ast.FragExpr, splice.Payload.Kind)
	assert.Equal(t, "rest", splice.Payload.Expr.String())
}

func TestLowerPatterns(t *testing.T) {
	u, errs := parser.ParseUnit("test.mq", "let (a, _, Some(x)) = v")
	require.Empty(t, errs)
	require.Len(t, u.Items, 1)

	let, ok := u.Items[0].(*ast.LetItem)
	require.True(t, ok)
	tuple, ok := let.Binding.(*ast.TuplePat)
	require.True(t, ok)
	require.Len(t, tuple.Elems, 3)
	assert.IsType(t, &ast.VarPat{}, tuple.Elems[0])
	assert.IsType(t, &ast.WildcardPat{}, tuple.Elems[1])
	assert.IsType(t, &ast.ConstructPat{}, tuple.Elems[2])
}

func TestLowerQualifiedPatternRejected(t *testing.T) {
	_, errs := parser.ParseUnit("test.mq", "let a.b = v")
	require.NotEmpty(t, errs)
	assert.Equal(t, errors.ErrorSyntax, errs[0].Code)
}

func TestLowerTypes(t *testing.T) {
	typ, errs := parser.ParseType("test.mq", "int -> list<'a> -> int * string")
	require.Empty(t, errs)

	arrow, ok := typ.(*ast.ArrowType)
	require.True(t, ok)
	assert.Equal(t, "int", arrow.Param.String())

	inner, ok := arrow.Result.(*ast.ArrowType)
	require.True(t, ok)
	assert.Equal(t, "list<'a>", inner.Param.String())
	assert.Equal(t, "int * string", inner.Result.String())
}

func TestLowerAnnotationAndTuple(t *testing.T) {
	annot, ok := parseExprOK(t, "(e : int)").(*ast.AnnotExpr)
	require.True(t, ok)
	assert.Equal(t, "int", annot.Type.String())

	tuple, ok := parseExprOK(t, "(a, b, c)").(*ast.TupleExpr)
	require.True(t, ok)
	assert.Len(t, tuple.Elems, 3)

	paren, ok := parseExprOK(t, "(a)").(*ast.ParenExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.PathExpr{}, paren.Value)
}

func TestLowerSignatureQuote(t *testing.T) {
	quote, ok := parseExprOK(t, "[%sigitems val solution : int -> string %seq(more)]").(*ast.QuoteExpr)
	require.True(t, ok)
	assert.Equal(t, ast.QuoteSigItemsKind, quote.Kind)
	require.Equal(t, ast.FragSigItems, quote.Frag.Kind)
	require.Len(t, quote.Frag.Items, 2)

	val, ok := quote.Frag.Items[0].(*ast.ValItem)
	require.True(t, ok)
	assert.Equal(t, "solution", val.Name)
	assert.Equal(t, "int -> string", val.Type.String())
	assert.IsType(t, &ast.EscapeItem{}, quote.Frag.Items[1])
}

func TestRenderRoundTrip(t *testing.T) {
	// rendering must re-parse to an equivalent tree
	sources := []string{
		`[1; 2; 3]`,
		`Ast.Expr { pos: l, desc: Ast.Const(Ast.int(3)), meta: Ast.meta() }`,
		`(f(a) : list<int>)`,
		`Reference.(solution(5))`,
	}
	for _, src := range sources {
		first := parseExprOK(t, src)
		second := parseExprOK(t, first.String())
		assert.Equal(t, first.String(), second.String(), src)
	}
}

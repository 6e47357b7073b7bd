package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaquot/grammar"
)

func TestParseUnitWithQuotes(t *testing.T) {
	unit, err := grammar.ParseUnit("test.mq", `
// grading exercise
let expected = [%expr 1]
let check = [%funty int -> bool]
f(expected, check)
`)
	require.NoError(t, err)
	require.Len(t, unit.Items, 3)

	first := unit.Items[0].Let
	require.NotNil(t, first)
	require.NotNil(t, first.Binding.Path)
	assert.Equal(t, []string{"expected"}, first.Binding.Path.Parts)
	require.NotNil(t, first.Value.Quote)
	require.NotNil(t, first.Value.Quote.Expr)
	assert.Equal(t, "[%expr", first.Value.Quote.Expr.Kw)

	second := unit.Items[1].Let
	require.NotNil(t, second)
	require.NotNil(t, second.Value.Quote.FunTy)

	third := unit.Items[2].Expr
	require.NotNil(t, third)
	require.NotNil(t, third.Path)
	require.NotNil(t, third.Path.Call)
	assert.Len(t, third.Path.Call.Args, 2)
}

func TestParseListWithSequenceEscape(t *testing.T) {
	expr, err := grammar.ParseExpr("test.mq", `[1; 2; %seq x; 3]`)
	require.NoError(t, err)
	require.NotNil(t, expr.List)
	require.Len(t, expr.List.Elems, 4)

	splice := expr.List.Elems[2].Escape
	require.NotNil(t, splice)
	assert.Equal(t, "%seq", splice.Tag)
	require.NotNil(t, splice.Ident)
	assert.Equal(t, "x", *splice.Ident)
}

func TestParseRecordAndOpen(t *testing.T) {
	expr, err := grammar.ParseExpr("test.mq", `Ast.Expr { pos: l, desc: d }`)
	require.NoError(t, err)
	require.NotNil(t, expr.Path)
	assert.Equal(t, []string{"Ast", "Expr"}, expr.Path.Parts)
	require.NotNil(t, expr.Path.Record)
	assert.Len(t, expr.Path.Record.Fields, 2)

	open, err := grammar.ParseExpr("test.mq", `Reference.(solution(5))`)
	require.NoError(t, err)
	require.NotNil(t, open.Path)
	require.NotNil(t, open.Path.Open)
}

func TestParseLiteralSuffixes(t *testing.T) {
	for _, src := range []string{"3", "3l", "3L", "3n", "0xffL"} {
		expr, err := grammar.ParseExpr("test.mq", src)
		require.NoError(t, err, src)
		require.NotNil(t, expr.Lit, src)
		require.NotNil(t, expr.Lit.Int, src)
		assert.Equal(t, src, *expr.Lit.Int)
	}
}

func TestParseTypes(t *testing.T) {
	typ, err := grammar.ParseType("test.mq", `int -> list<'a> -> int * string`)
	require.NoError(t, err)
	require.NotNil(t, typ.Right)

	first := typ.Left.Factors[0]
	require.NotNil(t, first.Named)
	assert.Equal(t, []string{"int"}, first.Named.Parts)

	second := typ.Right.Left.Factors[0]
	require.NotNil(t, second.Named)
	assert.Equal(t, []string{"list"}, second.Named.Parts)
	require.Len(t, second.Named.Args, 1)

	product := typ.Right.Right.Left
	assert.Len(t, product.Factors, 2)
}

func TestParseLocationAttribute(t *testing.T) {
	unit, err := grammar.ParseUnit("test.mq", `
[@@loc sample_loc]
let x = [%expr 1]
`)
	require.NoError(t, err)
	require.Len(t, unit.Items, 2)
	require.NotNil(t, unit.Items[0].Loc)
	require.NotNil(t, unit.Items[0].Loc.Value.Path)
}

func TestParsePatternQuote(t *testing.T) {
	unit, err := grammar.ParseUnit("test.mq", `let [%expr %e(y)] = submitted`)
	require.NoError(t, err)
	require.Len(t, unit.Items, 1)
	binding := unit.Items[0].Let.Binding
	require.NotNil(t, binding.Quote)
	require.NotNil(t, binding.Quote.Expr)
}

func TestParseRejectsUnterminatedQuote(t *testing.T) {
	_, err := grammar.ParseUnit("test.mq", `let x = [%expr 1`)
	assert.Error(t, err)
}

package lift_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaquot/internal/ast"
	"metaquot/internal/config"
	"metaquot/internal/errors"
	"metaquot/internal/lift"
	"metaquot/internal/parser"
)

// testEnv passes escape payloads through unexpanded, which is enough for
// payloads that are plain identifiers.
func testEnv() lift.Env {
	return lift.Env{
		Loc:   &ast.CallExpr{Callee: ast.MakePath("Loc.current")},
		Names: config.Default(),
		Expand: func(e ast.Expr, _ ast.Expr) (ast.Expr, []errors.CompilerError) {
			return e, nil
		},
	}
}

func exprFragment(t *testing.T, src string) *ast.Fragment {
	t.Helper()
	e, errs := parser.ParseExpr("test.mq", src)
	require.Empty(t, errs)
	return ast.ExprFragment(e)
}

func TestLiftIntReconstruction(t *testing.T) {
	out, errs := lift.Expr(exprFragment(t, "3"), testEnv())
	require.Empty(t, errs)
	assert.Equal(t,
		"Ast.Expr { pos: Loc.current(), desc: Ast.Const(Ast.int(3)), meta: Ast.meta() }",
		out.String())
}

func TestLiftLeafWidths(t *testing.T) {
	cases := map[string]string{
		"3l":      "Ast.int32(3l)",
		"3L":      "Ast.int64(3L)",
		"3n":      "Ast.nativeint(3n)",
		`"hi"`:    `Ast.string("hi")`,
		"'c'":     "Ast.char('c')",
		"1234567": "Ast.int(1234567)",
	}
	for src, want := range cases {
		out, errs := lift.Expr(exprFragment(t, src), testEnv())
		require.Empty(t, errs, src)
		assert.Contains(t, out.String(), want, src)
	}
}

func TestLiftListSplice(t *testing.T) {
	out, errs := lift.Expr(exprFragment(t, "[1; 2; %seq x; 3]"), testEnv())
	require.Empty(t, errs)

	rendered := out.String()
	// two plain segments around the splice, concatenated in order
	assert.Equal(t, 2, strings.Count(rendered, "Stdlib.append("))
	first := strings.Index(rendered, "Ast.int(1)")
	spliced := strings.Index(rendered, "Stdlib.append(x,")
	last := strings.Index(rendered, "Ast.int(3)")
	assert.True(t, first >= 0 && spliced > first && last > spliced, rendered)
}

func TestLiftSpliceOutsideListRejected(t *testing.T) {
	_, errs := lift.Expr(exprFragment(t, "%seq x"), testEnv())
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorSequenceNotAllowed, errs[0].Code)
}

func TestLiftEscapeSplicesPayload(t *testing.T) {
	out, errs := lift.Expr(exprFragment(t, "f(%e(sub), 2)"), testEnv())
	require.Empty(t, errs)
	rendered := out.String()
	assert.Contains(t, rendered, `Ast.Call(Ast.string("f")`)
	assert.Contains(t, rendered, "sub")
	assert.NotContains(t, rendered, "%e")
}

func TestLiftEscapeSlotMismatch(t *testing.T) {
	// a pattern escape has no business in an expression slot
	_, errs := lift.Expr(exprFragment(t, "f(%p(sub))"), testEnv())
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorEscapeSlotMismatch, errs[0].Code)
}

func TestLiftNestedQuoteRejected(t *testing.T) {
	_, errs := lift.Expr(exprFragment(t, "f([%expr 1])"), testEnv())
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorNestedQuote, errs[0].Code)
}

func TestLiftPatternWildcardsLocationAndMetadata(t *testing.T) {
	out, errs := lift.Pattern(exprFragment(t, "3"), testEnv())
	require.Empty(t, errs)
	assert.Equal(t,
		"Ast.Expr { pos: _, desc: Ast.Const(Ast.Int(3)), meta: _ }",
		out.String())
}

func TestLiftPatternEscapeBindsVariable(t *testing.T) {
	out, errs := lift.Pattern(exprFragment(t, "f(%e(sub))"), testEnv())
	require.Empty(t, errs)
	rendered := out.String()
	assert.Contains(t, rendered, "sub")
	assert.NotContains(t, rendered, "%e")
	// structure fields stay matched while bookkeeping fields do not
	assert.Contains(t, rendered, "pos: _")
	assert.Contains(t, rendered, "meta: _")
}

func TestLiftPatternSequenceRejected(t *testing.T) {
	_, errs := lift.Pattern(exprFragment(t, "[1; %seq x]"), testEnv())
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorSequenceInPattern, errs[0].Code)
}

func TestLiftPatternMalformedEscapePayload(t *testing.T) {
	// a call has no pattern reading
	_, errs := lift.Pattern(exprFragment(t, "f(%e(g(1)))"), testEnv())
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorMalformedEscape, errs[0].Code)
}

func TestLiftItemsConsumesLocationAttribute(t *testing.T) {
	u, perrs := parser.ParseUnit("test.mq", `
let before = [%items
  let a = 1
  [@@loc override]
  let b = 2
]`)
	require.Empty(t, perrs)
	let := u.Items[0].(*ast.LetItem)
	quote := let.Value.(*ast.QuoteExpr)

	out, errs := lift.Expr(quote.Frag, testEnv())
	require.Empty(t, errs)
	rendered := out.String()

	// the attribute itself leaves no trace
	assert.NotContains(t, rendered, "[@@loc")
	// the first item keeps the ambient location, the second gets the override
	aPos := strings.Index(rendered, `Ast.string("a")`)
	bPos := strings.Index(rendered, `Ast.string("b")`)
	ambient := strings.Index(rendered, "Loc.current()")
	override := strings.Index(rendered, "override")
	require.True(t, aPos >= 0 && bPos >= 0 && ambient >= 0 && override >= 0, rendered)
	assert.Less(t, ambient, bPos)
	assert.Greater(t, override, aPos)
	assert.Less(t, override, bPos)
}

func TestLiftValItem(t *testing.T) {
	u, perrs := parser.ParseUnit("test.mq", `let s = [%sigitem val solution : int -> string]`)
	require.Empty(t, perrs)
	quote := u.Items[0].(*ast.LetItem).Value.(*ast.QuoteExpr)

	out, errs := lift.Expr(quote.Frag, testEnv())
	require.Empty(t, errs)
	rendered := out.String()
	assert.Contains(t, rendered, `Ast.Val(Ast.string("solution")`)
	assert.Contains(t, rendered, "Ast.Arrow(")
}

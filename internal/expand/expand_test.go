package expand_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaquot/internal/ast"
	"metaquot/internal/config"
	"metaquot/internal/errors"
	"metaquot/internal/eval"
	"metaquot/internal/expand"
	"metaquot/internal/parser"
)

func expandExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, perrs := parser.ParseExpr("test.mq", src)
	require.Empty(t, perrs, src)
	out, xerrs := expand.Expr(e, config.Default())
	require.Empty(t, xerrs, src)
	return out
}

func evalExpr(t *testing.T, e ast.Expr, env *eval.Env) eval.Value {
	t.Helper()
	v, err := eval.Eval(e, env)
	require.NoError(t, err)
	return v
}

// desc extracts the description field of a reconstructed tree value.
func desc(t *testing.T, v eval.Value) *eval.ConstructValue {
	t.Helper()
	rec, ok := v.(*eval.RecordValue)
	require.True(t, ok, "expected a tree record, got %s", v)
	d, ok := rec.Field("desc")
	require.True(t, ok)
	c, ok := d.(*eval.ConstructValue)
	require.True(t, ok)
	return c
}

func TestRoundTripInt(t *testing.T) {
	v := evalExpr(t, expandExpr(t, "[%expr 3]"), eval.NewEnv())
	d := desc(t, v)
	assert.Equal(t, "Ast.Const", d.Tag)
	require.Len(t, d.Args, 1)
	assert.Equal(t, "Ast.Int(3)", d.Args[0].String())

	rec := v.(*eval.RecordValue)
	pos, ok := rec.Field("pos")
	require.True(t, ok)
	assert.Equal(t, "Loc.Current", pos.String())
}

func TestRoundTripList(t *testing.T) {
	v := evalExpr(t, expandExpr(t, `[%expr [1; "two"]]`), eval.NewEnv())
	d := desc(t, v)
	assert.Equal(t, "Ast.List", d.Tag)
	require.Len(t, d.Args, 1)
	elems, ok := d.Args[0].(eval.ListValue)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, "Ast.Const", desc(t, elems[0]).Tag)
	assert.Equal(t, `Ast.String("two")`, desc(t, elems[1]).Args[0].String())
}

func TestRoundTripRecord(t *testing.T) {
	v := evalExpr(t, expandExpr(t, `[%expr State { count: 0, label: "n", done: f(1) }]`), eval.NewEnv())
	d := desc(t, v)
	assert.Equal(t, "Ast.Record", d.Tag)
	require.Len(t, d.Args, 2)
	assert.Equal(t, `Ast.String("State")`, d.Args[0].String())
	fields, ok := d.Args[1].(eval.ListValue)
	require.True(t, ok)
	assert.Len(t, fields, 3)
}

func TestSequenceSpliceSubstitution(t *testing.T) {
	env := eval.NewEnv()
	seven := evalExpr(t, expandExpr(t, "[%expr 7]"), env)
	eight := evalExpr(t, expandExpr(t, "[%expr 8]"), env)
	env.Bind("x", eval.ListValue{seven, eight})

	v := evalExpr(t, expandExpr(t, "[%expr [1; 2; %seq x; 3]]"), env)
	d := desc(t, v)
	require.Equal(t, "Ast.List", d.Tag)
	elems := d.Args[0].(eval.ListValue)
	require.Len(t, elems, 5)

	var got []string
	for _, elem := range elems {
		got = append(got, desc(t, elem).Args[0].String())
	}
	assert.Equal(t, []string{
		"Ast.Int(1)", "Ast.Int(2)", "Ast.Int(7)", "Ast.Int(8)", "Ast.Int(3)",
	}, got)
}

func TestExpressionEscapeSubstitution(t *testing.T) {
	env := eval.NewEnv()
	env.Bind("sub", evalExpr(t, expandExpr(t, "[%expr 42]"), env))

	v := evalExpr(t, expandExpr(t, "[%expr f(%e(sub))]"), env)
	d := desc(t, v)
	require.Equal(t, "Ast.Call", d.Tag)
	args := d.Args[1].(eval.ListValue)
	require.Len(t, args, 1)
	assert.Equal(t, "Ast.Int(42)", desc(t, args[0]).Args[0].String())
}

func TestNestedQuoteInsideEscapeExpands(t *testing.T) {
	env := eval.NewEnv()
	direct := evalExpr(t, expandExpr(t, "[%expr 1]"), env)
	nested := evalExpr(t, expandExpr(t, "[%expr %e([%expr 1])]"), env)
	assert.Equal(t, direct.String(), nested.String())
}

func TestLocationScopingAcrossUnit(t *testing.T) {
	u, perrs := parser.ParseUnit("test.mq", `
let a = [%expr 1]
[@@loc marker]
let b = [%expr 2]
`)
	require.Empty(t, perrs)
	expanded, xerrs := expand.Unit(u, config.Default())
	require.Empty(t, xerrs)
	require.Len(t, expanded.Items, 2)

	env := eval.NewEnv()
	env.Bind("marker", eval.StrValue("here"))

	aTree := evalExpr(t, expanded.Items[0].(*ast.LetItem).Value, env)
	pos, _ := aTree.(*eval.RecordValue).Field("pos")
	assert.Equal(t, "Loc.Current", pos.String())

	bTree := evalExpr(t, expanded.Items[1].(*ast.LetItem).Value, env)
	pos, _ = bTree.(*eval.RecordValue).Field("pos")
	assert.Equal(t, `"here"`, pos.String())
}

func TestLocationOverrideReachesEscapePayload(t *testing.T) {
	// a quotation nested inside an escape payload is stamped with the
	// override in force at the escape, not the ambient default
	out := expandExpr(t, `[%items
  [@@loc over]
  let a = %e([%expr 1])
]`)
	rendered := out.String()
	assert.Contains(t, rendered, "pos: over")
	assert.NotContains(t, rendered, "Loc.current()")
}

func TestLocationRestoredAfterQuotedScope(t *testing.T) {
	u, perrs := parser.ParseUnit("test.mq", `
let a = [%items
  [@@loc over]
  let inner = 1
]
let b = [%expr 2]
`)
	require.Empty(t, perrs)
	expanded, xerrs := expand.Unit(u, config.Default())
	require.Empty(t, xerrs)
	require.Len(t, expanded.Items, 2)

	// the override applies inside the quoted sequence only
	assert.Contains(t, expanded.Items[0].(*ast.LetItem).Value.String(), "pos: over")

	// once the quote closes, the ambient default is back in scope
	bRendered := expanded.Items[1].(*ast.LetItem).Value.String()
	assert.Contains(t, bRendered, "pos: Loc.current()")
	assert.NotContains(t, bRendered, "over")
}

func TestPatternModeMatchesReconstruction(t *testing.T) {
	// the same fragment lifted in both modes must agree, whatever location
	// the reconstruction was stamped with
	u, perrs := parser.ParseUnit("test.mq", `
[@@loc elsewhere]
let [%expr f(%e(sub))] = tree
`)
	require.Empty(t, perrs)
	expanded, xerrs := expand.Unit(u, config.Default())
	require.Empty(t, xerrs)

	env := eval.NewEnv()
	inner := evalExpr(t, expandExpr(t, "[%expr 42]"), env)
	env.Bind("sub", inner)
	value := evalExpr(t, expandExpr(t, "[%expr f(%e(sub))]"), env)

	binding := expanded.Items[0].(*ast.LetItem).Binding
	binds, ok := eval.Match(binding, value)
	require.True(t, ok, "pattern %s should match %s", binding, value)
	assert.Equal(t, inner.String(), binds["sub"].String())
}

func TestReifySignature(t *testing.T) {
	out := expandExpr(t, "[%funty int -> string -> bool -> unit]")
	rendered := out.String()

	assert.Equal(t, 2, strings.Count(rendered, "Ty.arg("))
	assert.Equal(t, 1, strings.Count(rendered, "Ty.last("))
	// the correlation annotation carries the original arrow, its uncurried
	// form and the return type
	assert.Contains(t, rendered, "Ty.fn<int -> string -> bool -> unit, int -> string -> bool -> unit, unit>")

	annot, ok := out.(*ast.AnnotExpr)
	require.True(t, ok)
	named, ok := annot.Type.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "Ty.fn", named.Name.String())
	require.Len(t, named.Args, 3)
}

func TestReifyUncurriedFormDiffersFromReturn(t *testing.T) {
	out := expandExpr(t, "[%funty int -> bool]")
	annot := out.(*ast.AnnotExpr)
	named := annot.Type.(*ast.NamedType)
	assert.Equal(t, "int -> bool", named.Args[0].String())
	assert.Equal(t, "int -> unit", named.Args[1].String())
	assert.Equal(t, "bool", named.Args[2].String())
}

func TestReifyRejectsNonArrow(t *testing.T) {
	e, perrs := parser.ParseExpr("test.mq", "[%funty int]")
	require.Empty(t, perrs)
	_, xerrs := expand.Expr(e, config.Default())
	require.Len(t, xerrs, 1)
	assert.Equal(t, errors.ErrorArrowExpected, xerrs[0].Code)
	assert.Contains(t, xerrs[0].Message, "arrow type expected")
}

func TestTypeReprWrapper(t *testing.T) {
	out := expandExpr(t, "[%ty list<int>]")
	rendered := out.String()
	assert.Contains(t, rendered, "Ty.repr(")
	assert.Contains(t, rendered, ": Ty.repr<list<int>>")
	assert.Contains(t, rendered, `Ast.Named(Ast.string("list")`)
}

func TestPrintableKeepsSourceText(t *testing.T) {
	out := expandExpr(t, "[%printable f(x)]")
	rec, ok := out.(*ast.RecordExpr)
	require.True(t, ok)
	assert.Equal(t, "Printable", rec.Type.String())
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "value", rec.Fields[0].Name)
	assert.Equal(t, "f(x)", rec.Fields[0].Value.String())
	assert.Equal(t, "text", rec.Fields[1].Name)
	assert.Equal(t, `"f(x)"`, rec.Fields[1].Value.String())
}

func TestCodeTriple(t *testing.T) {
	out := expandExpr(t, "[%code solution(5)]")
	tuple, ok := out.(*ast.TupleExpr)
	require.True(t, ok)
	require.Len(t, tuple.Elems, 3)

	ref, ok := tuple.Elems[0].(*ast.OpenExpr)
	require.True(t, ok)
	assert.Equal(t, "Reference", ref.Namespace.String())
	sub, ok := tuple.Elems[1].(*ast.OpenExpr)
	require.True(t, ok)
	assert.Equal(t, "Submission", sub.Namespace.String())
	assert.Contains(t, tuple.Elems[2].String(), `Ast.Call(Ast.string("solution")`)
}

func TestEscapeOutsideQuotationRejected(t *testing.T) {
	e, perrs := parser.ParseExpr("test.mq", "f(%e(x))")
	require.Empty(t, perrs)
	_, xerrs := expand.Expr(e, config.Default())
	require.Len(t, xerrs, 1)
	assert.Equal(t, errors.ErrorUnknownMarker, xerrs[0].Code)
}

func TestFailedUnitKeepsDiagnosticsOnly(t *testing.T) {
	u, perrs := parser.ParseUnit("test.mq", `
let ok = [%expr 1]
let bad = [%funty int]
`)
	require.Empty(t, perrs)
	_, xerrs := expand.Unit(u, config.Default())
	require.Len(t, xerrs, 1)
	assert.Equal(t, errors.ErrorArrowExpected, xerrs[0].Code)
}

func TestManifestNamesFlowThrough(t *testing.T) {
	names := config.Default()
	names.AstModule = "Tree"
	names.Append = "List.concat"
	names.DefaultLocation = "Here.now"

	e, perrs := parser.ParseExpr("test.mq", "[%expr [1; %seq x]]")
	require.Empty(t, perrs)
	out, xerrs := expand.Expr(e, names)
	require.Empty(t, xerrs)
	rendered := out.String()
	assert.Contains(t, rendered, "Tree.Expr {")
	assert.Contains(t, rendered, "List.concat(")
	assert.Contains(t, rendered, "Here.now()")
	assert.NotContains(t, rendered, "Ast.")
}

package parser

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"metaquot/grammar"
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

func (c *converter) lit(g *grammar.Lit) ast.Lit {
	switch {
	case g.Int != nil:
		return c.intLit(g)
	case g.Str != nil:
		s, err := strconv.Unquote(*g.Str)
		if err != nil {
			c.report(errors.New(errors.ErrorSyntax, pos(g.Pos), "malformed string literal %s", *g.Str))
			return ast.StringLit("")
		}
		return ast.StringLit(s)
	default:
		return c.charLit(g)
	}
}

// intLit parses an integer literal, honoring the width suffix: none for the
// default int, "l" for int32, "L" for int64, "n" for the native width.
// Narrower widths go through safecast so overflow is a diagnostic rather than
// a silent wrap.
func (c *converter) intLit(g *grammar.Lit) ast.Lit {
	text := *g.Int
	kind := ast.LitInt
	switch {
	case strings.HasSuffix(text, "l"):
		kind = ast.LitInt32
		text = strings.TrimSuffix(text, "l")
	case strings.HasSuffix(text, "L"):
		kind = ast.LitInt64
		text = strings.TrimSuffix(text, "L")
	case strings.HasSuffix(text, "n"):
		kind = ast.LitNative
		text = strings.TrimSuffix(text, "n")
	}

	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		c.report(errors.New(errors.ErrorLiteralOverflow, pos(g.Pos),
			"integer literal %s does not fit 64 bits", *g.Int))
		return ast.Lit{Kind: kind}
	}
	if kind == ast.LitInt32 {
		if _, err := safecast.Conv[int32](v); err != nil {
			c.report(errors.New(errors.ErrorLiteralOverflow, pos(g.Pos),
				"integer literal %s does not fit 32 bits", *g.Int).
				WithHelp("use the L suffix for a 64-bit literal"))
			return ast.Lit{Kind: kind}
		}
	}
	return ast.Lit{Kind: kind, Int: v}
}

func (c *converter) charLit(g *grammar.Lit) ast.Lit {
	r, _, _, err := strconv.UnquoteChar(strings.Trim(*g.Char, "'"), '\'')
	if err != nil {
		c.report(errors.New(errors.ErrorBadCharLiteral, pos(g.Pos),
			"malformed char literal %s", *g.Char))
		return ast.Lit{Kind: ast.LitChar}
	}
	return ast.Lit{Kind: ast.LitChar, Char: r}
}

// Package parser lowers the participle parse tree from grammar into the
// internal AST, checking literal widths along the way.
package parser

import (
	"github.com/alecthomas/participle/v2"

	"metaquot/grammar"
	"metaquot/internal/ast"
	"metaquot/internal/errors"
)

// ParseUnit parses and lowers a whole compilation unit.
func ParseUnit(filename, source string) (*ast.Unit, []errors.CompilerError) {
	g, err := grammar.ParseUnit(filename, source)
	if err != nil {
		return nil, []errors.CompilerError{syntaxError(err)}
	}
	c := &converter{}
	unit := &ast.Unit{Items: c.items(g.Items)}
	return unit, c.errs
}

// ParseExpr parses and lowers a standalone expression fragment.
func ParseExpr(filename, source string) (ast.Expr, []errors.CompilerError) {
	g, err := grammar.ParseExpr(filename, source)
	if err != nil {
		return nil, []errors.CompilerError{syntaxError(err)}
	}
	c := &converter{}
	e := c.expr(g)
	return e, c.errs
}

// ParsePattern parses and lowers a standalone pattern fragment.
func ParsePattern(filename, source string) (ast.Pattern, []errors.CompilerError) {
	g, err := grammar.ParsePattern(filename, source)
	if err != nil {
		return nil, []errors.CompilerError{syntaxError(err)}
	}
	c := &converter{}
	p := c.pattern(g)
	return p, c.errs
}

// ParseType parses and lowers a standalone type fragment.
func ParseType(filename, source string) (ast.Type, []errors.CompilerError) {
	g, err := grammar.ParseType(filename, source)
	if err != nil {
		return nil, []errors.CompilerError{syntaxError(err)}
	}
	c := &converter{}
	t := c.typ(g)
	return t, c.errs
}

func syntaxError(err error) errors.CompilerError {
	if pe, ok := err.(participle.Error); ok {
		p := pe.Position()
		pos := ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
		return errors.New(errors.ErrorSyntax, pos, "%s", pe.Message())
	}
	return errors.New(errors.ErrorSyntax, ast.Position{}, "%s", err.Error())
}

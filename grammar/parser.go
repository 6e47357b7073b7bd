package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

func buildOptions() []participle.Option {
	return []participle.Option{
		participle.Lexer(FragmentLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	}
}

var (
	unitParser    = mustBuild[Unit]()
	exprParser    = mustBuild[Expr]()
	patternParser = mustBuild[Pattern]()
	typeParser    = mustBuild[Type]()
)

func mustBuild[G any]() *participle.Parser[G] {
	p, err := participle.Build[G](buildOptions()...)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}
	return p
}

// ParseUnit parses a whole compilation unit.
func ParseUnit(sourceName, source string) (*Unit, error) {
	return unitParser.ParseString(sourceName, source)
}

// ParseExpr parses a standalone expression fragment.
func ParseExpr(sourceName, source string) (*Expr, error) {
	return exprParser.ParseString(sourceName, source)
}

// ParsePattern parses a standalone pattern fragment.
func ParsePattern(sourceName, source string) (*Pattern, error) {
	return patternParser.ParseString(sourceName, source)
}

// ParseType parses a standalone type fragment.
func ParseType(sourceName, source string) (*Type, error) {
	return typeParser.ParseString(sourceName, source)
}

package eval

import (
	"fmt"

	"metaquot/internal/ast"
)

// The builtin namespaces mirror the harness runtime the generated code
// calls into: tree-leaf constructors and metadata under Ast, list
// concatenation under Stdlib, the default location holder under Loc, and
// the descriptor combinators under Ty.

func registerBuiltins(env *Env) {
	env.BindNamespace("Ast", map[string]Value{
		"int":       leafBuiltin("Ast.int", "Ast.Int", ast.LitInt),
		"int32":     leafBuiltin("Ast.int32", "Ast.Int32", ast.LitInt32),
		"int64":     leafBuiltin("Ast.int64", "Ast.Int64", ast.LitInt64),
		"nativeint": leafBuiltin("Ast.nativeint", "Ast.Nativeint", ast.LitNative),
		"string":    wrapBuiltin("Ast.string", "Ast.String"),
		"char":      wrapBuiltin("Ast.char", "Ast.Char"),
		"meta": &BuiltinValue{Name: "Ast.meta", Fn: func(args []Value) (Value, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("Ast.meta takes no arguments")
			}
			return &ConstructValue{Tag: "Ast.Meta"}, nil
		}},
	})

	env.BindNamespace("Stdlib", map[string]Value{
		"append": &BuiltinValue{Name: "Stdlib.append", Fn: func(args []Value) (Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("Stdlib.append expects 2 arguments, got %d", len(args))
			}
			a, aok := args[0].(ListValue)
			b, bok := args[1].(ListValue)
			if !aok || !bok {
				return nil, fmt.Errorf("Stdlib.append expects two lists")
			}
			out := make(ListValue, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out, nil
		}},
	})

	env.BindNamespace("Loc", map[string]Value{
		"current": &BuiltinValue{Name: "Loc.current", Fn: func(args []Value) (Value, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("Loc.current takes no arguments")
			}
			return &ConstructValue{Tag: "Loc.Current"}, nil
		}},
	})

	env.BindNamespace("Ty", map[string]Value{
		"repr": wrapTagged("Ty.repr", "Ty.Repr", 1),
		"arg":  wrapTagged("Ty.arg", "Ty.Arg", 2),
		"last": wrapTagged("Ty.last", "Ty.Last", 2),
	})
}

// leafBuiltin wraps an integer of one width into its leaf constructor.
func leafBuiltin(name, tag string, kind ast.LitKind) *BuiltinValue {
	return &BuiltinValue{Name: name, Fn: func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		iv, ok := args[0].(IntValue)
		if !ok || iv.Kind != kind {
			return nil, fmt.Errorf("%s expects a %s literal, got %s", name, kind, args[0])
		}
		return &ConstructValue{Tag: tag, Args: []Value{iv}}, nil
	}}
}

// wrapBuiltin wraps a single value into a leaf constructor without a width
// check, for string and char leaves.
func wrapBuiltin(name, tag string) *BuiltinValue {
	return wrapTagged(name, tag, 1)
}

func wrapTagged(name, tag string, arity int) *BuiltinValue {
	return &BuiltinValue{Name: name, Fn: func(args []Value) (Value, error) {
		if len(args) != arity {
			return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, arity, len(args))
		}
		return &ConstructValue{Tag: tag, Args: args}, nil
	}}
}

package eval

import (
	"fmt"
	"strings"

	"metaquot/internal/ast"
)

// Env resolves names during evaluation: direct bindings, builtin and
// user-registered namespaces, and the namespaces currently opened.
type Env struct {
	vars   map[string]Value
	spaces map[string]map[string]Value
	opened []string // innermost last
}

// NewEnv returns an environment with the builtin harness namespaces
// registered.
func NewEnv() *Env {
	env := &Env{
		vars:   map[string]Value{},
		spaces: map[string]map[string]Value{},
	}
	registerBuiltins(env)
	return env
}

// Bind registers a variable.
func (e *Env) Bind(name string, v Value) {
	e.vars[name] = v
}

// BindNamespace registers or extends a namespace.
func (e *Env) BindNamespace(name string, defs map[string]Value) {
	space := e.spaces[name]
	if space == nil {
		space = map[string]Value{}
		e.spaces[name] = space
	}
	for k, v := range defs {
		space[k] = v
	}
}

// open returns a copy of the environment with one more namespace opened.
func (e *Env) open(ns string) *Env {
	opened := make([]string, 0, len(e.opened)+1)
	opened = append(opened, e.opened...)
	opened = append(opened, ns)
	return &Env{vars: e.vars, spaces: e.spaces, opened: opened}
}

func (e *Env) lookup(p ast.Path) (Value, error) {
	if len(p.Parts) == 1 {
		name := p.Parts[0]
		if v, ok := e.vars[name]; ok {
			return v, nil
		}
		for i := len(e.opened) - 1; i >= 0; i-- {
			if space, ok := e.spaces[e.opened[i]]; ok {
				if v, ok := space[name]; ok {
					return v, nil
				}
			}
		}
		return nil, fmt.Errorf("unbound name %q", name)
	}
	ns := strings.Join(p.Parts[:len(p.Parts)-1], ".")
	space, ok := e.spaces[ns]
	if !ok {
		return nil, fmt.Errorf("unknown namespace %q", ns)
	}
	v, ok := space[p.Last()]
	if !ok {
		return nil, fmt.Errorf("namespace %q has no member %q", ns, p.Last())
	}
	return v, nil
}

// Eval evaluates an expanded expression. Markers surviving into evaluation
// are an error: expansion must run first.
func Eval(e ast.Expr, env *Env) (Value, error) {
	switch e := e.(type) {
	case *ast.LitExpr:
		return litValue(e.Value), nil
	case *ast.PathExpr:
		return env.lookup(e.Path)
	case *ast.ConstructExpr:
		args, err := evalAll(e.Args, env)
		if err != nil {
			return nil, err
		}
		return &ConstructValue{Tag: e.Tag.String(), Args: args}, nil
	case *ast.CallExpr:
		callee, err := env.lookup(e.Callee)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(*BuiltinValue)
		if !ok {
			return nil, fmt.Errorf("%s is not callable", e.Callee.String())
		}
		args, err := evalAll(e.Args, env)
		if err != nil {
			return nil, err
		}
		return fn.Fn(args)
	case *ast.RecordExpr:
		fields := make([]RecordFieldValue, 0, len(e.Fields))
		for _, f := range e.Fields {
			v, err := Eval(f.Value, env)
			if err != nil {
				return nil, err
			}
			fields = append(fields, RecordFieldValue{Name: f.Name, Value: v})
		}
		return &RecordValue{Type: e.Type.String(), Fields: fields}, nil
	case *ast.ListExpr:
		elems, err := evalAll(e.Elems, env)
		if err != nil {
			return nil, err
		}
		return ListValue(elems), nil
	case *ast.TupleExpr:
		elems, err := evalAll(e.Elems, env)
		if err != nil {
			return nil, err
		}
		return TupleValue(elems), nil
	case *ast.ParenExpr:
		return Eval(e.Value, env)
	case *ast.AnnotExpr:
		// annotations constrain the host typechecker, not evaluation
		return Eval(e.Value, env)
	case *ast.OpenExpr:
		return Eval(e.Body, env.open(e.Namespace.String()))
	default:
		return nil, fmt.Errorf("unexpanded marker %s cannot be evaluated", e.String())
	}
}

func evalAll(exprs []ast.Expr, env *Env) ([]Value, error) {
	out := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func litValue(l ast.Lit) Value {
	switch l.Kind {
	case ast.LitString:
		return StrValue(l.Str)
	case ast.LitChar:
		return CharValue(l.Char)
	default:
		return IntValue{Kind: l.Kind, Val: l.Int}
	}
}

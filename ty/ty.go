// Package ty is the runtime side of signature reification: descriptors built
// by the generated arg/last layers, and a reflection check that a descriptor
// matches a real curried Go function. The generated code pins argument and
// return types through its correlation annotation; Check is the runtime
// counterpart for embedders that load functions dynamically.
package ty

import (
	"fmt"
	"reflect"
	"strings"
)

// Repr is the runtime representation of one host type: its rendered text and
// the Go carrier type, when one is known.
type Repr struct {
	Text string
	Go   reflect.Type
}

// ReprOf builds a representation carrying T as the Go carrier.
func ReprOf[T any](text string) Repr {
	return Repr{Text: text, Go: reflect.TypeOf((*T)(nil)).Elem()}
}

// FunTy describes a function signature layer by layer: one argument layer
// per leading parameter and a final layer pairing the last parameter with
// the return type. A descriptor for a type with n arrows always has n-1
// argument layers and one final layer.
type FunTy struct {
	arg  Repr
	rest *FunTy // nil on the final layer
	ret  Repr   // set on the final layer only
}

// Arg prepends a parameter layer to a descriptor.
func Arg(a Repr, rest *FunTy) *FunTy {
	return &FunTy{arg: a, rest: rest}
}

// Last builds the final layer from the last parameter and the return type.
func Last(a, ret Repr) *FunTy {
	return &FunTy{arg: a, ret: ret}
}

// Arity returns the number of parameters the descriptor spine covers.
func (f *FunTy) Arity() int {
	n := 0
	for layer := f; layer != nil; layer = layer.rest {
		n++
	}
	return n
}

// Args returns the parameter representations in order.
func (f *FunTy) Args() []Repr {
	var out []Repr
	for layer := f; layer != nil; layer = layer.rest {
		out = append(out, layer.arg)
	}
	return out
}

// Ret returns the return-type representation.
func (f *FunTy) Ret() Repr {
	layer := f
	for layer.rest != nil {
		layer = layer.rest
	}
	return layer.ret
}

func (f *FunTy) String() string {
	var b strings.Builder
	for layer := f; layer != nil; layer = layer.rest {
		b.WriteString(layer.arg.Text)
		b.WriteString(" -> ")
		if layer.rest == nil {
			b.WriteString(layer.ret.Text)
		}
	}
	return b.String()
}

// Check validates a curried Go function against the descriptor: fn must be a
// chain of single-parameter functions, one per layer, whose parameter and
// return types match the layer carriers. Layers without a Go carrier only
// constrain the chain's shape.
func (f *FunTy) Check(fn any) error {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return fmt.Errorf("descriptor %s: not a function: %T", f, fn)
	}
	depth := 0
	for layer := f; layer != nil; layer = layer.rest {
		if t.Kind() != reflect.Func {
			return fmt.Errorf("descriptor %s: arity mismatch: function ends after %d of %d parameters",
				f, depth, f.Arity())
		}
		if t.NumIn() != 1 || t.NumOut() != 1 {
			return fmt.Errorf("descriptor %s: parameter %d: expected a single-parameter curried step, found %s",
				f, depth+1, t)
		}
		if layer.arg.Go != nil && t.In(0) != layer.arg.Go {
			return fmt.Errorf("descriptor %s: parameter %d: expected %s (%s), found %s",
				f, depth+1, layer.arg.Text, layer.arg.Go, t.In(0))
		}
		t = t.Out(0)
		depth++
	}
	ret := f.Ret()
	if t.Kind() == reflect.Func {
		return fmt.Errorf("descriptor %s: arity mismatch: function takes more than %d parameters",
			f, f.Arity())
	}
	if ret.Go != nil && t != ret.Go {
		return fmt.Errorf("descriptor %s: return type: expected %s (%s), found %s",
			f, ret.Text, ret.Go, t)
	}
	return nil
}

// MustCheck is Check for wiring code that cannot proceed past a mismatch.
func (f *FunTy) MustCheck(fn any) {
	if err := f.Check(fn); err != nil {
		panic(err)
	}
}

package eval

import "metaquot/internal/ast"

// Binds is the variable environment a successful match produces.
type Binds map[string]Value

// Match matches a value against an expanded pattern, returning the bindings
// on success. Wildcards match anything, which is how lifted patterns ignore
// location and metadata fields.
func Match(p ast.Pattern, v Value) (Binds, bool) {
	binds := Binds{}
	if !match(p, v, binds) {
		return nil, false
	}
	return binds, true
}

func match(p ast.Pattern, v Value, binds Binds) bool {
	switch p := p.(type) {
	case *ast.WildcardPat:
		return true
	case *ast.VarPat:
		binds[p.Name] = v
		return true
	case *ast.LitPat:
		switch want := litValue(p.Value).(type) {
		case IntValue:
			got, ok := v.(IntValue)
			return ok && got == want
		case StrValue:
			got, ok := v.(StrValue)
			return ok && got == want
		default:
			got, ok := v.(CharValue)
			return ok && got == want.(CharValue)
		}
	case *ast.ConstructPat:
		cv, ok := v.(*ConstructValue)
		if !ok || cv.Tag != p.Tag.String() || len(cv.Args) != len(p.Args) {
			return false
		}
		for i, arg := range p.Args {
			if !match(arg, cv.Args[i], binds) {
				return false
			}
		}
		return true
	case *ast.ListPat:
		lv, ok := v.(ListValue)
		if !ok || len(lv) != len(p.Elems) {
			return false
		}
		for i, elem := range p.Elems {
			if !match(elem, lv[i], binds) {
				return false
			}
		}
		return true
	case *ast.TuplePat:
		tv, ok := v.(TupleValue)
		if !ok || len(tv) != len(p.Elems) {
			return false
		}
		for i, elem := range p.Elems {
			if !match(elem, tv[i], binds) {
				return false
			}
		}
		return true
	case *ast.RecordPat:
		rv, ok := v.(*RecordValue)
		if !ok || rv.Type != p.Type.String() {
			return false
		}
		for _, f := range p.Fields {
			fv, ok := rv.Field(f.Name)
			if !ok || !match(f.Value, fv, binds) {
				return false
			}
		}
		return true
	default:
		// quote and escape patterns must be expanded before matching
		return false
	}
}

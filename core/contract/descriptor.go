package contract

import "reflect"

// Param declares one parameter of a guarded operation: its name, whether a
// caller must supply it, and the value used when an optional parameter is
// omitted. Optional parameters without an explicit default resolve to nil.
type Param struct {
	Name     string
	Required bool
	Default  any
}

// Descriptor is the declared call shape of one operation: a stable name and
// an ordered parameter list. Descriptors are immutable once declared and are
// resolved once per call into a Bundle.
type Descriptor struct {
	Op     string
	Params []Param
}

// Bind resolves positional and keyword arguments against the declared
// parameter list, applying defaults for omitted optional parameters.
// It fails with an arity-class Violation when required parameters are
// missing, unexpected names are supplied, positionals overflow the
// declaration, or the same parameter arrives both ways.
func (d Descriptor) Bind(args []any, kwargs map[string]any) (Bundle, error) {
	if len(args) > len(d.Params) {
		return nil, &Violation{
			Kind:    KindArity,
			Op:      d.Op,
			Message: "too many positional arguments",
		}
	}

	b := make(Bundle, len(d.Params))
	for i, v := range args {
		b[d.Params[i].Name] = v
	}

	for name, v := range kwargs {
		p := d.param(name)
		if p == nil {
			return nil, &Violation{
				Kind:    KindArity,
				Op:      d.Op,
				Param:   name,
				Message: "unexpected parameter",
			}
		}
		if _, dup := b[name]; dup {
			return nil, &Violation{
				Kind:    KindArity,
				Op:      d.Op,
				Param:   name,
				Message: "supplied both positionally and by name",
			}
		}
		b[name] = v
	}

	for _, p := range d.Params {
		if _, ok := b[p.Name]; ok {
			continue
		}
		if p.Required {
			return nil, &Violation{
				Kind:    KindArity,
				Op:      d.Op,
				Param:   p.Name,
				Message: "required parameter is missing",
			}
		}
		b[p.Name] = p.Default
	}

	return b, nil
}

func (d Descriptor) param(name string) *Param {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}

// Bundle is the resolved mapping from parameter name to supplied or
// defaulted value for a single call. It is created once per call, consumed
// by exactly one contract, and never escapes the invocation.
type Bundle map[string]any

// Value returns the raw value bound to name, or nil when absent.
func (b Bundle) Value(name string) any {
	return b[name]
}

// Set rewrites a bound value. Contracts may only call it for the two
// sanctioned normalizations: scalar-to-sequence coercion and write-back of
// defaults that depend on other parameters.
func (b Bundle) Set(name string, v any) {
	b[name] = v
}

// IsNil reports whether the value bound to name is absent, a nil interface,
// or a typed nil (slice, map, pointer, or func). Optional parameters left at
// their zero default satisfy IsNil.
func (b Bundle) IsNil(name string) bool {
	v, ok := b[name]
	if !ok || v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// String returns the value bound to name as a string. It must only be
// called after the contract has established the value's type.
func (b Bundle) String(name string) string {
	s, _ := b[name].(string)
	return s
}

// Bool returns the value bound to name as a bool.
func (b Bundle) Bool(name string) bool {
	v, _ := b[name].(bool)
	return v
}

// Int returns the value bound to name as an int, converting from any
// integer kind.
func (b Bundle) Int(name string) int {
	n, _ := intValue(b[name])
	return int(n)
}

// StringSlice returns the value bound to name as a []string.
func (b Bundle) StringSlice(name string) []string {
	v, _ := b[name].([]string)
	return v
}

// IntSlice returns the value bound to name as a []int.
func (b Bundle) IntSlice(name string) []int {
	v, _ := b[name].([]int)
	return v
}

// intValue reports v as an int64 when v is any integer kind.
func intValue(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), true
	case reflect.Uint64:
		u := rv.Uint()
		if u > 1<<62 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

package domain

import (
	"maps"
	"slices"
)

// Value is a node of a decoded response tree: the shape of inbound server payloads and of
// reconstructed results handed back to consumers.
//
// The set of implementations is closed: Bool, String, Int, Float, Enum, Null, List and Object.
type Value interface {
	isValue()
}

// Bool is a boolean leaf.
type Bool bool

// String is a string leaf. ID scalars are carried as String.
type String string

// Int is an integral number leaf.
type Int int64

// Float is a floating point number leaf.
type Float float64

// Enum is an enum leaf carrying the enum value name.
type Enum string

// Null is the explicit null leaf.
type Null struct{}

// List is an ordered list of values.
type List []Value

// Object maps response keys (aliases when present) to values.
type Object map[string]Value

func (Bool) isValue()   {}
func (String) isValue() {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (Enum) isValue()   {}
func (Null) isValue()   {}
func (List) isValue()   {}
func (Object) isValue() {}

// EqualValues reports whether two value trees are structurally equal.
// A nil Value is only equal to another nil Value.
func EqualValues(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !EqualValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !EqualValues(v, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Keys returns the object's response keys in sorted order.
func (o Object) Keys() []string {
	return slices.Sorted(maps.Keys(o))
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v Value) Value {
	switch tv := v.(type) {
	case Object:
		return tv.Clone()
	case List:
		out := make(List, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

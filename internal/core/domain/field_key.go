package domain

import (
	"strconv"
	"strings"
)

// TypenameField is the declared name of the introspection field carrying an object's concrete type.
const TypenameField = "__typename"

// IDField is the declared name of the identifying field of cacheable objects.
const IDField = "id"

// Arguments are the call arguments of a field, keyed by argument name.
type Arguments map[string]Value

// FieldKey identifies one field slot of a stored entity: the declared field name plus its
// canonicalized arguments. Argument order never affects equality.
type FieldKey struct {
	name InternedString
	args InternedString
}

// NewFieldKey builds the key of the named field called with args.
func NewFieldKey(name string, args Arguments) FieldKey {
	k := FieldKey{name: NewInternedString(name)}
	if len(args) > 0 {
		k.args = NewInternedString(canonicalArguments(args))
	}
	return k
}

// Name returns the declared field name.
func (k FieldKey) Name() string {
	return k.name.String()
}

// HasArguments reports whether the field was called with arguments.
func (k FieldKey) HasArguments() bool {
	return !k.args.IsZero()
}

// String renders the key as name or name(arg:value,...).
func (k FieldKey) String() string {
	if !k.HasArguments() {
		return k.name.String()
	}
	return k.name.String() + "(" + k.args.String() + ")"
}

// Compare orders keys by name, then by canonical arguments.
func (k FieldKey) Compare(other FieldKey) int {
	if c := k.name.Compare(other.name); c != 0 {
		return c
	}
	return k.args.Compare(other.args)
}

// MarshalText implements encoding.TextMarshaler.
func (k FieldKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func canonicalArguments(args Arguments) string {
	var b strings.Builder
	writeCanonicalObject(&b, Object(args))
	s := b.String()
	// Drop the enclosing braces, the parentheses in String take their place.
	return s[1 : len(s)-1]
}

func writeCanonicalObject(b *strings.Builder, o Object) {
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte(':')
		writeCanonical(b, o[k])
	}
	b.WriteByte('}')
}

func writeCanonical(b *strings.Builder, v Value) {
	switch tv := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Bool:
		b.WriteString(strconv.FormatBool(bool(tv)))
	case String:
		b.WriteString(strconv.Quote(string(tv)))
	case Int:
		b.WriteString(strconv.FormatInt(int64(tv), 10))
	case Float:
		s := strconv.FormatFloat(float64(tv), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnI") {
			s += ".0"
		}
		b.WriteString(s)
	case Enum:
		b.WriteString(string(tv))
	case List:
		b.WriteByte('[')
		for i, e := range tv {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, e)
		}
		b.WriteByte(']')
	case Object:
		writeCanonicalObject(b, tv)
	}
}

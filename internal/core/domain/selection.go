package domain

import (
	"encoding/binary"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Field is one selected field as declared by the query layer.
type Field struct {
	// Alias is the response key; empty means the response key is Name.
	Alias string
	// Name is the declared field name.
	Name string
	// Arguments are the call arguments, part of the field's storage identity.
	Arguments Arguments
	// ID marks a field whose declared type is the ID scalar.
	ID bool
	// Selection is the nested selection of a composite field, nil for leaves.
	Selection *Selection
}

// Leaf selects a scalar or enum field.
func Leaf(name string) Field {
	return Field{Name: name}
}

// IDLeaf selects the ID-typed id field.
func IDLeaf() Field {
	return Field{Name: IDField, ID: true}
}

// TypenameLeaf selects __typename.
func TypenameLeaf() Field {
	return Field{Name: TypenameField}
}

// Nested selects a composite field with the given sub-selection.
func Nested(name string, sel *Selection) Field {
	return Field{Name: name, Selection: sel}
}

// As returns a copy of f answering under the given response key.
func (f Field) As(alias string) Field {
	f.Alias = alias
	return f
}

// With returns a copy of f called with args.
func (f Field) With(args Arguments) Field {
	f.Arguments = args
	return f
}

// OutputKey returns the key the field occupies in a response object.
func (f Field) OutputKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// SelectedField is a Field resolved for storage: its response key and its FieldKey.
type SelectedField struct {
	Field
	Key FieldKey
}

// FieldSet maps response keys to the fields selected under them.
type FieldSet map[string]SelectedField

// Selection describes which fields a query requested of one object: base fields that apply to
// every concrete type, plus fields that only apply when the object's __typename matches.
// A Selection is immutable once built and safe for concurrent use.
type Selection struct {
	base        FieldSet
	conditional map[string]FieldSet
	resolved    map[string]FieldSet
	fingerprint uint64
}

// NewSelection builds a selection from its unconditional fields.
// A later field with the same response key replaces an earlier one.
func NewSelection(fields ...Field) *Selection {
	s := &Selection{base: makeFieldSet(nil, fields)}
	s.seal()
	return s
}

// On returns a copy of s that additionally selects fields when the object's concrete
// typename is typename. Repeated calls for the same typename accumulate.
func (s *Selection) On(typename string, fields ...Field) *Selection {
	out := &Selection{
		base:        s.base,
		conditional: make(map[string]FieldSet, len(s.conditional)+1),
	}
	for tn, set := range s.conditional {
		out.conditional[tn] = set
	}
	out.conditional[typename] = makeFieldSet(out.conditional[typename], fields)
	out.seal()
	return out
}

// Base returns the unconditional fields. The result must not be modified.
func (s *Selection) Base() FieldSet {
	return s.base
}

// Conditional returns the fields selected only for typename, nil when there are none.
// The result must not be modified.
func (s *Selection) Conditional(typename string) FieldSet {
	return s.conditional[typename]
}

// Typenames returns the typenames carrying conditional fields, sorted.
func (s *Selection) Typenames() []string {
	return slices.Sorted(maps.Keys(s.conditional))
}

// HasConditional reports whether any field depends on the concrete typename.
func (s *Selection) HasConditional() bool {
	return len(s.conditional) > 0
}

// FieldsFor resolves the fields that apply to an object of the given concrete typename: the
// base fields plus the typename's conditional fields, which win on a shared response key.
// An empty typename resolves to the base fields. The result must not be modified.
func (s *Selection) FieldsFor(typename string) FieldSet {
	if set, ok := s.resolved[typename]; ok {
		return set
	}
	return s.base
}

// Fingerprint returns a 64-bit hash of the selection's structure. Equal selections share a
// fingerprint; use Equal to rule out collisions.
func (s *Selection) Fingerprint() uint64 {
	return s.fingerprint
}

// Equal reports whether two selections select the same fields in the same way.
func (s *Selection) Equal(other *Selection) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || s.fingerprint != other.fingerprint {
		return false
	}
	if !s.base.equal(other.base) || len(s.conditional) != len(other.conditional) {
		return false
	}
	for tn, set := range s.conditional {
		if !set.equal(other.conditional[tn]) {
			return false
		}
	}
	return true
}

func (fs FieldSet) equal(other FieldSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for k, f := range fs {
		o, ok := other[k]
		if !ok || f.Key != o.Key || f.Name != o.Name || f.ID != o.ID || !f.Selection.Equal(o.Selection) {
			return false
		}
	}
	return true
}

func makeFieldSet(into FieldSet, fields []Field) FieldSet {
	out := make(FieldSet, len(into)+len(fields))
	maps.Copy(out, into)
	for _, f := range fields {
		out[f.OutputKey()] = SelectedField{
			Field: f,
			Key:   NewFieldKey(f.Name, f.Arguments),
		}
	}
	return out
}

func (s *Selection) seal() {
	s.resolved = make(map[string]FieldSet, len(s.conditional))
	for tn, cond := range s.conditional {
		set := make(FieldSet, len(s.base)+len(cond))
		maps.Copy(set, s.base)
		maps.Copy(set, cond)
		s.resolved[tn] = set
	}

	d := xxhash.New()
	writeFieldSet(d, s.base)
	for _, tn := range s.Typenames() {
		_, _ = d.WriteString("...on " + tn)
		writeFieldSet(d, s.conditional[tn])
	}
	s.fingerprint = d.Sum64()
}

func writeFieldSet(d *xxhash.Digest, fs FieldSet) {
	var buf [8]byte
	_, _ = d.WriteString("{")
	for _, k := range slices.Sorted(maps.Keys(fs)) {
		f := fs[k]
		_, _ = d.WriteString(k)
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(f.Key.String())
		if f.ID {
			_, _ = d.WriteString("!id")
		}
		if f.Selection != nil {
			binary.LittleEndian.PutUint64(buf[:], f.Selection.fingerprint)
			_, _ = d.Write(buf[:])
		}
		_, _ = d.WriteString(";")
	}
	_, _ = d.WriteString("}")
}

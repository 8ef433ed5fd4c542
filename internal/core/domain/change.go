package domain

// ObjectChange records how a stored object changed during one mutation batch.
// It is either WholeChange or FieldsChanged.
type ObjectChange interface {
	isObjectChange()
}

// WholeChange marks the whole object (or field slot) as changed. It subsumes every finer change.
type WholeChange struct{}

// FieldsChanged records changes of individual field slots. A nested FieldsChanged value means
// only part of an inline object changed.
type FieldsChanged map[FieldKey]ObjectChange

func (WholeChange) isObjectChange()   {}
func (FieldsChanged) isObjectChange() {}

// Whole is the shared WholeChange value.
var Whole ObjectChange = WholeChange{}

// CombineChanges unions two changes recorded for the same slot.
// WholeChange absorbs anything, two FieldsChanged merge recursively. Either side may be nil.
func CombineChanges(a, b ObjectChange) ObjectChange {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	af, aok := a.(FieldsChanged)
	bf, bok := b.(FieldsChanged)
	if !aok || !bok {
		return Whole
	}
	out := make(FieldsChanged, len(af)+len(bf))
	for k, c := range af {
		out[k] = c
	}
	for k, c := range bf {
		out[k] = CombineChanges(out[k], c)
	}
	return out
}

// IsWhole reports whether c is a WholeChange.
func IsWhole(c ObjectChange) bool {
	_, ok := c.(WholeChange)
	return ok
}

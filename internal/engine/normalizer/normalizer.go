// Package normalizer flattens response trees into the normalized store.
package normalizer

import (
	"strconv"

	"go.trai.ch/graphcache/internal/core/domain"
)

// Sink receives the flattened entities a normalization discovers.
type Sink interface {
	Merge(key domain.CacheKey, obj domain.CacheObject)
}

// Normalizer walks a response together with the selection that produced it, splits every
// identifiable object into its own entity and merges everything into a Sink.
type Normalizer struct {
	sink Sink
}

// New creates a Normalizer writing into sink.
func New(sink Sink) *Normalizer {
	return &Normalizer{sink: sink}
}

// NormalizeQuery merges a query-root response into the root entity.
// It returns the number of entities written, root included.
func (n *Normalizer) NormalizeQuery(data domain.Object, sel *domain.Selection) int {
	w := walk{sink: n.sink}
	n.sink.Merge(domain.RootKey, w.flatten(data, sel))
	return w.entities + 1
}

// NormalizeMutation normalizes a mutation response. Identifiable objects, the payload itself
// included, are merged into their entities; the payload never touches the root.
// It returns the number of entities written.
func (n *Normalizer) NormalizeMutation(data domain.Object, sel *domain.Selection) int {
	w := walk{sink: n.sink}
	w.object(data, sel)
	return w.entities
}

type walk struct {
	sink     Sink
	entities int
}

func (w *walk) object(data domain.Object, sel *domain.Selection) domain.CacheValue {
	flat := w.flatten(data, sel)
	key, ok := Identify(data, sel)
	if !ok {
		return flat
	}
	w.sink.Merge(key, flat)
	w.entities++
	return domain.Reference{Key: key}
}

// flatten converts the selected fields of data into a CacheObject keyed by FieldKey.
// Response keys the selection does not know are ignored.
func (w *walk) flatten(data domain.Object, sel *domain.Selection) domain.CacheObject {
	typename, _ := data[domain.TypenameField].(domain.String)
	fields := sel.FieldsFor(string(typename))

	out := make(domain.CacheObject, len(data))
	for outKey, v := range data {
		f, ok := fields[outKey]
		if !ok {
			continue
		}
		out[f.Key] = w.value(v, f)
	}
	return out
}

func (w *walk) value(v domain.Value, f domain.SelectedField) domain.CacheValue {
	switch tv := v.(type) {
	case domain.Object:
		if f.Selection == nil {
			panic(domain.Violation("object value for a field without a sub-selection", "field", f.Key.String()))
		}
		return w.object(tv, f.Selection)
	case domain.List:
		out := make(domain.CacheList, len(tv))
		for i, e := range tv {
			out[i] = w.value(e, f)
		}
		return out
	case nil:
		return domain.Null{}
	case domain.Bool:
		return tv
	case domain.String:
		return tv
	case domain.Int:
		return tv
	case domain.Float:
		return tv
	case domain.Enum:
		return tv
	case domain.Null:
		return tv
	default:
		panic(domain.Violation("unknown value type", "field", f.Key.String()))
	}
}

// Identify returns the entity key of a response object. An object is identifiable when the
// applicable selection covers both __typename and an ID-typed id field and the response
// carries values for both.
func Identify(data domain.Object, sel *domain.Selection) (domain.CacheKey, bool) {
	typename, ok := data[domain.TypenameField].(domain.String)
	if !ok || typename == "" {
		return domain.CacheKey{}, false
	}

	var hasTypename bool
	var id string
	for outKey, f := range sel.FieldsFor(string(typename)) {
		switch {
		case f.Name == domain.TypenameField:
			hasTypename = hasTypename || outKey == domain.TypenameField
		case f.Name == domain.IDField && f.ID && id == "":
			switch v := data[outKey].(type) {
			case domain.String:
				id = string(v)
			case domain.Int:
				id = strconv.FormatInt(int64(v), 10)
			}
		}
	}
	if !hasTypename || id == "" {
		return domain.CacheKey{}, false
	}
	return domain.NewEntityKey(string(typename), id), true
}

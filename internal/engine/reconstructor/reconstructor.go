// Package reconstructor rebuilds response trees from the normalized store.
package reconstructor

import (
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

// Materialize rebuilds the value the selection describes, rooted at the entity key.
// It reports false when any selected field, transitively, is missing from the store: the
// selection cannot be satisfied from cached data alone.
//
// The walk is driven by the finite selection, so reference cycles in the store are harmless.
func Materialize(r ports.EntityReader, key domain.CacheKey, sel *domain.Selection) (domain.Object, bool) {
	obj, ok := r.Get(key)
	if !ok {
		return nil, false
	}
	return materializeObject(r, obj, sel)
}

// MaterializeValue rebuilds a single stored value with the nested selection of its field.
// nested must be non-nil whenever v is composite.
func MaterializeValue(r ports.EntityReader, v domain.CacheValue, nested *domain.Selection) (domain.Value, bool) {
	switch tv := v.(type) {
	case domain.Reference:
		requireSelection(nested, "reference")
		return objectResult(Materialize(r, tv.Key, nested))
	case domain.CacheObject:
		requireSelection(nested, "inline object")
		return objectResult(materializeObject(r, tv, nested))
	case domain.CacheList:
		out := make(domain.List, len(tv))
		for i, e := range tv {
			mv, ok := MaterializeValue(r, e, nested)
			if !ok {
				return nil, false
			}
			out[i] = mv
		}
		return out, true
	case domain.Bool:
		return tv, true
	case domain.String:
		return tv, true
	case domain.Int:
		return tv, true
	case domain.Float:
		return tv, true
	case domain.Enum:
		return tv, true
	case domain.Null:
		return tv, true
	default:
		return nil, false
	}
}

func materializeObject(r ports.EntityReader, obj domain.CacheObject, sel *domain.Selection) (domain.Object, bool) {
	typename, hasTypename := obj.Typename()
	if sel.HasConditional() && !hasTypename {
		// Conditional fields cannot be resolved without the stored concrete type.
		return nil, false
	}

	fields := sel.FieldsFor(typename)
	out := make(domain.Object, len(fields))
	for outKey, f := range fields {
		stored, ok := obj[f.Key]
		if !ok {
			return nil, false
		}
		v, ok := MaterializeValue(r, stored, f.Selection)
		if !ok {
			return nil, false
		}
		out[outKey] = v
	}
	return out, true
}

func objectResult(obj domain.Object, ok bool) (domain.Value, bool) {
	if !ok {
		return nil, false
	}
	return obj, true
}

func requireSelection(sel *domain.Selection, what string) {
	if sel == nil {
		panic(domain.Violation("stored " + what + " selected without a sub-selection"))
	}
}

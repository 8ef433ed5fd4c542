package notifier

import (
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

var typenameKey = domain.NewFieldKey(domain.TypenameField, nil)

// SelectionChanged reports whether the value the selection describes at key may differ from
// what it was before the current batch. It follows references the selection reaches, so a
// change to a shared entity is seen by every selection that points at it. An entity missing
// from the store counts as changed.
func SelectionChanged(r ports.ChangeReader, sel *domain.Selection, key domain.CacheKey) bool {
	obj, ok := r.Get(key)
	if !ok {
		return true
	}
	change, _ := r.Change(key)
	if domain.IsWhole(change) {
		return true
	}
	fields, _ := change.(domain.FieldsChanged)
	return objectChanged(r, obj, sel, fields)
}

func objectChanged(r ports.ChangeReader, obj domain.CacheObject, sel *domain.Selection, changed domain.FieldsChanged) bool {
	if _, ok := changed[typenameKey]; ok && sel.HasConditional() {
		return true
	}

	typename, _ := obj.Typename()
	for _, f := range sel.FieldsFor(typename) {
		c, recorded := changed[f.Key]
		if recorded && domain.IsWhole(c) {
			return true
		}
		if f.Selection == nil {
			continue
		}
		v, ok := obj[f.Key]
		if !ok {
			continue
		}
		nested, _ := c.(domain.FieldsChanged)
		if valueChanged(r, v, f.Selection, nested) {
			return true
		}
	}
	return false
}

func valueChanged(r ports.ChangeReader, v domain.CacheValue, sel *domain.Selection, nested domain.FieldsChanged) bool {
	switch tv := v.(type) {
	case domain.Reference:
		return SelectionChanged(r, sel, tv.Key)
	case domain.CacheObject:
		return objectChanged(r, tv, sel, nested)
	case domain.CacheList:
		// Changes inside a list are recorded on the list's slot; only references need following.
		for _, e := range tv {
			if valueChanged(r, e, sel, nil) {
				return true
			}
		}
	}
	return false
}

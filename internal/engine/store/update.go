package store

import (
	"go.trai.ch/graphcache/internal/core/domain"
)

// Update applies a direct patch to the entity at key and records what changed, exactly as a
// merge would. It reports false when no such entity exists.
//
// A FieldPatch entry applies to every stored slot declared under its name, regardless of the
// slot's arguments. Patching through a reference patches the referenced entity; patching
// through a list patches each element. A FieldPatch reaching a scalar is a contract violation.
func (s *Store) Update(key domain.CacheKey, patch domain.Patch) bool {
	obj, ok := s.entities[key]
	if !ok {
		return false
	}

	switch p := patch.(type) {
	case domain.Transform:
		next, ok := p(obj.Clone()).(domain.CacheObject)
		if !ok {
			panic(domain.Violation("transform of an entity must return an object", "key", key.String()))
		}
		if !obj.Equal(next) {
			s.Set(key, next)
		}
	case domain.FieldPatch:
		if changed := s.patchObject(obj, p); len(changed) > 0 {
			s.record(key, changed)
		}
	}
	return true
}

func (s *Store) patchObject(obj domain.CacheObject, patch domain.FieldPatch) domain.FieldsChanged {
	var changed domain.FieldsChanged
	for _, fk := range obj.Keys() {
		sub, ok := patch[fk.Name()]
		if !ok {
			continue
		}
		next, c := s.patchValue(fk, obj[fk], sub)
		obj[fk] = next
		if c == nil {
			continue
		}
		if changed == nil {
			changed = make(domain.FieldsChanged)
		}
		changed[fk] = c
	}
	return changed
}

func (s *Store) patchValue(fk domain.FieldKey, v domain.CacheValue, patch domain.Patch) (domain.CacheValue, domain.ObjectChange) {
	switch p := patch.(type) {
	case domain.Transform:
		next := p(domain.CloneCacheValue(v))
		if domain.EqualCacheValues(v, next) {
			return v, nil
		}
		return next, domain.Whole
	case domain.FieldPatch:
		switch tv := v.(type) {
		case domain.CacheObject:
			if nested := s.patchObject(tv, p); len(nested) > 0 {
				return tv, nested
			}
			return tv, nil
		case domain.Reference:
			// The referenced entity records its own change; the reference itself is untouched.
			s.Update(tv.Key, p)
			return tv, nil
		case domain.CacheList:
			var changed bool
			for i, e := range tv {
				next, c := s.patchValue(fk, e, p)
				tv[i] = next
				changed = changed || c != nil
			}
			if changed {
				return tv, domain.Whole
			}
			return tv, nil
		case domain.Null:
			return tv, nil
		default:
			panic(domain.Violation("field patch applied to a scalar slot", "field", fk.String()))
		}
	}
	return v, nil
}

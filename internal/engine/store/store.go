// Package store implements the normalized entity store and its per-batch change ledger.
package store

import (
	"maps"
	"slices"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

var _ ports.ChangeReader = (*Store)(nil)

// Store maps entity keys to flattened entities and records which entities and fields changed
// since the ledger was last cleared.
//
// Store performs no locking. The cache engine is its single owner and serializes every
// mutation; concurrent readers are only allowed while no mutation runs.
type Store struct {
	entities map[domain.CacheKey]domain.CacheObject
	changes  map[domain.CacheKey]domain.ObjectChange
}

// New creates a store holding an empty root entity.
func New() *Store {
	return &Store{
		entities: map[domain.CacheKey]domain.CacheObject{domain.RootKey: {}},
		changes:  make(map[domain.CacheKey]domain.ObjectChange),
	}
}

// Get returns the stored entity. The returned object is shared with the store and must not be
// modified.
func (s *Store) Get(key domain.CacheKey) (domain.CacheObject, bool) {
	obj, ok := s.entities[key]
	return obj, ok
}

// Set replaces the entity unconditionally and records a whole-entity change.
func (s *Store) Set(key domain.CacheKey, obj domain.CacheObject) {
	s.entities[key] = obj.Clone()
	s.record(key, domain.Whole)
}

// Merge folds incoming into the stored entity. A first write behaves like Set. Otherwise only
// field slots whose values differ are overwritten and recorded; inline objects merge field by
// field. Merging data equal to what is stored records nothing.
func (s *Store) Merge(key domain.CacheKey, incoming domain.CacheObject) {
	existing, ok := s.entities[key]
	if !ok {
		s.Set(key, incoming)
		return
	}
	if changed := mergeObject(existing, incoming.Clone()); len(changed) > 0 {
		s.record(key, changed)
	}
}

// Clear drops every entity, re-seeds an empty root and records a whole change on the root.
// Earlier changes of the batch are discarded: the entities they describe no longer exist.
func (s *Store) Clear() {
	s.entities = map[domain.CacheKey]domain.CacheObject{domain.RootKey: {}}
	s.changes = map[domain.CacheKey]domain.ObjectChange{domain.RootKey: domain.Whole}
}

// Change returns the change recorded for key in the current batch.
func (s *Store) Change(key domain.CacheKey) (domain.ObjectChange, bool) {
	c, ok := s.changes[key]
	return c, ok
}

// HasChanges reports whether the current batch recorded anything.
func (s *Store) HasChanges() bool {
	return len(s.changes) > 0
}

// ChangedKeys returns the keys with a recorded change, in key order.
func (s *Store) ChangedKeys() []domain.CacheKey {
	return slices.SortedFunc(maps.Keys(s.changes), domain.CacheKey.Compare)
}

// ClearChanges empties the ledger. It runs after every notification flush.
func (s *Store) ClearChanges() {
	clear(s.changes)
}

// Len returns the number of stored entities, root included.
func (s *Store) Len() int {
	return len(s.entities)
}

// Keys returns every stored key, root first.
func (s *Store) Keys() []domain.CacheKey {
	return slices.SortedFunc(maps.Keys(s.entities), domain.CacheKey.Compare)
}

// Snapshot returns a deep copy of every stored entity.
func (s *Store) Snapshot() map[domain.CacheKey]domain.CacheObject {
	out := make(map[domain.CacheKey]domain.CacheObject, len(s.entities))
	for k, obj := range s.entities {
		out[k] = obj.Clone()
	}
	return out
}

func (s *Store) record(key domain.CacheKey, c domain.ObjectChange) {
	s.changes[key] = domain.CombineChanges(s.changes[key], c)
}

// mergeObject writes src into dst and returns the slots that changed.
func mergeObject(dst, src domain.CacheObject) domain.FieldsChanged {
	var changed domain.FieldsChanged
	for fk, incoming := range src {
		c := mergeSlot(dst, fk, incoming)
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

func mergeSlot(dst domain.CacheObject, fk domain.FieldKey, incoming domain.CacheValue) domain.ObjectChange {
	existing, ok := dst[fk]
	if !ok {
		dst[fk] = incoming
		return domain.Whole
	}
	checkShapes(fk, existing, incoming)

	if eo, ok := existing.(domain.CacheObject); ok {
		if io, ok := incoming.(domain.CacheObject); ok {
			if nested := mergeObject(eo, io); len(nested) > 0 {
				return nested
			}
			return nil
		}
	}
	if domain.EqualCacheValues(existing, incoming) {
		return nil
	}
	dst[fk] = incoming
	return domain.Whole
}

// checkShapes panics when one slot is written as an inline object and as a list. That only
// happens when one entity is normalized with structurally incompatible selections.
func checkShapes(fk domain.FieldKey, existing, incoming domain.CacheValue) {
	_, existingList := existing.(domain.CacheList)
	_, incomingList := incoming.(domain.CacheList)
	_, existingObj := existing.(domain.CacheObject)
	_, incomingObj := incoming.(domain.CacheObject)
	if (existingList && incomingObj) || (existingObj && incomingList) {
		panic(domain.Violation("incompatible shapes merged into one field", "field", fk.String()))
	}
}

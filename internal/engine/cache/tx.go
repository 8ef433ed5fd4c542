package cache

import (
	"sync/atomic"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/engine/reconstructor"
)

// Tx gives a post-merge hook access to the store while the cache is held exclusively.
// Its changes are recorded in the ledger of the running mutation and notified by the flush
// that follows the hook. A Tx is only valid until its hook returns.
type Tx struct {
	cache  *Cache
	closed atomic.Bool
}

// MergeQuery normalizes a query response into the store under the query root.
func (tx *Tx) MergeQuery(data domain.Object, sel *domain.Selection) {
	tx.check()
	n := tx.cache.normalizer.NormalizeQuery(data, sel)
	tx.cache.logger.Debug("merged query", "entities", n, "stored", tx.cache.store.Len())
}

// MergeMutation normalizes a mutation response without touching the query root.
func (tx *Tx) MergeMutation(data domain.Object, sel *domain.Selection) {
	tx.check()
	n := tx.cache.normalizer.NormalizeMutation(data, sel)
	tx.cache.logger.Debug("merged mutation", "entities", n, "stored", tx.cache.store.Len())
}

// Update applies a direct patch. It reports false when the entity is not cached.
func (tx *Tx) Update(key domain.CacheKey, patch domain.Patch) bool {
	tx.check()
	if !tx.cache.store.Update(key, patch) {
		tx.cache.logger.Debug("update skipped, entity not cached", "key", key.String())
		return false
	}
	return true
}

// Clear drops every cached entity.
func (tx *Tx) Clear() {
	tx.check()
	tx.cache.store.Clear()
	tx.cache.logger.Debug("cache cleared")
}

// Lookup reconstructs sel against the query root, including changes made earlier in the
// transaction.
func (tx *Tx) Lookup(sel *domain.Selection) (domain.Object, bool) {
	tx.check()
	return reconstructor.Materialize(tx.cache.store, domain.RootKey, sel)
}

func (tx *Tx) check() {
	if tx.closed.Load() {
		panic(domain.Violation(domain.ErrTxClosed.Error()))
	}
}

func (tx *Tx) close() {
	tx.closed.Store(true)
}

// Package cache is the serialized owner of the normalized store. It exposes merges, lookups,
// watches and direct updates, and flushes watcher notifications after every mutation.
package cache

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/normalizer"
	"go.trai.ch/graphcache/internal/engine/notifier"
	"go.trai.ch/graphcache/internal/engine/reconstructor"
	"go.trai.ch/graphcache/internal/engine/store"
)

// Hook runs after a merge and before its notification flush. Mutations made through tx fold
// into the same flush.
type Hook func(ctx context.Context, tx *Tx) error

// Cache is safe for concurrent use. Mutations and flushes run one at a time; lookups run
// concurrently with each other and never observe a partial mutation.
type Cache struct {
	logger ports.Logger
	tracer ports.Tracer

	mu         sync.RWMutex
	store      *store.Store
	normalizer *normalizer.Normalizer
	notifier   *notifier.Notifier
}

// New creates an empty cache.
func New(logger ports.Logger, tracer ports.Tracer, cfg domain.CacheConfig) *Cache {
	s := store.New()
	return &Cache{
		logger:     logger,
		tracer:     tracer,
		store:      s,
		normalizer: normalizer.New(s),
		notifier:   notifier.New(logger, cfg.FlushConcurrency),
	}
}

// MergeQuery normalizes a query response into the store under the query root, runs hook if
// given, then notifies affected watches. A hook error is returned after the flush has run.
func (c *Cache) MergeQuery(ctx context.Context, data domain.Object, sel *domain.Selection, hook Hook) error {
	return c.mutate(ctx, "cache.merge_query", hook, func(tx *Tx) {
		tx.MergeQuery(data, sel)
	})
}

// MergeMutation normalizes a mutation response. Only the entities it contains are written; the
// payload is not merged into the query root.
func (c *Cache) MergeMutation(ctx context.Context, data domain.Object, sel *domain.Selection, hook Hook) error {
	return c.mutate(ctx, "cache.merge_mutation", hook, func(tx *Tx) {
		tx.MergeMutation(data, sel)
	})
}

// Update applies a direct patch to one entity and notifies affected watches. It reports false
// when the entity is not cached, in which case nothing changes.
func (c *Cache) Update(ctx context.Context, key domain.CacheKey, patch domain.Patch) bool {
	var applied bool
	_ = c.mutate(ctx, "cache.update", nil, func(tx *Tx) {
		applied = tx.Update(key, patch)
	}, ports.WithAttribute("key", key.String()))
	return applied
}

// Clear drops every cached entity. Every live watch receives a miss.
func (c *Cache) Clear(ctx context.Context) {
	_ = c.mutate(ctx, "cache.clear", nil, func(tx *Tx) {
		tx.Clear()
	})
}

// Lookup reconstructs sel against the query root. It reports false on a cache miss.
func (c *Cache) Lookup(ctx context.Context, sel *domain.Selection) (domain.Object, bool) {
	return c.Read(ctx, domain.RootKey, sel)
}

// Read reconstructs sel against any cached entity.
func (c *Cache) Read(ctx context.Context, key domain.CacheKey, sel *domain.Selection) (domain.Object, bool) {
	_, span := c.tracer.Start(ctx, "cache.lookup", ports.WithAttribute("key", key.String()))
	defer span.End()

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := reconstructor.Materialize(c.store, key, sel)
	span.SetAttribute("hit", ok)
	return data, ok
}

// Listen registers a watch on sel rooted at root. The watch is notified after every mutation
// that may have changed the selection's value, and is cancelled when ctx is done.
func (c *Cache) Listen(ctx context.Context, sel *domain.Selection, root domain.CacheKey) *notifier.Watch {
	return c.notifier.Listen(ctx, sel, root)
}

// Watches returns the number of live watches.
func (c *Cache) Watches() int {
	return c.notifier.Len()
}

// Entity returns a copy of one stored entity.
func (c *Cache) Entity(key domain.CacheKey) (domain.CacheObject, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	obj, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	return obj.Clone(), true
}

// Extract returns a deep copy of the whole store.
func (c *Cache) Extract() map[domain.CacheKey]domain.CacheObject {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Snapshot()
}

func (c *Cache) mutate(ctx context.Context, name string, hook Hook, op func(*Tx), opts ...ports.SpanOption) error {
	ctx, span := c.tracer.Start(ctx, name, opts...)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.store.ClearChanges()
	// Runs on the panic path too: whatever a violation left in the store is still notified.
	defer c.flush(ctx)

	err := c.apply(ctx, hook, op)
	if err != nil {
		span.RecordError(err)
		c.logger.Warn("post-merge hook failed", "operation", name)
	}
	return err
}

func (c *Cache) apply(ctx context.Context, hook Hook, op func(*Tx)) error {
	tx := &Tx{cache: c}
	defer tx.close()

	op(tx)
	if hook == nil {
		return nil
	}
	if err := hook(ctx, tx); err != nil {
		return errors.Join(domain.ErrHookFailed, err)
	}
	return nil
}

func (c *Cache) flush(ctx context.Context) {
	if !c.store.HasChanges() {
		return
	}
	ctx, span := c.tracer.Start(ctx, "cache.flush",
		ports.WithAttribute("changed", len(c.store.ChangedKeys())),
	)
	defer span.End()

	stats := c.notifier.Flush(ctx, c.store)
	span.SetAttribute("watches", stats.Watches)
	span.SetAttribute("notified", stats.Notified)
}

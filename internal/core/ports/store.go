package ports

import "go.trai.ch/graphcache/internal/core/domain"

// EntityReader reads stored entities.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntityReader interface {
	// Get returns the stored entity. The returned object must not be modified.
	Get(key domain.CacheKey) (domain.CacheObject, bool)
}

// ChangeReader reads stored entities together with the change ledger of the current batch.
type ChangeReader interface {
	EntityReader
	// Change returns the change recorded for key in the current batch.
	Change(key domain.CacheKey) (domain.ObjectChange, bool)
}

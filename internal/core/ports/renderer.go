package ports

import "go.trai.ch/graphcache/internal/core/domain"

// Renderer presents the observable results of a scenario replay.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnStep is called before a step runs. index is 0-based.
	OnStep(index int, step domain.Step)
	// OnLookup is called with the result of a lookup step.
	OnLookup(selection string, update domain.Update)
	// OnNotify is called for every update a watch received after a step.
	OnNotify(watch string, update domain.Update)
	// OnDump is called with the store contents of a dump step.
	OnDump(entities map[domain.CacheKey]domain.CacheObject)
	// OnError is called when a step fails.
	OnError(step domain.Step, err error)
}

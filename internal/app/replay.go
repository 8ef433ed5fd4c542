package app

import (
	"context"
	"slices"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/cache"
	"go.trai.ch/graphcache/internal/engine/notifier"
	"go.trai.ch/zerr"
)

// replay runs the steps of one scenario against its own cache.
type replay struct {
	scenario *domain.Scenario
	logger   ports.Logger
	renderer ports.Renderer
	cache    *cache.Cache
	watches  []namedWatch
}

type namedWatch struct {
	name  string
	watch *notifier.Watch
}

func newReplay(
	sc *domain.Scenario,
	logger ports.Logger,
	tracer ports.Tracer,
	renderer ports.Renderer,
	cfg domain.CacheConfig,
) *replay {
	return &replay{
		scenario: sc,
		logger:   logger,
		renderer: renderer,
		cache:    cache.New(logger, tracer, cfg),
	}
}

// run executes one step. Contract violations raised by the cache are returned as errors.
func (r *replay) run(ctx context.Context, step domain.Step) (err error) {
	defer zerr.Defer(func(recovered error) {
		err = recovered
	})

	sel := r.scenario.Selections[step.Selection]
	switch step.Kind {
	case domain.StepListen:
		w := r.cache.Listen(ctx, sel, step.Root)
		r.watches = append(r.watches, namedWatch{name: step.Watch, watch: w})
	case domain.StepCancel:
		r.cancel(step.Watch)
	case domain.StepMergeQuery:
		return r.cache.MergeQuery(ctx, step.Data, sel, nil)
	case domain.StepMergeMutation:
		return r.cache.MergeMutation(ctx, step.Data, sel, nil)
	case domain.StepLookup:
		data, ok := r.cache.Lookup(ctx, sel)
		if !ok {
			r.renderer.OnLookup(step.Selection, domain.MissUpdate)
			break
		}
		r.renderer.OnLookup(step.Selection, domain.Hit(data))
	case domain.StepUpdate:
		if !r.cache.Update(ctx, step.Key, step.Patch) {
			r.logger.Warn("update ignored, entity not cached", "key", step.Key.String(), "line", step.Line)
		}
	case domain.StepClear:
		r.cache.Clear(ctx)
	case domain.StepDump:
		r.renderer.OnDump(r.cache.Extract())
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidStep, "unknown operation"), "step", string(step.Kind))
	}
	return nil
}

func (r *replay) cancel(name string) {
	i := slices.IndexFunc(r.watches, func(w namedWatch) bool { return w.name == name })
	if i < 0 {
		return
	}
	r.watches[i].watch.Cancel()
	r.watches = slices.Delete(r.watches, i, i+1)
}

// drain reports the pending update of every live watch in registration order.
func (r *replay) drain() {
	for _, w := range r.watches {
		select {
		case u, ok := <-w.watch.Updates():
			if ok {
				r.renderer.OnNotify(w.name, u)
			}
		default:
		}
	}
}

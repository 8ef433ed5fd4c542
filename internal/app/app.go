// Package app implements the application layer for graphcache.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/graphcache/internal/adapters/telemetry"
	"go.trai.ch/graphcache/internal/adapters/watcher"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// configurableLogger is implemented by loggers whose level and format can change at runtime.
type configurableLogger interface {
	SetLevel(name string) error
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.FileWatcher
	renderer     ports.Renderer
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	fileWatcher ports.FileWatcher,
	renderer ports.Renderer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		watcher:      fileWatcher,
		renderer:     renderer,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithRenderer replaces the renderer replay results are reported to.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithDebounceWindow sets how long file changes are collected before a watched replay reruns.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// ReplayOptions configures the Replay method. Empty values defer to the configuration file.
type ReplayOptions struct {
	// Watch reruns the scenario whenever it or the configuration file changes.
	Watch bool
	// LogLevel overrides log.level.
	LogLevel string
	// JSONLogs forces JSON log output.
	JSONLogs bool
}

// Replay loads the scenario at path and runs it against a fresh cache, reporting lookups,
// notifications and dumps to the renderer. A failing step stops the replay with an error
// matching domain.ErrReplayFailed.
func (a *App) Replay(ctx context.Context, path string, opts ReplayOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	shutdown := telemetry.Setup(a.logger, cfg.Telemetry.Enabled)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	if !opts.Watch {
		return a.replayOnce(ctx, path, cfg.Cache)
	}
	return a.watch(ctx, path, cfg, opts)
}

func (a *App) loadConfig(opts ReplayOptions) (domain.Config, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	cfg.Log.JSON = cfg.Log.JSON || opts.JSONLogs

	if l, ok := a.logger.(configurableLogger); ok {
		if err := l.SetLevel(cfg.Log.Level); err != nil {
			return domain.Config{}, err
		}
		l.SetJSON(cfg.Log.JSON)
	}
	return cfg, nil
}

func (a *App) replayOnce(ctx context.Context, path string, cfg domain.CacheConfig) error {
	sc, err := a.configLoader.LoadScenario(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load scenario")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newReplay(sc, a.logger, a.tracer, a.renderer, cfg)
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.renderer.OnStep(i, step)
		if err := r.run(ctx, step); err != nil {
			a.renderer.OnError(step, err)
			return errors.Join(domain.ErrReplayFailed, err)
		}
		r.drain()
	}

	a.logger.Info("scenario replayed", "path", path, "steps", len(sc.Steps), "watches", r.cache.Watches())
	return nil
}

func (a *App) watch(ctx context.Context, path string, cfg domain.Config, opts ReplayOptions) error {
	paths := []string{path}
	if cfg.Path != "" {
		paths = append(paths, cfg.Path)
	}
	if err := a.watcher.Start(ctx, paths...); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	rerun := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(changed []string) {
		select {
		case rerun <- changed:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.report(a.replayOnce(ctx, path, cfg.Cache))
	a.logger.Info("watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-rerun:
			a.logger.Info("change detected, replaying", "files", len(changed))
			next, err := a.loadConfig(opts)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			a.report(a.replayOnce(ctx, path, next.Cache))
		}
	}
}

// report logs a replay error in watch mode. Step failures were already rendered.
func (a *App) report(err error) {
	if err == nil || errors.Is(err, domain.ErrReplayFailed) || errors.Is(err, context.Canceled) {
		return
	}
	a.logger.Error(err)
}

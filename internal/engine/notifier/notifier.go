// Package notifier tracks watches on cached selections and delivers fresh results to the
// watches a batch of changes affected.
package notifier

import (
	"cmp"
	"context"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/reconstructor"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Notifier is the registry of live watches.
type Notifier struct {
	logger      ports.Logger
	concurrency int

	mu      sync.Mutex
	seq     uint64
	watches map[uint64]*Watch
}

// FlushStats summarizes one flush.
type FlushStats struct {
	// Watches is the number of live watches when the flush started.
	Watches int
	// Groups is the number of distinct (selection, root) pairs evaluated.
	Groups int
	// Notified is the number of watches that received an update.
	Notified int
	// Misses is the number of those updates that were misses.
	Misses int
}

// New creates a Notifier. concurrency bounds how many groups are reconstructed in parallel
// during a flush; values below one default to GOMAXPROCS.
func New(logger ports.Logger, concurrency int) *Notifier {
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Notifier{
		logger:      logger,
		concurrency: concurrency,
		watches:     make(map[uint64]*Watch),
	}
}

// Listen registers a watch for sel rooted at root. The watch receives nothing until a flush
// finds it affected. It is cancelled when ctx is done or when Cancel is called.
func (n *Notifier) Listen(ctx context.Context, sel *domain.Selection, root domain.CacheKey) *Watch {
	n.mu.Lock()
	n.seq++
	w := newWatch(n.seq, sel, root, n.remove)
	n.watches[w.seq] = w
	n.mu.Unlock()

	stop := context.AfterFunc(ctx, w.Cancel)
	w.mu.Lock()
	w.stop = stop
	w.mu.Unlock()
	n.logger.Debug("watch registered", "watch", w.ID(), "root", root.String())
	return w
}

// Len returns the number of live watches.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.watches)
}

func (n *Notifier) remove(w *Watch) {
	n.mu.Lock()
	delete(n.watches, w.seq)
	n.mu.Unlock()
	n.logger.Debug("watch cancelled", "watch", w.ID())
}

// snapshot returns the live watches in registration order.
func (n *Notifier) snapshot() []*Watch {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Watch, 0, len(n.watches))
	for _, w := range n.watches {
		out = append(out, w)
	}
	slices.SortFunc(out, func(a, b *Watch) int {
		return cmp.Compare(a.seq, b.seq)
	})
	return out
}

// group is a set of watches sharing a structurally equal selection and a root. Each group is
// evaluated and reconstructed once per flush.
type group struct {
	selection *domain.Selection
	root      domain.CacheKey
	watches   []*Watch

	affected bool
	update   domain.Update
	handed   int
}

type groupKey struct {
	fingerprint uint64
	root        domain.CacheKey
}

func groupWatches(watches []*Watch) ([]*group, map[*Watch]*group) {
	var groups []*group
	index := make(map[groupKey][]*group)
	byWatch := make(map[*Watch]*group, len(watches))
	for _, w := range watches {
		k := groupKey{fingerprint: w.selection.Fingerprint(), root: w.root}
		var g *group
		for _, candidate := range index[k] {
			if candidate.selection.Equal(w.selection) {
				g = candidate
				break
			}
		}
		if g == nil {
			g = &group{selection: w.selection, root: w.root}
			index[k] = append(index[k], g)
			groups = append(groups, g)
		}
		g.watches = append(g.watches, w)
		byWatch[w] = g
	}
	return groups, byWatch
}

// Flush delivers a fresh result to every watch whose selection the recorded changes may have
// affected. r must not be mutated until Flush returns; the caller clears the ledger afterwards.
//
// Affected groups are reconstructed in parallel. Deliveries happen afterwards, in watch
// registration order. A contract violation raised during reconstruction is re-raised on the
// calling goroutine.
func (n *Notifier) Flush(ctx context.Context, r ports.ChangeReader) FlushStats {
	watches := n.snapshot()
	groups, byWatch := groupWatches(watches)
	stats := FlushStats{Watches: len(watches), Groups: len(groups)}
	if len(groups) == 0 {
		return stats
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)
	for _, grp := range groups {
		g.Go(func() (err error) {
			defer zerr.Defer(func(recovered error) {
				err = recovered
			})
			grp.evaluate(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	for _, w := range watches {
		grp := byWatch[w]
		if !grp.affected {
			continue
		}
		if !w.deliver(grp.next()) {
			continue
		}
		stats.Notified++
		if grp.update.Miss {
			stats.Misses++
		}
	}

	n.logger.Debug("flush complete",
		"watches", stats.Watches,
		"groups", stats.Groups,
		"notified", stats.Notified,
		"misses", stats.Misses,
	)
	return stats
}

func (grp *group) evaluate(r ports.ChangeReader) {
	if !SelectionChanged(r, grp.selection, grp.root) {
		return
	}
	grp.affected = true
	data, ok := reconstructor.Materialize(r, grp.root, grp.selection)
	if !ok {
		grp.update = domain.MissUpdate
		return
	}
	grp.update = domain.Hit(data)
}

// next returns the group's update for one watch. Every watch after the first gets its own copy
// of the data so consumers never share a tree.
func (grp *group) next() domain.Update {
	u := grp.update
	if grp.handed > 0 && u.Data != nil {
		u.Data = u.Data.Clone()
	}
	grp.handed++
	return u
}

package notifier

import (
	"context"
	"iter"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/graphcache/internal/core/domain"
)

// Watch is one registered interest in a selection rooted at an entity.
//
// Its channel holds at most one pending update. A new delivery replaces an unread one, so a
// slow consumer only ever sees the latest state and a flush never blocks on it.
type Watch struct {
	id        uuid.UUID
	seq       uint64
	selection *domain.Selection
	root      domain.CacheKey
	ch        chan domain.Update

	mu     sync.Mutex
	closed bool
	last   domain.Update
	seen   bool

	once     sync.Once
	onCancel func(*Watch)
	stop     func() bool
}

func newWatch(seq uint64, sel *domain.Selection, root domain.CacheKey, onCancel func(*Watch)) *Watch {
	return &Watch{
		id:        uuid.New(),
		seq:       seq,
		selection: sel,
		root:      root,
		ch:        make(chan domain.Update, 1),
		onCancel:  onCancel,
	}
}

// ID returns the unique identifier of the watch.
func (w *Watch) ID() string {
	return w.id.String()
}

// Selection returns the watched selection.
func (w *Watch) Selection() *domain.Selection {
	return w.selection
}

// Root returns the entity the selection is rooted at.
func (w *Watch) Root() domain.CacheKey {
	return w.root
}

// Updates returns the delivery channel. It is closed once the watch is cancelled.
func (w *Watch) Updates() <-chan domain.Update {
	return w.ch
}

// Values yields updates until the watch is cancelled or ctx is done.
func (w *Watch) Values(ctx context.Context) iter.Seq[domain.Update] {
	return func(yield func(domain.Update) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-w.ch:
				if !ok || !yield(u) {
					return
				}
			}
		}
	}
}

// Last returns the most recent update delivered to the watch, whether or not it was read.
func (w *Watch) Last() (domain.Update, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last, w.seen
}

// Cancelled reports whether Cancel has run.
func (w *Watch) Cancelled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Cancel deregisters the watch and closes its channel. No update is delivered after Cancel
// returns. It is safe to call more than once and from any goroutine.
func (w *Watch) Cancel() {
	w.once.Do(func() {
		if w.onCancel != nil {
			w.onCancel(w)
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.stop != nil {
			w.stop()
		}
		w.closed = true
		close(w.ch)
	})
}

// deliver replaces any pending update with u. It reports false when the watch is closed.
func (w *Watch) deliver(u domain.Update) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}

	select {
	case <-w.ch:
	default:
	}
	w.ch <- u

	w.last = u
	w.seen = true
	return true
}

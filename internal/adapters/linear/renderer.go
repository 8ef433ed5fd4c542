// Package linear renders replay results as plain chronological lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/graphcache/internal/adapters/wire"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/ui/output"
	"go.trai.ch/graphcache/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. Values are printed as canonical JSON with sorted keys so
// output is stable across runs.
type Renderer struct {
	out *termenv.Output

	mu sync.Mutex

	stepStyle   lipgloss.Style
	hitStyle    lipgloss.Style
	missStyle   lipgloss.Style
	notifyStyle lipgloss.Style
	errorStyle  lipgloss.Style
	faintStyle  lipgloss.Style
}

// NewRenderer creates a renderer writing to w, stdout when w is nil. Colors follow the
// terminal and NO_COLOR.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return NewRendererWithProfile(w, output.ColorProfile(w))
}

// NewRendererWithProfile creates a renderer with a fixed color profile.
func NewRendererWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	out := output.NewWithProfile(w, profile)
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(profile)

	return &Renderer{
		out:         out,
		stepStyle:   lr.NewStyle().Foreground(style.Iris).Bold(true),
		hitStyle:    lr.NewStyle().Foreground(style.Green),
		missStyle:   lr.NewStyle().Foreground(style.Yellow),
		notifyStyle: lr.NewStyle().Foreground(style.Iris),
		errorStyle:  lr.NewStyle().Foreground(style.Red),
		faintStyle:  lr.NewStyle().Foreground(style.Slate),
	}
}

// OnStep prints the step header.
func (r *Renderer) OnStep(index int, step domain.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := r.stepStyle.Render(fmt.Sprintf("#%d %s", index+1, step.Kind))
	detail := stepDetail(step)
	if detail != "" {
		header += " " + r.faintStyle.Render(detail)
	}
	r.println(header)
}

// OnLookup prints a lookup result.
func (r *Renderer) OnLookup(selection string, update domain.Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printUpdate(style.Dot, "lookup", selection, update, r.hitStyle)
}

// OnNotify prints a watch notification.
func (r *Renderer) OnNotify(watch string, update domain.Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printUpdate(style.Arrow, "notify", watch, update, r.notifyStyle)
}

// OnDump prints every stored entity ordered by key, references rendered as {"__ref": key}.
func (r *Renderer) OnDump(entities map[domain.CacheKey]domain.CacheObject) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]domain.CacheKey, 0, len(entities))
	for k := range entities {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, domain.CacheKey.Compare)

	if len(keys) == 0 {
		r.println("  " + r.faintStyle.Render("(empty)"))
		return
	}
	for _, k := range keys {
		body, err := wire.EncodeEntity(entities[k])
		if err != nil {
			r.println("  " + k.String() + " " + r.errorStyle.Render(err.Error()))
			continue
		}
		r.println("  " + r.faintStyle.Render(k.String()) + " " + string(body))
	}
}

// OnError prints a step failure.
func (r *Renderer) OnError(step domain.Step, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("  " + r.errorStyle.Render(fmt.Sprintf("%s %s failed at line %d: %v", style.Cross, step.Kind, step.Line, err)))
}

func (r *Renderer) printUpdate(icon, verb, name string, update domain.Update, hit lipgloss.Style) {
	prefix := fmt.Sprintf("%s %s %s", icon, verb, name)
	if update.Miss {
		r.println("  " + r.missStyle.Render(prefix+" miss"))
		return
	}
	body, err := wire.Encode(update.Data)
	if err != nil {
		r.println("  " + r.errorStyle.Render(prefix+" "+err.Error()))
		return
	}
	r.println("  " + hit.Render(prefix) + " " + string(body))
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func stepDetail(step domain.Step) string {
	switch step.Kind {
	case domain.StepListen:
		return fmt.Sprintf("%s on %s at %s", step.Watch, step.Selection, step.Root)
	case domain.StepCancel:
		return step.Watch
	case domain.StepMergeQuery, domain.StepMergeMutation, domain.StepLookup:
		return step.Selection
	case domain.StepUpdate:
		return step.Key.String()
	default:
		return ""
	}
}

package linear_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/graphcache/internal/adapters/linear"
	"go.trai.ch/graphcache/internal/core/domain"
)

func newTestRenderer() (*linear.Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return linear.NewRendererWithProfile(buf, termenv.Ascii), buf
}

func TestRenderer_Replay(t *testing.T) {
	r, buf := newTestRenderer()
	artoo := domain.NewEntityKey("Droid", "2001")

	r.OnStep(0, domain.Step{Kind: domain.StepListen, Watch: "heroes", Selection: "hero", Root: domain.RootKey})
	r.OnStep(1, domain.Step{Kind: domain.StepMergeQuery, Selection: "hero"})
	r.OnNotify("heroes", domain.Hit(domain.Object{
		"hero": domain.Object{
			"id":      domain.String("2001"),
			"name":    domain.String("R2-D2"),
			"episode": domain.Enum("JEDI"),
			"height":  domain.Float(0.96),
			"mass":    domain.Int(32),
			"friends": domain.List{domain.Null{}},
		},
	}))
	r.OnStep(2, domain.Step{Kind: domain.StepUpdate, Key: artoo})
	r.OnStep(3, domain.Step{Kind: domain.StepLookup, Selection: "hero"})
	r.OnLookup("hero", domain.MissUpdate)
	r.OnStep(4, domain.Step{Kind: domain.StepDump})
	r.OnDump(map[domain.CacheKey]domain.CacheObject{
		artoo: {
			domain.NewFieldKey("name", nil):    domain.String("R2-D2"),
			domain.NewFieldKey("friends", nil): domain.CacheList{domain.Reference{Key: domain.NewEntityKey("Human", "1000")}},
		},
		domain.RootKey: {
			domain.NewFieldKey("hero", domain.Arguments{"episode": domain.Enum("JEDI")}): domain.Reference{Key: artoo},
		},
	})
	r.OnStep(5, domain.Step{Kind: domain.StepClear})
	r.OnStep(6, domain.Step{Kind: domain.StepDump})
	r.OnDump(nil)
	r.OnNotify("heroes", domain.MissUpdate)
	r.OnError(domain.Step{Kind: domain.StepMergeQuery, Line: 12}, errors.New("boom"))

	g := goldie.New(t)
	g.Assert(t, "replay", buf.Bytes())
}

func TestRenderer_NoEscapesWithoutColor(t *testing.T) {
	r, buf := newTestRenderer()
	r.OnLookup("hero", domain.Hit(domain.Object{"a": domain.Bool(true)}))

	assert.Equal(t, "  ● lookup hero {\"a\":true}\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/engine/store"
)

var (
	artoo  = domain.NewEntityKey("Droid", "2001")
	luke   = domain.NewEntityKey("Human", "1000")
	name   = domain.NewFieldKey("name", nil)
	height = domain.NewFieldKey("height", nil)
	stats  = domain.NewFieldKey("stats", nil)
	power  = domain.NewFieldKey("power", nil)
	tags   = domain.NewFieldKey("tags", nil)
)

func TestNew_SeedsRoot(t *testing.T) {
	s := store.New()

	root, ok := s.Get(domain.RootKey)
	require.True(t, ok)
	assert.Empty(t, root)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.HasChanges())
}

func TestMerge_FirstWriteIsWhole(t *testing.T) {
	s := store.New()
	s.Merge(artoo, domain.CacheObject{name: domain.String("R2-D2")})

	c, ok := s.Change(artoo)
	require.True(t, ok)
	assert.True(t, domain.IsWhole(c))
	assert.Equal(t, []domain.CacheKey{artoo}, s.ChangedKeys())
}

func TestMerge_RecordsOnlyDifferingSlots(t *testing.T) {
	s := store.New()
	s.Merge(artoo, domain.CacheObject{
		name:  domain.String("R2-D2"),
		stats: domain.CacheObject{power: domain.Int(3)},
	})
	s.ClearChanges()

	s.Merge(artoo, domain.CacheObject{
		name:   domain.String("R2-D2"),
		height: domain.Float(0.96),
		stats:  domain.CacheObject{power: domain.Int(4)},
	})

	c, ok := s.Change(artoo)
	require.True(t, ok)
	want := domain.FieldsChanged{
		height: domain.Whole,
		stats:  domain.FieldsChanged{power: domain.Whole},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("change mismatch (-want +got):\n%s", diff)
	}

	got, _ := s.Get(artoo)
	assert.Equal(t, domain.CacheObject{
		name:   domain.String("R2-D2"),
		height: domain.Float(0.96),
		stats:  domain.CacheObject{power: domain.Int(4)},
	}, got)
}

func TestMerge_Idempotent(t *testing.T) {
	s := store.New()
	obj := domain.CacheObject{
		name: domain.String("R2-D2"),
		tags: domain.CacheList{domain.Enum("ASTROMECH"), domain.Reference{Key: luke}},
	}
	s.Merge(artoo, obj)
	s.ClearChanges()

	s.Merge(artoo, obj)
	assert.False(t, s.HasChanges())
}

func TestMerge_DoesNotAliasInput(t *testing.T) {
	s := store.New()
	obj := domain.CacheObject{stats: domain.CacheObject{power: domain.Int(1)}}
	s.Merge(artoo, obj)

	obj[stats].(domain.CacheObject)[power] = domain.Int(2)

	got, _ := s.Get(artoo)
	assert.Equal(t, domain.Int(1), got[stats].(domain.CacheObject)[power])
}

func TestMerge_IncompatibleShapesPanic(t *testing.T) {
	s := store.New()
	s.Merge(artoo, domain.CacheObject{stats: domain.CacheList{}})

	err := violation(func() {
		s.Merge(artoo, domain.CacheObject{stats: domain.CacheObject{}})
	})
	assert.ErrorIs(t, err, domain.ErrContractViolation)
}

// violation runs fn and returns the error it panicked with.
func violation(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestSet_ReplacesAndRecordsWhole(t *testing.T) {
	s := store.New()
	s.Merge(artoo, domain.CacheObject{name: domain.String("R2-D2"), height: domain.Float(0.96)})
	s.ClearChanges()

	s.Set(artoo, domain.CacheObject{name: domain.String("Artoo")})

	got, _ := s.Get(artoo)
	assert.Equal(t, domain.CacheObject{name: domain.String("Artoo")}, got)
	c, _ := s.Change(artoo)
	assert.True(t, domain.IsWhole(c))
}

func TestClear(t *testing.T) {
	s := store.New()
	s.Merge(domain.RootKey, domain.CacheObject{name: domain.String("x")})
	s.Merge(artoo, domain.CacheObject{name: domain.String("R2-D2")})

	s.Clear()

	assert.Equal(t, []domain.CacheKey{domain.RootKey}, s.Keys())
	root, _ := s.Get(domain.RootKey)
	assert.Empty(t, root)
	assert.Equal(t, []domain.CacheKey{domain.RootKey}, s.ChangedKeys())
	c, _ := s.Change(domain.RootKey)
	assert.True(t, domain.IsWhole(c))
}

func TestSnapshot_IsDeep(t *testing.T) {
	s := store.New()
	s.Merge(artoo, domain.CacheObject{stats: domain.CacheObject{power: domain.Int(1)}})

	snap := s.Snapshot()
	snap[artoo][stats].(domain.CacheObject)[power] = domain.Int(9)

	got, _ := s.Get(artoo)
	assert.Equal(t, domain.Int(1), got[stats].(domain.CacheObject)[power])
	assert.Len(t, snap, 2)
}

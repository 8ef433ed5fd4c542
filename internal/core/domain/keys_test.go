package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/core/domain"
)

func TestParseCacheKey(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.CacheKey
		wantErr bool
	}{
		{in: "ROOT_QUERY", want: domain.RootKey},
		{in: "Droid:2001", want: domain.NewEntityKey("Droid", "2001")},
		{in: "Url:https://example.com", want: domain.NewEntityKey("Url", "https://example.com")},
		{in: "Droid", wantErr: true},
		{in: ":2001", wantErr: true},
		{in: "Droid:", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseCacheKey(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidCacheKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestCacheKey_Identity(t *testing.T) {
	a := domain.NewEntityKey("Droid", "2001")

	assert.Equal(t, domain.NewEntityKey("Droid", "2001"), a)
	assert.NotEqual(t, domain.NewEntityKey("Human", "2001"), a, "ids are scoped to their typename")
	assert.False(t, a.IsRoot())
	assert.True(t, domain.RootKey.IsRoot())
	assert.Equal(t, "Droid", a.Typename())
	assert.Equal(t, "2001", a.ID())
}

func TestCacheKey_Compare(t *testing.T) {
	keys := []domain.CacheKey{
		domain.NewEntityKey("Human", "1000"),
		domain.NewEntityKey("Droid", "2001"),
		domain.RootKey,
		domain.NewEntityKey("Droid", "2000"),
	}
	slices.SortFunc(keys, domain.CacheKey.Compare)

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	assert.Equal(t, []string{"ROOT_QUERY", "Droid:2000", "Droid:2001", "Human:1000"}, names)
}

func TestCacheKey_Text(t *testing.T) {
	var k domain.CacheKey
	require.NoError(t, k.UnmarshalText([]byte("Droid:2001")))

	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Droid:2001", string(text))

	require.ErrorIs(t, k.UnmarshalText([]byte("broken")), domain.ErrInvalidCacheKey)
}

func TestFieldKey(t *testing.T) {
	t.Run("argument order does not matter", func(t *testing.T) {
		a := domain.NewFieldKey("friends", domain.Arguments{"first": domain.Int(2), "after": domain.String("x")})
		b := domain.NewFieldKey("friends", domain.Arguments{"after": domain.String("x"), "first": domain.Int(2)})
		assert.Equal(t, a, b)
		assert.Equal(t, `friends(after:"x",first:2)`, a.String())
	})

	t.Run("argument values distinguish slots", func(t *testing.T) {
		yes := domain.NewFieldKey("bar", domain.Arguments{"a": domain.Bool(true)})
		no := domain.NewFieldKey("bar", domain.Arguments{"a": domain.Bool(false)})
		plain := domain.NewFieldKey("bar", nil)

		assert.NotEqual(t, yes, no)
		assert.NotEqual(t, yes, plain)
		assert.Equal(t, "bar", yes.Name())
		assert.True(t, yes.HasArguments())
		assert.False(t, plain.HasArguments())
		assert.Equal(t, plain, domain.NewFieldKey("bar", domain.Arguments{}))
	})

	t.Run("int and float arguments stay distinct", func(t *testing.T) {
		i := domain.NewFieldKey("f", domain.Arguments{"n": domain.Int(1)})
		f := domain.NewFieldKey("f", domain.Arguments{"n": domain.Float(1)})
		assert.NotEqual(t, i, f)
		assert.Equal(t, "f(n:1.0)", f.String())
	})

	t.Run("nested arguments are canonical", func(t *testing.T) {
		k := domain.NewFieldKey("search", domain.Arguments{
			"where": domain.Object{"z": domain.Null{}, "a": domain.List{domain.Enum("JEDI"), domain.Bool(true)}},
		})
		assert.Equal(t, "search(where:{a:[JEDI,true],z:null})", k.String())
	})
}

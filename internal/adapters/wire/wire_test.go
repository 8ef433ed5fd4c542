package wire_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/adapters/wire"
	"go.trai.ch/graphcache/internal/core/domain"
)

func TestDecodeObject(t *testing.T) {
	got, err := wire.DecodeObject([]byte(`{
		"hero": {"__typename": "Droid", "id": "2001", "height": 1.72, "age": 33, "friends": [null, true]}
	}`))
	require.NoError(t, err)

	want := domain.Object{
		"hero": domain.Object{
			"__typename": domain.String("Droid"),
			"id":         domain.String("2001"),
			"height":     domain.Float(1.72),
			"age":        domain.Int(33),
			"friends":    domain.List{domain.Null{}, domain.Bool(true)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeObject() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeObject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "not an object", payload: `[1, 2]`, want: "not an object"},
		{name: "invalid json", payload: `{"a":`, want: domain.ErrPayloadDecodeFailed.Error()},
		{name: "trailing data", payload: `{"a": 1} {"b": 2}`, want: "unexpected data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wire.DecodeObject([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDecode_LargeNumbers(t *testing.T) {
	v, err := wire.Decode([]byte(`1e3`))
	require.NoError(t, err)
	assert.Equal(t, domain.Float(1000), v)

	v, err = wire.Decode([]byte(`9223372036854775807`))
	require.NoError(t, err)
	assert.Equal(t, domain.Int(9223372036854775807), v)
}

func TestFromAny_YAMLShapes(t *testing.T) {
	v, err := wire.FromAny(map[string]any{
		"count": 3,
		"big":   uint64(1) << 63,
		"enum":  domain.Enum("JEDI"),
	})
	require.NoError(t, err)

	obj := v.(domain.Object)
	assert.Equal(t, domain.Int(3), obj["count"])
	assert.Equal(t, domain.Float(float64(uint64(1)<<63)), obj["big"])
	assert.Equal(t, domain.Enum("JEDI"), obj["enum"])
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := wire.FromAny(map[string]any{"ch": make(chan int)})
	require.ErrorIs(t, err, domain.ErrPayloadDecodeFailed)
}

func TestEncode_SortedKeys(t *testing.T) {
	out, err := wire.Encode(domain.Object{
		"name":    domain.String("R2-D2"),
		"episode": domain.Enum("JEDI"),
		"age":     domain.Int(33),
		"height":  domain.Float(1.5),
		"tags":    domain.List{domain.Bool(false), domain.Null{}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":33,"episode":"JEDI","height":1.5,"name":"R2-D2","tags":[false,null]}`, string(out))
	assert.Equal(t, `{"age":33,"episode":"JEDI","height":1.5,"name":"R2-D2","tags":[false,null]}`, string(out))
}

func TestEncodeEntity(t *testing.T) {
	obj := domain.CacheObject{
		domain.NewFieldKey("hero", domain.Arguments{"episode": domain.Enum("JEDI")}): domain.Reference{
			Key: domain.NewEntityKey("Droid", "2001"),
		},
		domain.NewFieldKey("count", nil): domain.Int(2),
	}

	out, err := wire.EncodeEntity(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"count":2,"hero(episode:JEDI)":{"__ref":"Droid:2001"}}`, string(out))
}

func TestRoundTrip(t *testing.T) {
	payload := `{"a":[1,2.5,"x",null,{"b":false}]}`
	v, err := wire.DecodeObject([]byte(payload))
	require.NoError(t, err)

	out, err := wire.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestToCacheValue(t *testing.T) {
	got, err := wire.ToCacheValue(domain.Object{
		"name":   domain.String("Artoo"),
		"friend": domain.Object{"__ref": domain.String("Human:1000")},
		"tags":   domain.List{domain.Enum("A"), domain.Null{}},
	})
	require.NoError(t, err)

	want := domain.CacheObject{
		domain.NewFieldKey("name", nil):   domain.String("Artoo"),
		domain.NewFieldKey("friend", nil): domain.Reference{Key: domain.NewEntityKey("Human", "1000")},
		domain.NewFieldKey("tags", nil):   domain.CacheList{domain.Enum("A"), domain.Null{}},
	}
	assert.True(t, domain.EqualCacheValues(want, got))
}

func TestToCacheValue_InvalidReference(t *testing.T) {
	_, err := wire.ToCacheValue(domain.Object{"__ref": domain.String("nope")})
	require.ErrorIs(t, err, domain.ErrInvalidCacheKey)
}

// Package wire converts JSON payloads to and from domain values.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// RefField is the key a stored reference is rendered under.
const RefField = "__ref"

// DecodeObject decodes a JSON object into a domain.Object. Integral numbers become Int,
// anything else numeric becomes Float.
func DecodeObject(data []byte) (domain.Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(domain.Object)
	if !ok {
		return nil, zerr.Wrap(domain.ErrPayloadNotObject, "top-level JSON value is not an object")
	}
	return obj, nil
}

// Decode decodes any JSON value.
func Decode(data []byte) (domain.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPayloadDecodeFailed.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrPayloadDecodeFailed, "unexpected data after JSON value")
	}
	return FromAny(raw)
}

// FromAny converts the generic form produced by encoding/json or a YAML decoder.
func FromAny(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case nil:
		return domain.Null{}, nil
	case bool:
		return domain.Bool(v), nil
	case string:
		return domain.String(v), nil
	case json.Number:
		return fromNumber(v)
	case int:
		return domain.Int(v), nil
	case int64:
		return domain.Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return domain.Float(float64(v)), nil
		}
		return domain.Int(int64(v)), nil
	case float64:
		return domain.Float(v), nil
	case []any:
		out := make(domain.List, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case map[string]any:
		out := make(domain.Object, len(v))
		for k, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return nil, zerr.With(err, "field", k)
			}
			out[k] = ev
		}
		return out, nil
	case domain.Value:
		return v, nil
	default:
		return nil, zerr.Wrap(domain.ErrPayloadDecodeFailed, "unsupported value type")
	}
}

func fromNumber(n json.Number) (domain.Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return domain.Int(i), nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPayloadDecodeFailed, "invalid number"), "number", n.String())
	}
	return domain.Float(f), nil
}

// Encode renders a value as compact JSON with object keys sorted.
func Encode(v domain.Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

// ToAny converts a value to the generic form encoding/json marshals. Enums become strings.
func ToAny(v domain.Value) any {
	switch tv := v.(type) {
	case domain.Bool:
		return bool(tv)
	case domain.String:
		return string(tv)
	case domain.Enum:
		return string(tv)
	case domain.Int:
		return int64(tv)
	case domain.Float:
		return float64(tv)
	case domain.List:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = ToAny(e)
		}
		return out
	case domain.Object:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = ToAny(e)
		}
		return out
	default:
		return nil
	}
}

// EncodeEntity renders a stored entity. Slots are keyed by their canonical field key and
// references render as {"__ref": "<key>"}.
func EncodeEntity(obj domain.CacheObject) ([]byte, error) {
	return json.Marshal(cacheToAny(obj))
}

func cacheToAny(v domain.CacheValue) any {
	switch tv := v.(type) {
	case domain.Reference:
		return map[string]any{RefField: tv.Key.String()}
	case domain.CacheObject:
		out := make(map[string]any, len(tv))
		for fk, e := range tv {
			out[fk.String()] = cacheToAny(e)
		}
		return out
	case domain.CacheList:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = cacheToAny(e)
		}
		return out
	case domain.Bool:
		return bool(tv)
	case domain.String:
		return string(tv)
	case domain.Enum:
		return string(tv)
	case domain.Int:
		return int64(tv)
	case domain.Float:
		return float64(tv)
	default:
		return nil
	}
}

// ToCacheValue converts a value into its stored form without normalizing. Objects stay inline
// with argument-less field keys, and an object of the single key __ref becomes a Reference to
// the entity it names.
func ToCacheValue(v domain.Value) (domain.CacheValue, error) {
	switch tv := v.(type) {
	case domain.Object:
		if ref, ok := tv[RefField].(domain.String); ok && len(tv) == 1 {
			key, err := domain.ParseCacheKey(string(ref))
			if err != nil {
				return nil, err
			}
			return domain.Reference{Key: key}, nil
		}
		out := make(domain.CacheObject, len(tv))
		for k, e := range tv {
			ce, err := ToCacheValue(e)
			if err != nil {
				return nil, err
			}
			out[domain.NewFieldKey(k, nil)] = ce
		}
		return out, nil
	case domain.List:
		out := make(domain.CacheList, len(tv))
		for i, e := range tv {
			ce, err := ToCacheValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	case domain.Bool:
		return tv, nil
	case domain.String:
		return tv, nil
	case domain.Int:
		return tv, nil
	case domain.Float:
		return tv, nil
	case domain.Enum:
		return tv, nil
	default:
		return domain.Null{}, nil
	}
}

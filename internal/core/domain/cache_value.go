package domain

import (
	"maps"
	"slices"
)

// CacheValue is the stored form of a Value. Leaves are shared with Value; identifiable
// objects are replaced by a Reference and the remaining composite objects stay inline as a
// CacheObject.
type CacheValue interface {
	isCacheValue()
}

// CacheList is an ordered list of stored values.
type CacheList []CacheValue

// CacheObject is the flattened representation of one entity or inline object.
type CacheObject map[FieldKey]CacheValue

// Reference points at another stored entity.
type Reference struct {
	Key CacheKey
}

func (Bool) isCacheValue()        {}
func (String) isCacheValue()      {}
func (Int) isCacheValue()         {}
func (Float) isCacheValue()       {}
func (Enum) isCacheValue()        {}
func (Null) isCacheValue()        {}
func (CacheList) isCacheValue()   {}
func (CacheObject) isCacheValue() {}
func (Reference) isCacheValue()   {}

// EqualCacheValues reports whether two stored values are structurally equal.
// References compare by key, never by the content they point at.
func EqualCacheValues(a, b CacheValue) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case CacheList:
		bv, ok := b.(CacheList)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !EqualCacheValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case CacheObject:
		bv, ok := b.(CacheObject)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// Equal reports whether two objects hold equal values under equal keys.
func (o CacheObject) Equal(other CacheObject) bool {
	if len(o) != len(other) {
		return false
	}
	for k, v := range o {
		ov, ok := other[k]
		if !ok || !EqualCacheValues(v, ov) {
			return false
		}
	}
	return true
}

// Typename returns the stored __typename of the object, if any.
func (o CacheObject) Typename() (string, bool) {
	if tn, ok := o[NewFieldKey(TypenameField, nil)].(String); ok {
		return string(tn), true
	}
	return "", false
}

// Keys returns the object's field keys in a stable order.
func (o CacheObject) Keys() []FieldKey {
	return slices.SortedFunc(maps.Keys(o), FieldKey.Compare)
}

// Clone returns a deep copy of the object.
func (o CacheObject) Clone() CacheObject {
	if o == nil {
		return nil
	}
	out := make(CacheObject, len(o))
	for k, v := range o {
		out[k] = CloneCacheValue(v)
	}
	return out
}

// CloneCacheValue deep-copies the composite parts of v.
func CloneCacheValue(v CacheValue) CacheValue {
	switch tv := v.(type) {
	case CacheObject:
		return tv.Clone()
	case CacheList:
		out := make(CacheList, len(tv))
		for i, e := range tv {
			out[i] = CloneCacheValue(e)
		}
		return out
	default:
		return v
	}
}

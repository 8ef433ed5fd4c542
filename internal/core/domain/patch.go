package domain

// Patch is a direct, out-of-band modification of stored data.
// It is either a FieldPatch or a Transform.
type Patch interface {
	isPatch()
}

// FieldPatch descends into the named fields of an object. A name matches every stored slot
// declared under that name, whatever its arguments.
type FieldPatch map[string]Patch

// Transform replaces the current stored value with the value it returns.
type Transform func(CacheValue) CacheValue

func (FieldPatch) isPatch() {}
func (Transform) isPatch()  {}

// Set returns a Transform that unconditionally stores a copy of v.
func Set(v CacheValue) Transform {
	return func(CacheValue) CacheValue {
		return CloneCacheValue(v)
	}
}

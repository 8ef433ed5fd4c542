package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RootName is the display name of the query root entity.
const RootName = "ROOT_QUERY"

// CacheKey identifies a stored entity: a typename plus an id scoped to that typename, or the
// singleton query root (the zero CacheKey).
type CacheKey struct {
	typename InternedString
	id       InternedString
}

// RootKey is the key of the query root entity.
var RootKey = CacheKey{}

// NewEntityKey returns the key for the entity with the given typename and id.
func NewEntityKey(typename, id string) CacheKey {
	return CacheKey{
		typename: NewInternedString(typename),
		id:       NewInternedString(id),
	}
}

// ParseCacheKey parses the "Typename:id" form produced by String.
// The root name parses to RootKey.
func ParseCacheKey(s string) (CacheKey, error) {
	if s == RootName {
		return RootKey, nil
	}
	typename, id, ok := strings.Cut(s, ":")
	if !ok || typename == "" || id == "" {
		return CacheKey{}, zerr.With(zerr.Wrap(ErrInvalidCacheKey, "expected Typename:id"), "key", s)
	}
	return NewEntityKey(typename, id), nil
}

// IsRoot reports whether k is the query root.
func (k CacheKey) IsRoot() bool {
	return k == RootKey
}

// Typename returns the entity's typename, empty for the root.
func (k CacheKey) Typename() string {
	return k.typename.String()
}

// ID returns the entity's id, empty for the root.
func (k CacheKey) ID() string {
	return k.id.String()
}

// String renders the key as "Typename:id", or RootName for the root.
func (k CacheKey) String() string {
	if k.IsRoot() {
		return RootName
	}
	return k.typename.String() + ":" + k.id.String()
}

// Compare orders keys with the root first, then by typename and id.
func (k CacheKey) Compare(other CacheKey) int {
	switch {
	case k.IsRoot() && other.IsRoot():
		return 0
	case k.IsRoot():
		return -1
	case other.IsRoot():
		return 1
	}
	if c := k.typename.Compare(other.typename); c != 0 {
		return c
	}
	return k.id.Compare(other.id)
}

// MarshalText implements encoding.TextMarshaler.
func (k CacheKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CacheKey) UnmarshalText(text []byte) error {
	parsed, err := ParseCacheKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

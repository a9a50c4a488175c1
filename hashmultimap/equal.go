package hashmultimap

import (
	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/hash"
)

// Equaler may be implemented by keys and values to override the
// default '==' comparison.
type Equaler interface {
	Equal(other interface{}) bool
}

// Hasher may be implemented by keys to override the default hash. Keys
// that are Equal must return the same hash.
type Hasher interface {
	Hash() uintptr
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}

func hashOf(key interface{}, seed uintptr) uintptr {
	return hash.Any(key, seed)
}

func indexOf[V any](values []V, v V) int {
	for i, e := range values {
		if equal(e, v) {
			return i
		}
	}
	return -1
}

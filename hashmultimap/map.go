package hashmultimap // import "jsouthworth.net/go/multimap/hashmultimap"

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
)

// Map is a mutable multimap. Each key is associated with an ordered
// sequence of distinct values.
type Map[K comparable, V any] struct {
	seed       uintptr
	loadFactor float64
	count      int
	table      table[K, V]
	logger     zerolog.Logger
}

// Empty returns a new empty map with the default capacity and load
// factor and a random hash seed.
func Empty[K comparable, V any]() *Map[K, V] {
	m, err := New[K, V]()
	if err != nil {
		// The defaults are always valid.
		panic(err)
	}
	return m
}

// New returns a new empty map configured by opts. An error wrapping
// ErrInvalidConfiguration is returned if the capacity is not positive
// or the load factor is outside (0, 1].
func New[K comparable, V any](opts ...Option) (*Map[K, V], error) {
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{
		seed:       c.seed,
		loadFactor: c.loadFactor,
		table:      make(table[K, V], c.capacity),
		logger:     c.logger,
	}, nil
}

// From builds a map from a go native map. Values are added in slice
// order; repeated values in a slice are dropped.
func From[K comparable, V any](native map[K][]V, opts ...Option) (*Map[K, V], error) {
	m, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	for key, values := range native {
		for _, value := range values {
			m.Put(key, value)
		}
	}
	return m, nil
}

// Put associates value with key. It returns false, leaving the map
// unchanged, if the value is already associated with the key.
func (m *Map[K, V]) Put(key K, value V) bool {
	hash := hashOf(key, m.seed)
	i, found := m.table.find(key, hash)
	if found {
		b := m.table[i]
		if indexOf(b.values, value) >= 0 {
			return false
		}
		b.values = append(b.values, value)
		return true
	}
	m.table[i] = &bucket[K, V]{
		key:    key,
		hash:   hash,
		values: []V{value},
	}
	m.count++
	m.growIfNeeded()
	return true
}

// At returns the values associated with key in insertion order. An
// empty slice is returned if the key is not in the map.
func (m *Map[K, V]) At(key K) []V {
	b := m.bucketFor(key)
	if b == nil {
		return []V{}
	}
	out := make([]V, len(b.values))
	copy(out, b.values)
	return out
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.bucketFor(key) != nil
}

// Values returns every value in the map. Values of one key are
// contiguous and in insertion order; keys appear in table order.
func (m *Map[K, V]) Values() []V {
	out := []V{}
	for _, b := range m.table {
		if b != nil {
			out = append(out, b.values...)
		}
	}
	return out
}

// Keys returns the set of keys in the map.
func (m *Map[K, V]) Keys() mapset.Set[K] {
	out := mapset.NewThreadUnsafeSetWithSize[K](m.count)
	for _, b := range m.table {
		if b != nil {
			out.Add(b.key)
		}
	}
	return out
}

// RemoveAll removes key and all of its values from the map. It returns
// false if the key was not present.
func (m *Map[K, V]) RemoveAll(key K) bool {
	i, found := m.table.find(key, hashOf(key, m.seed))
	if !found {
		return false
	}
	m.removeSlot(i)
	return true
}

// Remove removes value from the values associated with key. The key is
// removed with its last value. Remove returns false if the key is not
// present or does not hold the value.
func (m *Map[K, V]) Remove(key K, value V) bool {
	i, found := m.table.find(key, hashOf(key, m.seed))
	if !found {
		return false
	}
	b := m.table[i]
	idx := indexOf(b.values, value)
	if idx < 0 {
		return false
	}
	if len(b.values) == 1 {
		m.removeSlot(i)
		return true
	}
	b.values = append(b.values[:idx], b.values[idx+1:]...)
	return true
}

// Length returns the number of distinct keys in the map. It does not
// count values.
func (m *Map[K, V]) Length() int {
	return m.count
}

// Capacity returns the number of slots in the table.
func (m *Map[K, V]) Capacity() int {
	return len(m.table)
}

// LoadFactor returns the ratio of occupied slots to capacity rounded
// to two decimal places.
func (m *Map[K, V]) LoadFactor() float64 {
	return loadFactorOf(m.count, len(m.table))
}

// Clear removes every key from the map. The capacity is unchanged.
func (m *Map[K, V]) Clear() {
	clear(m.table)
	m.count = 0
}

// Range calls do for each key and value pair in the map, stopping
// early if do returns false. The map must not be modified during Range.
func (m *Map[K, V]) Range(do func(key K, value V) bool) {
	for _, b := range m.table {
		if b == nil {
			continue
		}
		for _, v := range b.values {
			if !do(b.key, v) {
				return
			}
		}
	}
}

// Equal tests if two maps hold the same keys with the same value
// sequences. Capacity and hash seed are not compared. Equal implements
// Equaler which allows maps to be nested inside other maps.
func (m *Map[K, V]) Equal(o interface{}) bool {
	other, ok := o.(*Map[K, V])
	if !ok {
		return ok
	}
	if m.Length() != other.Length() {
		return false
	}
	for _, b := range m.table {
		if b == nil {
			continue
		}
		ob := other.bucketFor(b.key)
		if ob == nil || len(ob.values) != len(b.values) {
			return false
		}
		for i := range b.values {
			if !equal(b.values[i], ob.values[i]) {
				return false
			}
		}
	}
	return true
}

// String returns a string representation of the map listing every key
// value pair as <key, value>.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "[ ")
	m.Range(func(key K, value V) bool {
		fmt.Fprintf(&b, "<%v, %v> ", key, value)
		return true
	})
	fmt.Fprint(&b, "]")
	return b.String()
}

func (m *Map[K, V]) bucketFor(key K) *bucket[K, V] {
	i, found := m.table.find(key, hashOf(key, m.seed))
	if !found {
		return nil
	}
	return m.table[i]
}

func (m *Map[K, V]) removeSlot(i int) {
	m.table.remove(i)
	m.count--
}

// overloaded reports whether count keys in capacity slots is over the
// load factor or leaves no empty slot to end a probe.
func (m *Map[K, V]) overloaded(count, capacity int) bool {
	return count >= capacity || loadFactorOf(count, capacity) > m.loadFactor
}

func (m *Map[K, V]) growIfNeeded() {
	capacity := len(m.table)
	if !m.overloaded(m.count, capacity) {
		return
	}
	for m.overloaded(m.count, capacity) {
		capacity = 2*capacity + 1
	}
	m.resize(capacity)
}

// resize rehashes every bucket into a new table of the given capacity.
// Buckets move whole, so each key keeps its values in order.
func (m *Map[K, V]) resize(capacity int) {
	old := m.table
	next := make(table[K, V], capacity)
	for _, b := range old {
		if b != nil {
			next.place(b)
		}
	}
	m.table = next
	m.logger.Debug().
		Int("from", len(old)).
		Int("to", capacity).
		Int("keys", m.count).
		Msg("resized multimap table")
}

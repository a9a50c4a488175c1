package hashmultimap

import (
	"fmt"

	"jsouthworth.net/go/seq"
)

// Entry is a single key value pair of a map.
type Entry interface {
	Key() interface{}
	Value() interface{}
}

type entry struct {
	k, v interface{}
}

func (e entry) Key() interface{} {
	return e.k
}

func (e entry) Value() interface{} {
	return e.v
}

func (e entry) String() string {
	return fmt.Sprintf("<%v, %v>", e.k, e.v)
}

// Iterator provides a cursor over the key value pairs of a map in
// table order. It does not allocate. An iterator is invalidated by
// any modification of the map it came from.
type Iterator[K comparable, V any] struct {
	table table[K, V]
	slot  int
	pos   int
}

// Iterator returns an iterator positioned before the first pair.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{table: m.table}
}

// HasNext is true when there are more pairs to be iterated over.
func (i *Iterator[K, V]) HasNext() bool {
	for ; i.slot < len(i.table); i.slot, i.pos = i.slot+1, 0 {
		b := i.table[i.slot]
		if b != nil && i.pos < len(b.values) {
			return true
		}
	}
	return false
}

// Next provides the next key value pair and increments the cursor.
// HasNext must have returned true.
func (i *Iterator[K, V]) Next() (K, V) {
	if !i.HasNext() {
		panic("No such entry")
	}
	b := i.table[i.slot]
	v := b.values[i.pos]
	i.pos++
	return b.key, v
}

// Seq returns a sequence of Entry over the map's pairs in table order,
// or nil if the map is empty. The sequence is a view of the map and is
// invalidated by any modification.
func (m *Map[K, V]) Seq() seq.Sequence {
	out := pairSeqNew(m.table, 0, 0)
	if out == nil {
		return nil
	}
	return out
}

type pairSeq[K comparable, V any] struct {
	table table[K, V]
	slot  int
	pos   int
}

func pairSeqNew[K comparable, V any](t table[K, V], slot, pos int) *pairSeq[K, V] {
	for ; slot < len(t); slot, pos = slot+1, 0 {
		b := t[slot]
		if b != nil && pos < len(b.values) {
			return &pairSeq[K, V]{
				table: t,
				slot:  slot,
				pos:   pos,
			}
		}
	}
	return nil
}

func (s *pairSeq[K, V]) First() interface{} {
	b := s.table[s.slot]
	return entry{k: b.key, v: b.values[s.pos]}
}

func (s *pairSeq[K, V]) Next() seq.Sequence {
	out := pairSeqNew(s.table, s.slot, s.pos+1)
	if out == nil {
		return nil
	}
	return out
}

func (s *pairSeq[K, V]) String() string {
	return seq.ConvertToString(s)
}

package hashmultimap

import "math"

type bucket[K comparable, V any] struct {
	key    K
	hash   uintptr
	values []V
}

func (b *bucket[K, V]) matches(key K, hash uintptr) bool {
	return b.hash == hash && equal(b.key, key)
}

// table is an open addressed array of buckets. A nil slot is empty.
// The table always holds at least one empty slot so that every probe
// sequence terminates.
type table[K comparable, V any] []*bucket[K, V]

func (t table[K, V]) home(hash uintptr) int {
	return int(hash % uintptr(len(t)))
}

func (t table[K, V]) next(i int) int {
	i++
	if i == len(t) {
		return 0
	}
	return i
}

// find probes for key starting at its home slot. It returns the slot
// holding the key, or the empty slot that ended the probe.
func (t table[K, V]) find(key K, hash uintptr) (int, bool) {
	i := t.home(hash)
	for {
		b := t[i]
		switch {
		case b == nil:
			return i, false
		case b.matches(key, hash):
			return i, true
		}
		i = t.next(i)
	}
}

// place stores b in the first empty slot of its probe sequence. b's key
// must not already be present.
func (t table[K, V]) place(b *bucket[K, V]) {
	i := t.home(b.hash)
	for t[i] != nil {
		i = t.next(i)
	}
	t[i] = b
}

// remove empties slot i and shifts later members of the same probe run
// back so that no key becomes unreachable from its home slot.
func (t table[K, V]) remove(i int) {
	j := i
	for {
		j = t.next(j)
		b := t[j]
		if b == nil {
			break
		}
		if cyclicallyBetween(i, t.home(b.hash), j) {
			// b's home is after the hole, it is already reachable.
			continue
		}
		t[i] = b
		i = j
	}
	t[i] = nil
}

// cyclicallyBetween reports whether h lies in the wrapped range (i, j].
func cyclicallyBetween(i, h, j int) bool {
	if i <= j {
		return i < h && h <= j
	}
	return i < h || h <= j
}

func loadFactorOf(count, capacity int) float64 {
	return math.Round(float64(count)/float64(capacity)*100) / 100
}

// Package hashmultimap implements a mutable multimap on top of an open
// addressed hash table. Each key maps to an ordered sequence of distinct
// values. Collisions are resolved with linear probing and deleted slots
// are compacted eagerly, so no tombstones are ever left in the table.
//
// A note about Key and Value equality. Keys are hashed with the
// jsouthworth.net/go/hash library and compared with jsouthworth.net/go/dyn.
// To override the default hashing for a key type implement the
// Hash() uintptr function. To override the default equality for keys or
// values implement the Equal(other interface{}) bool function for the
// type. Equal keys must produce equal hashes. Otherwise '==' will be used
// with all its restrictions.
//
// Maps are not safe for concurrent use. Callers that share a map between
// goroutines must serialize access themselves.
package hashmultimap

package art

import "github.com/aglyzov/go-art/seqmap"

// Map adapts Tree to the seqmap contract for any encodable key type. Key
// bytes are derived once per operation; with the prefix-free keycode
// encoders a Map never reports a prefix collision.
type Map[K seqmap.Key, V any] struct {
	tree *Tree[V]
}

// NewMap returns an empty map backed by an adaptive radix tree.
func NewMap[K seqmap.Key, V any]() *Map[K, V] {
	return &Map[K, V]{tree: New[V]()}
}

// Insert adds a key-value pair, or returns seqmap.ErrKeyExists.
func (m *Map[K, V]) Insert(key K, val V) error {
	return m.tree.Insert(key.Encode(), val)
}

// Lookup returns the value stored for the key, if any.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.tree.Lookup(key.Encode())
}

// Remove deletes the key and returns its value, or seqmap.ErrNotFound.
func (m *Map[K, V]) Remove(key K) (V, error) {
	return m.tree.Remove(key.Encode())
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

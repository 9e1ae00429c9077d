package art

// leaf is the terminal node: it owns the full encoded key, not just the
// suffix below its parent, plus the stored value. The full key makes exact
// matching possible after a compressed descent and serves as the witness
// for prefix bytes that exceed the inline header capacity.
type leaf[V any] struct {
	key []byte
	val V
}

func newLeaf[V any](key []byte, val V) *leaf[V] {
	return &leaf[V]{
		key: append([]byte(nil), key...), // the tree owns its copy
		val: val,
	}
}

func (l *leaf[V]) minLeaf() *leaf[V] { return l }

package art

// Shape conversions. Each constructor keeps the old node's header,
// redistributes every child into the new representation exactly once and
// leaves the old node to the garbage collector. Transitions only ever move
// one capacity step and are triggered lazily, on the node being mutated.

func grow16[V any](old *node4[V]) *node16[V] {
	n := &node16[V]{hdr: old.hdr, size: old.size}

	copy(n.keys[:], old.keys[:old.size])
	copy(n.children[:], old.children[:old.size])

	return n
}

func grow48[V any](old *node16[V]) *node48[V] {
	n := &node48[V]{hdr: old.hdr, size: old.size}

	for i := 0; i < old.size; i++ {
		n.children[i] = old.children[i]
		n.index[old.keys[i]] = byte(i + 1)
	}

	return n
}

func grow256[V any](old *node48[V]) *node256[V] {
	n := &node256[V]{hdr: old.hdr}

	for b := 0; b < len(old.index); b++ {
		if i := old.index[b]; i != 0 {
			n.insert(byte(b), old.children[i-1])
		}
	}

	return n
}

func shrink4[V any](old *node16[V]) *node4[V] {
	if old.size > 4 {
		panic("art: shrinking an overfull node16")
	}

	n := &node4[V]{hdr: old.hdr, size: old.size}

	copy(n.keys[:], old.keys[:old.size])
	copy(n.children[:], old.children[:old.size])

	return n
}

// shrink16 walks the index table in ascending byte order, so the rebuilt
// parallel arrays come out sorted.
func shrink16[V any](old *node48[V]) *node16[V] {
	if old.size > 16 {
		panic("art: shrinking an overfull node48")
	}

	n := &node16[V]{hdr: old.hdr}

	for b := 0; b < len(old.index); b++ {
		if i := old.index[b]; i != 0 {
			n.keys[n.size] = byte(b)
			n.children[n.size] = old.children[i-1]
			n.size++
		}
	}

	return n
}

func shrink48[V any](old *node256[V]) *node48[V] {
	if old.occupancy() > 48 {
		panic("art: shrinking an overfull node256")
	}

	n := &node48[V]{hdr: old.hdr}

	old.walk(func(b byte, child handle[V]) bool {
		n.children[n.size] = child
		n.index[b] = byte(n.size + 1)
		n.size++

		return true
	})

	return n
}

package art

// node16 is the second smallest shape; same sorted parallel-array layout as
// node4, scans stay linear.
type node16[V any] struct {
	hdr      header
	size     int
	keys     [16]byte
	children [16]handle[V]
}

func (n *node16[V]) header() *header    { return &n.hdr }
func (n *node16[V]) occupancy() int     { return n.size }
func (n *node16[V]) isFull() bool       { return n.size == len(n.keys) }
func (n *node16[V]) isShrinkable() bool { return n.size <= 4 }

func (n *node16[V]) minLeaf() *leaf[V] {
	if n.size == 0 {
		return nil
	}

	return n.children[0].minLeaf()
}

func (n *node16[V]) insert(b byte, child handle[V]) bool {
	idx := 0
	for ; idx < n.size; idx++ {
		if b == n.keys[idx] {
			return false
		}
		if b < n.keys[idx] {
			break
		}
	}

	if n.isFull() {
		panic("art: insert into a full node16")
	}

	shiftInsert(n.keys[:n.size+1], idx, b)
	shiftInsert(n.children[:n.size+1], idx, child)
	n.size++

	return true
}

func (n *node16[V]) child(b byte) handle[V] {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			return n.children[i]
		}
	}

	return nil
}

func (n *node16[V]) childSlot(b byte) *handle[V] {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}

	return nil
}

func (n *node16[V]) update(b byte, child handle[V]) (handle[V], bool) {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			old := n.children[i]
			n.children[i] = child

			return old, true
		}
	}

	return nil, false
}

func (n *node16[V]) remove(b byte) (handle[V], bool) {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			shiftRemove(n.keys[:n.size], i)
			child := shiftRemove(n.children[:n.size], i)
			n.size--

			return child, true
		}
	}

	return nil, false
}

func (n *node16[V]) walk(visit func(b byte, child handle[V]) bool) {
	for i := 0; i < n.size; i++ {
		if !visit(n.keys[i], n.children[i]) {
			return
		}
	}
}

func (n *node16[V]) grow() inner[V]   { return grow48(n) }
func (n *node16[V]) shrink() inner[V] { return shrink4(n) }

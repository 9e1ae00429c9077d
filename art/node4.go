package art

// node4 is the minimum branching shape: up to 4 children in a pair of
// parallel arrays kept sorted by key byte with shift-inserts.
type node4[V any] struct {
	hdr      header
	size     int
	keys     [4]byte
	children [4]handle[V]
}

func (n *node4[V]) header() *header { return &n.hdr }
func (n *node4[V]) occupancy() int  { return n.size }
func (n *node4[V]) isFull() bool    { return n.size == len(n.keys) }

// node4 is the smallest shape, it never shrinks.
func (n *node4[V]) isShrinkable() bool { return false }

func (n *node4[V]) minLeaf() *leaf[V] {
	if n.size == 0 {
		return nil
	}

	return n.children[0].minLeaf()
}

func (n *node4[V]) insert(b byte, child handle[V]) bool {
	idx := 0
	for ; idx < n.size; idx++ {
		if b == n.keys[idx] {
			return false // taken, the caller keeps the child
		}
		if b < n.keys[idx] {
			break
		}
	}

	if n.isFull() {
		panic("art: insert into a full node4")
	}

	shiftInsert(n.keys[:n.size+1], idx, b)
	shiftInsert(n.children[:n.size+1], idx, child)
	n.size++

	return true
}

func (n *node4[V]) child(b byte) handle[V] {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			return n.children[i]
		}
	}

	return nil
}

func (n *node4[V]) childSlot(b byte) *handle[V] {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}

	return nil
}

func (n *node4[V]) update(b byte, child handle[V]) (handle[V], bool) {
	for i := 0; i < n.size; i++ {
		if n.keys[i] == b {
			old := n.children[i]
			n.children[i] = child

			return old, true
		}
	}

	return nil, false
}

func (n *node4[V]) remove(b byte) (handle[V], bool) {
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

func (n *node4[V]) walk(visit func(b byte, child handle[V]) bool) {
	for i := 0; i < n.size; i++ {
		if !visit(n.keys[i], n.children[i]) {
			return
		}
	}
}

func (n *node4[V]) grow() inner[V]   { return grow16(n) }
func (n *node4[V]) shrink() inner[V] { panic("art: node4 cannot be shrunk") }

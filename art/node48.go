package art

// node48 routes a key byte through a 256-entry index table into a compact
// 48-wide child array. Table entries are 1-based slot numbers, so the zero
// value of the table already means "absent" everywhere.
type node48[V any] struct {
	hdr      header
	size     int
	index    [256]byte
	children [48]handle[V]
}

func (n *node48[V]) header() *header    { return &n.hdr }
func (n *node48[V]) occupancy() int     { return n.size }
func (n *node48[V]) isFull() bool       { return n.size == len(n.children) }
func (n *node48[V]) isShrinkable() bool { return n.size <= 16 }

func (n *node48[V]) minLeaf() *leaf[V] {
	for b := 0; b < len(n.index); b++ {
		if i := n.index[b]; i != 0 {
			return n.children[i-1].minLeaf()
		}
	}

	return nil
}

func (n *node48[V]) insert(b byte, child handle[V]) bool {
	if n.index[b] != 0 {
		return false
	}

	if n.isFull() {
		panic("art: insert into a full node48")
	}

	n.children[n.size] = child
	n.index[b] = byte(n.size + 1)
	n.size++

	return true
}

func (n *node48[V]) child(b byte) handle[V] {
	i := n.index[b]
	if i == 0 {
		return nil
	}

	return n.children[i-1]
}

func (n *node48[V]) childSlot(b byte) *handle[V] {
	i := n.index[b]
	if i == 0 {
		return nil
	}

	return &n.children[i-1]
}

func (n *node48[V]) update(b byte, child handle[V]) (handle[V], bool) {
	i := n.index[b]
	if i == 0 {
		return nil, false
	}

	old := n.children[i-1]
	n.children[i-1] = child

	return old, true
}

// remove detaches the child under b. The hole in the compact array is
// filled with the last child, whose index entry is re-pointed, so the
// array stays gap-free.
func (n *node48[V]) remove(b byte) (handle[V], bool) {
	i := n.index[b]
	if i == 0 {
		return nil, false
	}

	var (
		slot  = int(i) - 1
		last  = n.size - 1
		child = n.children[slot]
	)

	if slot != last {
		n.children[slot] = n.children[last]

		for c := 0; c < len(n.index); c++ {
			if n.index[c] == byte(last+1) {
				n.index[c] = i
				break
			}
		}
	}

	n.children[last] = nil
	n.index[b] = 0
	n.size--

	return child, true
}

func (n *node48[V]) walk(visit func(b byte, child handle[V]) bool) {
	for b := 0; b < len(n.index); b++ {
		if i := n.index[b]; i != 0 {
			if !visit(byte(b), n.children[i-1]) {
				return
			}
		}
	}
}

func (n *node48[V]) grow() inner[V]   { return grow256(n) }
func (n *node48[V]) shrink() inner[V] { return shrink16(n) }

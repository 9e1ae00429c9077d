package art

// handle is the tagged child reference used throughout the tree: a nil
// handle means "absent", a non-nil handle addresses either a *leaf or one
// of the four branching shapes. The interface value itself carries the type
// tag, so kind discrimination is an ordinary type switch and an invalid tag
// is unrepresentable.
type handle[V any] interface {
	// minLeaf returns the leaf with the smallest key reachable below the
	// handle (the handle itself for a leaf).
	minLeaf() *leaf[V]
}

// inner is the operation contract shared by the four branching shapes.
// insert, update and remove report occupancy conflicts to the caller
// instead of resolving them; growing a full node is the engine's job.
type inner[V any] interface {
	handle[V]

	header() *header
	occupancy() int
	isFull() bool
	isShrinkable() bool

	// insert adds child under the key byte b; it returns false if b is
	// taken, leaving the node untouched and the child with the caller.
	insert(b byte, child handle[V]) bool

	// child returns the handle stored under b, or nil.
	child(b byte) handle[V]

	// childSlot returns the addressable slot holding the child under b, or
	// nil. The pointer stays valid until the next mutation of the node.
	childSlot(b byte) *handle[V]

	// update replaces the child under b and returns the previous handle;
	// it reports false if b has no child.
	update(b byte, child handle[V]) (handle[V], bool)

	// remove detaches and returns the child under b.
	remove(b byte) (handle[V], bool)

	// walk visits the children in ascending key-byte order until the visit
	// func returns false.
	walk(visit func(b byte, child handle[V]) bool)

	// grow rebuilds the node one capacity step up, shrink one step down.
	// Growing node256 or shrinking node4 is a programming error and panics.
	grow() inner[V]
	shrink() inner[V]
}

// matchPrefix compares key[depth:] against the compressed path of n and
// returns how many prefix bytes matched. The inline part is compared
// directly; bytes beyond prefixCap are checked against the minimum leaf
// below n - every key below the node shares the prefix by construction, so
// any leaf is a valid witness. The node is not mutated.
func matchPrefix[V any](n inner[V], key []byte, depth int) int {
	var (
		hdr    = n.header()
		length = int(hdr.length)
	)

	for i := 0; i < hdr.inlineLen(); i++ {
		if depth+i >= len(key) || key[depth+i] != hdr.inline[i] {
			return i
		}
	}

	if length > prefixCap {
		wit := n.minLeaf()
		if wit == nil {
			panic("art: long prefix with no leaf witness below")
		}

		for i := prefixCap; i < length; i++ {
			if depth+i >= len(key) || depth+i >= len(wit.key) || key[depth+i] != wit.key[depth+i] {
				return i
			}
		}
	}

	return length
}

// shiftInsert moves s[idx:] one slot right, dropping the last element, and
// puts v at idx. The caller extends the slice over a free trailing slot
// first.
func shiftInsert[T any](s []T, idx int, v T) {
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
}

// shiftRemove takes out s[idx], keeps the slice compact and zeroes the
// freed trailing slot.
func shiftRemove[T any](s []T, idx int) T {
	var zero T

	v := s[idx]
	copy(s[idx:], s[idx+1:])
	s[len(s)-1] = zero

	return v
}

package art

import (
	"bytes"

	"github.com/aglyzov/go-art/seqmap"
)

// Tree is an adaptive radix tree over raw byte keys.
//
// The root is preallocated as a node256 with an empty prefix and stays at
// the maximum shape for the life of the tree: it is never grown, shrunk or
// merged away, so it can always accept a child.
type Tree[V any] struct {
	root handle[V]
	size int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{root: &node256[V]{}}
}

// Len returns the number of stored keys.
func (t *Tree[V]) Len() int { return t.size }

// Insert stores val under key. It returns seqmap.ErrKeyExists if the key
// is already present, and seqmap.ErrPrefixCollision if the key is a strict
// prefix of a stored key or vice versa (an empty key always collides - the
// root consumes no bytes). The tree is unchanged on error.
func (t *Tree[V]) Insert(key []byte, val V) error {
	var (
		slot  = &t.root
		depth = 0
	)

	for {
		if lf, ok := (*slot).(*leaf[V]); ok {
			return t.splitLeaf(slot, lf, key, depth, val)
		}

		var (
			node    = (*slot).(inner[V])
			length  = int(node.header().length)
			matched = matchPrefix(node, key, depth)
		)

		if matched < length {
			return t.splitPrefix(slot, node, key, depth, matched, val)
		}

		depth += length
		if depth >= len(key) {
			// the key ends at a branching point
			return seqmap.ErrPrefixCollision
		}

		next := node.childSlot(key[depth])
		if next == nil {
			// insertion point found
			if node.isFull() {
				node = node.grow()
				*slot = node
			}

			if !node.insert(key[depth], newLeaf(key, val)) {
				panic("art: free slot vanished during insert")
			}
			t.size++

			return nil
		}

		depth++
		slot = next
	}
}

// splitLeaf replaces an existing leaf with a node4 holding the old leaf
// and the new key below their shared path.
func (t *Tree[V]) splitLeaf(slot *handle[V], lf *leaf[V], key []byte, depth int, val V) error {
	common := depth
	for common < len(key) && common < len(lf.key) && key[common] == lf.key[common] {
		common++
	}

	switch {
	case common == len(key) && common == len(lf.key):
		return seqmap.ErrKeyExists
	case common == len(key) || common == len(lf.key):
		// one key is a strict prefix of the other: no byte to branch on
		return seqmap.ErrPrefixCollision
	}

	branch := &node4[V]{}
	branch.hdr.setPrefix(key[depth:common])
	branch.insert(lf.key[common], lf)
	branch.insert(key[common], newLeaf(key, val))

	*slot = branch
	t.size++

	return nil
}

// splitPrefix splits the compressed path of node at the diverging byte: a
// new node4 takes over the matched part of the path, the old node keeps
// the remainder minus the byte that now keys it under the new branch.
func (t *Tree[V]) splitPrefix(slot *handle[V], node inner[V], key []byte, depth, matched int, val V) error {
	if depth+matched >= len(key) {
		return seqmap.ErrPrefixCollision
	}

	// the witness leaf spells out the full old path, including the bytes
	// beyond the inline capacity
	wit := node.minLeaf()
	if wit == nil {
		panic("art: branching node with no leaf below")
	}

	branch := &node4[V]{}
	branch.hdr.setPrefix(key[depth : depth+matched])

	length := int(node.header().length)
	node.header().setPrefix(wit.key[depth+matched+1 : depth+length])

	branch.insert(wit.key[depth+matched], node)
	branch.insert(key[depth+matched], newLeaf(key, val))

	*slot = branch
	t.size++

	return nil
}

// Lookup returns the value stored under key, if any. The descent requires
// an exact child at every branching point; the final leaf comparison
// verifies the full key, covering prefix bytes that were never stored
// inline.
func (t *Tree[V]) Lookup(key []byte) (V, bool) {
	var (
		zero  V
		cur   = t.root
		depth = 0
	)

	for {
		if lf, ok := cur.(*leaf[V]); ok {
			if bytes.Equal(lf.key, key) {
				return lf.val, true
			}

			return zero, false
		}

		node := cur.(inner[V])
		if matchPrefix(node, key, depth) < int(node.header().length) {
			return zero, false
		}

		depth += int(node.header().length)
		if depth >= len(key) {
			return zero, false
		}

		next := node.child(key[depth])
		if next == nil {
			return zero, false
		}

		depth++
		cur = next
	}
}

// Remove deletes key and returns its value, or seqmap.ErrNotFound. After
// the leaf is detached its parent is shrunk one shape down when occupancy
// allows, and a parent left with a single child is merged with that child
// to keep compressed paths maximal. The root is exempt from both.
func (t *Tree[V]) Remove(key []byte) (V, error) {
	var (
		zero  V
		slot  = &t.root
		depth = 0
	)

	for {
		node := (*slot).(inner[V])
		if matchPrefix(node, key, depth) < int(node.header().length) {
			return zero, seqmap.ErrNotFound
		}

		depth += int(node.header().length)
		if depth >= len(key) {
			return zero, seqmap.ErrNotFound
		}

		b := key[depth]

		switch child := node.child(b).(type) {
		case nil:
			return zero, seqmap.ErrNotFound

		case *leaf[V]:
			if !bytes.Equal(child.key, key) {
				return zero, seqmap.ErrNotFound
			}

			node.remove(b)
			t.size--
			t.compact(slot, node)

			return child.val, nil

		default:
			depth++
			slot = node.childSlot(b)
		}
	}
}

// compact restores the radix invariants on node after a removal: a node
// down to one child is merged with it, a node at the smaller shape's safe
// threshold is shrunk.
func (t *Tree[V]) compact(slot *handle[V], node inner[V]) {
	if slot == &t.root {
		return
	}

	if node.occupancy() == 1 {
		var (
			link     byte
			survivor handle[V]
		)

		node.walk(func(b byte, child handle[V]) bool {
			link, survivor = b, child

			return false
		})

		// a surviving leaf owns its full key and needs no header surgery;
		// a surviving inner node inherits the whole parent edge
		if child, ok := survivor.(inner[V]); ok {
			child.header().prepend(node.header(), link)
		}
		*slot = survivor

		return
	}

	if node.isShrinkable() {
		*slot = node.shrink()
	}
}

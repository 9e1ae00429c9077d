package art

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// node256 is the maximum shape: a direct byte-indexed child array plus a
// 256-bit occupancy bitmap. Occupancy is derived from the bitmap with a
// popcount instead of being counted separately.
type node256[V any] struct {
	hdr      header
	bitmap   [4]uint64
	children [256]handle[V]
}

func (n *node256[V]) header() *header { return &n.hdr }

func (n *node256[V]) occupancy() int {
	return int(popcount.CountSlice(n.bitmap[:]))
}

func (n *node256[V]) isFull() bool       { return n.occupancy() == len(n.children) }
func (n *node256[V]) isShrinkable() bool { return n.occupancy() <= 48 }

func (n *node256[V]) has(b byte) bool {
	return n.bitmap[b>>6]&(1<<(b&63)) != 0
}

func (n *node256[V]) minLeaf() *leaf[V] {
	for w, bm := range n.bitmap {
		if bm != 0 {
			b := w<<6 + bits.TrailingZeros64(bm)

			return n.children[b].minLeaf()
		}
	}

	return nil
}

func (n *node256[V]) insert(b byte, child handle[V]) bool {
	if n.has(b) {
		return false
	}

	n.bitmap[b>>6] |= 1 << (b & 63)
	n.children[b] = child

	return true
}

func (n *node256[V]) child(b byte) handle[V] {
	if !n.has(b) {
		return nil
	}

	return n.children[b]
}

func (n *node256[V]) childSlot(b byte) *handle[V] {
	if !n.has(b) {
		return nil
	}

	return &n.children[b]
}

func (n *node256[V]) update(b byte, child handle[V]) (handle[V], bool) {
	if !n.has(b) {
		return nil, false
	}

	old := n.children[b]
	n.children[b] = child

	return old, true
}

func (n *node256[V]) remove(b byte) (handle[V], bool) {
	if !n.has(b) {
		return nil, false
	}

	child := n.children[b]
	n.children[b] = nil
	n.bitmap[b>>6] &^= 1 << (b & 63)

	return child, true
}

func (n *node256[V]) walk(visit func(b byte, child handle[V]) bool) {
	for w, bm := range n.bitmap {
		for bm != 0 {
			b := w<<6 + bits.TrailingZeros64(bm)
			if !visit(byte(b), n.children[b]) {
				return
			}

			bm &= bm - 1
		}
	}
}

func (n *node256[V]) grow() inner[V]   { panic("art: node256 cannot be grown") }
func (n *node256[V]) shrink() inner[V] { return shrink48(n) }

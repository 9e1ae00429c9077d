package art

import (
	"fmt"
	"strings"
)

// Dump renders the tree structure for debugging: one line per node with its
// shape, occupancy and prefix, children indented below their key byte.
func (t *Tree[V]) Dump() string {
	var buf strings.Builder

	dumpHandle(&buf, t.root, 0)

	return buf.String()
}

func dumpHandle[V any](buf *strings.Builder, h handle[V], depth int) {
	switch n := h.(type) {
	case *leaf[V]:
		fmt.Fprintf(buf, "leaf key=%q val=%v\n", n.key, n.val)

	default:
		var (
			node = h.(inner[V])
			hdr  = node.header()
		)

		fmt.Fprintf(buf, "%s occ=%d prefix=%q", kindOf(h), node.occupancy(), hdr.inline[:hdr.inlineLen()])
		if hdr.length > prefixCap {
			fmt.Fprintf(buf, "+%d", hdr.length-prefixCap)
		}
		buf.WriteByte('\n')

		node.walk(func(b byte, child handle[V]) bool {
			fmt.Fprintf(buf, "%s%02x: ", strings.Repeat("  ", depth+1), b)
			dumpHandle(buf, child, depth+1)

			return true
		})
	}
}

func kindOf[V any](h handle[V]) string {
	switch h.(type) {
	case *leaf[V]:
		return "leaf"
	case *node4[V]:
		return "node4"
	case *node16[V]:
		return "node16"
	case *node48[V]:
		return "node48"
	case *node256[V]:
		return "node256"
	default:
		return "unknown"
	}
}

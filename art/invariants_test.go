package art

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the structural invariants of the whole tree:
// occupancy counters, child ordering, shape capacities, maximal compressed
// paths and prefix/witness agreement.
func checkInvariants[V any](t *testing.T, tr *Tree[V]) {
	t.Helper()

	require.NotNil(t, tr.root)
	require.Equal(t, "node256", kindOf(tr.root)) // the root never changes shape

	total := checkHandle(t, tr.root, 0, true)
	require.Equal(t, tr.Len(), total, "stored leaves vs Len")
}

func checkHandle[V any](t *testing.T, h handle[V], depth int, isRoot bool) int {
	t.Helper()

	if lf, ok := h.(*leaf[V]); ok {
		require.GreaterOrEqual(t, len(lf.key), depth, "leaf key shorter than its depth")

		return 1
	}

	var (
		node  = h.(inner[V])
		hdr   = node.header()
		prev  = -1
		count int
		total int
	)

	node.walk(func(b byte, child handle[V]) bool {
		require.NotNil(t, child)
		require.Greater(t, int(b), prev, "walk must ascend without duplicates")
		prev = int(b)

		count++
		total += checkHandle(t, child, depth+int(hdr.length)+1, false)

		return true
	})

	require.Equal(t, count, node.occupancy(), "occupancy vs reachable children")
	require.LessOrEqual(t, count, capacityOf(h))

	if isRoot {
		require.EqualValues(t, 0, hdr.length, "the root compresses no path")
	} else {
		// a single-child internal node should have been merged away
		require.GreaterOrEqual(t, count, 2, "redundant internal node")
	}

	// the inline prefix must agree with any leaf below the node
	if wit := node.minLeaf(); wit != nil {
		require.GreaterOrEqual(t, len(wit.key), depth+int(hdr.length)+1)
		require.Equal(t,
			string(wit.key[depth:depth+hdr.inlineLen()]),
			string(hdr.inline[:hdr.inlineLen()]),
			"inline prefix vs witness leaf")
	}

	return total
}

func capacityOf[V any](h handle[V]) int {
	switch h.(type) {
	case *node4[V]:
		return 4
	case *node16[V]:
		return 16
	case *node48[V]:
		return 48
	case *node256[V]:
		return 256
	default:
		return 0
	}
}

// Package art implements an Adaptive Radix Tree (ART): an ordered map over
// raw byte keys with path compression and capacity-adaptive node shapes.
//
// A tree consists of branching nodes and leaves. Every branching node picks
// one of four physical shapes depending on how many children it has:
//
//	shape    capacity  representation
//	-----    --------  ---------------------------------------------
//	node4        4     sorted key array + parallel child array
//	node16      16     sorted key array + parallel child array
//	node48      48     256-entry byte->slot table + compact child array
//	node256    256     direct byte-indexed child array + bitmap
//
// A node that overflows its shape is rebuilt one step up (4->16->48->256);
// a node whose occupancy falls to the safe threshold of the smaller shape
// is rebuilt one step down. Runs of single-child nodes are collapsed into a
// per-node prefix (path compression): the first 12 prefix bytes are stored
// inline in the node header, longer prefixes are re-verified lazily against
// a leaf below the node, since every leaf stores its full key.
//
// Example tree holding "romane", "romanus" and "rubens" (the root is a
// fixed node256):
//
//	[node256] -- 'r' --> [node4 pfx=""] --+-- 'o' --> [node4 pfx="man"] --+-- 'e' --> [leaf "romane"]
//	                                      |                               |
//	                                      |                               `-- 'u' --> [leaf "romanus"]
//	                                      |
//	                                      `-- 'u' --> [leaf "rubens"]
//
// Tree operates on raw []byte keys and reports a strict-prefix collision
// ("roman" vs "romane") as an explicit error. Map wraps Tree behind the
// seqmap contract; together with the prefix-free keycode encodings it makes
// such collisions impossible.
//
// Neither Tree nor Map is safe for concurrent use.
package art

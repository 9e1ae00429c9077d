package art

// prefixCap is how many compressed-path bytes a header stores inline.
// Longer prefixes keep only their first prefixCap bytes inline; the rest is
// re-verified on demand against a leaf below the node (see matchPrefix).
const prefixCap = 12

// header holds the compressed path shared by every key under a node: a
// bounded inline buffer plus the logical prefix length, which may exceed
// the buffer.
type header struct {
	length uint32
	inline [prefixCap]byte
}

// setPrefix replaces the compressed path with pre.
func (h *header) setPrefix(pre []byte) {
	h.length = uint32(len(pre))

	n := copy(h.inline[:], pre)
	for ; n < prefixCap; n++ {
		h.inline[n] = 0
	}
}

// inlineLen returns the number of valid bytes in the inline buffer.
func (h *header) inlineLen() int {
	if h.length < prefixCap {
		return int(h.length)
	}

	return prefixCap
}

// prepend extends the path at the front with the parent's path plus the
// byte that linked this node under the parent. Used when a single-child
// parent is merged away: the child inherits the whole edge.
func (h *header) prepend(parent *header, link byte) {
	var (
		buf  [prefixCap]byte
		n    int
		plen = int(parent.length)
	)

	for i := 0; i < plen && n < prefixCap; i++ {
		buf[n] = parent.inline[i]
		n++
	}

	if n < prefixCap && n == plen {
		buf[n] = link
		n++
	}

	for i := 0; i < int(h.length) && n < prefixCap; i++ {
		buf[n] = h.inline[i]
		n++
	}

	h.inline = buf
	h.length += uint32(plen) + 1
}

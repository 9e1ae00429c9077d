package art

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-art/seqmap"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tr := New[int]()

	require.NotNil(t, tr)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, "node256", kindOf(tr.root)) // the root is preallocated at the maximum shape
}

func TestInsertLookup(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		keys = []string{"romane", "romanus", "rubens", "ruber", "rubicon", "rubicundus"}
	)

	for i, key := range keys {
		require.NoError(t, tr.Insert([]byte(key), i))
	}
	require.Equal(t, len(keys), tr.Len())

	for i, key := range keys {
		val, ok := tr.Lookup([]byte(key))
		require.True(t, ok, "key %q", key)
		assert.Equal(t, i, val)
	}

	for _, key := range []string{"", "r", "rom", "romanes", "rubensx", "z"} {
		_, ok := tr.Lookup([]byte(key))
		assert.False(t, ok, "key %q", key)
	}

	checkInvariants(t, tr)
}

func TestInsertExisting(t *testing.T) {
	t.Parallel()

	tr := New[int]()

	require.NoError(t, tr.Insert([]byte("aa"), 1))
	assert.ErrorIs(t, tr.Insert([]byte("aa"), 2), seqmap.ErrKeyExists)

	val, ok := tr.Lookup([]byte("aa"))
	require.True(t, ok)
	assert.Equal(t, 1, val) // the old value survives a rejected insert
	assert.Equal(t, 1, tr.Len())
}

func TestInsertPrefixCollision(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name   string
		Stored []string
		Key    string
	}{
		{"empty key", []string{"a"}, ""},
		{"shorter than a leaf", []string{"romane"}, "roman"},
		{"extends a leaf", []string{"romane"}, "romanesque"},
		{"ends at a branch", []string{"ab", "ac"}, "a"},
		{"ends inside a prefix", []string{"romane", "romanus"}, "rom"},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			tr := New[int]()
			for i, key := range tcase.Stored {
				require.NoError(t, tr.Insert([]byte(key), i))
			}

			assert.ErrorIs(t, tr.Insert([]byte(tcase.Key), 99), seqmap.ErrPrefixCollision)
			assert.Equal(t, len(tcase.Stored), tr.Len())

			for i, key := range tcase.Stored {
				val, ok := tr.Lookup([]byte(key))
				require.True(t, ok)
				assert.Equal(t, i, val)
			}
		})
	}
}

func TestGrowNode4ToNode16(t *testing.T) {
	t.Parallel()

	tr := New[int]()

	// 5 keys below one branching point overflow a node4
	for b := 0; b < 5; b++ {
		require.NoError(t, tr.Insert([]byte{'k', byte(b)}, b))
	}

	branch := tr.root.(*node256[int]).child('k')
	require.Equal(t, "node16", kindOf(branch))
	assert.Equal(t, 5, branch.(inner[int]).occupancy())

	for b := 0; b < 5; b++ {
		val, ok := tr.Lookup([]byte{'k', byte(b)})
		require.True(t, ok)
		assert.Equal(t, b, val)
	}

	checkInvariants(t, tr)
}

// keys sharing a 20-byte prefix and differing in the last byte, so one
// branching node below the root takes all of them.
func longPrefixKey(b byte) []byte {
	return append([]byte("shared/common/prefix"), b)
}

func TestGrowAllTransitions(t *testing.T) {
	t.Parallel()

	var (
		tr     = New[int]()
		stages = []struct {
			Count int
			Kind  string
		}{
			{4, "node4"},
			{16, "node16"},
			{48, "node48"},
			{256, "node256"},
		}
		inserted int
	)

	for _, stage := range stages {
		for ; inserted < stage.Count; inserted++ {
			require.NoError(t, tr.Insert(longPrefixKey(byte(inserted)), inserted))
		}

		branch := tr.root.(*node256[int]).child('s')
		require.Equal(t, stage.Kind, kindOf(branch), "after %d inserts", inserted)
		require.Equal(t, inserted, branch.(inner[int]).occupancy())

		// every key still resolves at every stage
		for i := 0; i < inserted; i++ {
			val, ok := tr.Lookup(longPrefixKey(byte(i)))
			require.True(t, ok, "key %d after %d inserts", i, inserted)
			require.Equal(t, i, val)
		}

		checkInvariants(t, tr)
	}
}

func TestLongPrefixBeyondInline(t *testing.T) {
	t.Parallel()

	var (
		tr = New[int]()
		k1 = []byte("abcdefghijklmnop") // shared prefix of 15 bytes > prefixCap
		k2 = []byte("abcdefghijklmnoq")
	)

	require.NoError(t, tr.Insert(k1, 1))
	require.NoError(t, tr.Insert(k2, 2))

	// the root consumes 'a', the rest of the shared run is one compressed edge
	branch := tr.root.(*node256[int]).child('a').(inner[int])
	require.EqualValues(t, 14, branch.header().length)

	val, ok := tr.Lookup(k1)
	require.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = tr.Lookup(k2)
	require.True(t, ok)
	assert.Equal(t, 2, val)

	_, ok = tr.Lookup([]byte("abcdefghijklmnor"))
	assert.False(t, ok)

	// diverge inside the lazily verified part of the prefix
	k3 := []byte("abcdefghijklmXop")
	require.NoError(t, tr.Insert(k3, 3))

	for i, key := range [][]byte{k1, k2, k3} {
		val, ok := tr.Lookup(key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, i+1, val)
	}

	checkInvariants(t, tr)
}

func TestLookupWrongTurnBeyondInline(t *testing.T) {
	t.Parallel()

	var (
		tr = New[int]()
		k1 = []byte("abcdefghijklmnop")
		k2 = []byte("abcdefghijklmnoq")
	)

	require.NoError(t, tr.Insert(k1, 1))
	require.NoError(t, tr.Insert(k2, 2))

	// matches the 12 inline bytes but not the lazily verified remainder
	_, ok := tr.Lookup([]byte("abcdefghijklmZYp"))
	assert.False(t, ok)
}

func TestInsertBinaryKeys(t *testing.T) {
	t.Parallel()

	tr := New[string]()

	var keys [][]byte
	for hi := 0; hi < 8; hi++ {
		for lo := 0; lo < 8; lo++ {
			keys = append(keys, []byte{0x00, byte(hi), byte(lo), 0xff})
		}
	}

	for i, key := range keys {
		require.NoError(t, tr.Insert(key, fmt.Sprint(i)))
	}

	for i, key := range keys {
		val, ok := tr.Lookup(key)
		require.True(t, ok, "key %x", key)
		assert.Equal(t, fmt.Sprint(i), val)
	}

	checkInvariants(t, tr)
}

func TestInsertOwnsKey(t *testing.T) {
	t.Parallel()

	var (
		tr  = New[int]()
		key = []byte("mutable")
	)

	require.NoError(t, tr.Insert(key, 1))
	key[0] = 'X' // the caller may reuse its buffer

	_, ok := tr.Lookup([]byte("Xutable"))
	assert.False(t, ok)

	val, ok := tr.Lookup([]byte("mutable"))
	require.True(t, ok)
	assert.Equal(t, 1, val)
}

func TestDump(t *testing.T) {
	t.Parallel()

	tr := New[int]()

	require.NoError(t, tr.Insert([]byte("romane"), 1))
	require.NoError(t, tr.Insert([]byte("romanus"), 2))

	dump := tr.Dump()

	assert.Contains(t, dump, "node256")
	assert.Contains(t, dump, "node4")
	assert.Contains(t, dump, `leaf key="romane" val=1`)
	assert.Contains(t, dump, `leaf key="romanus" val=2`)
}

// Package seqmap defines the sequential (single-writer) map contract shared
// by the ordered map implementations in this module.
//
// A Map associates encoded byte keys with opaque values. Implementations are
// not safe for concurrent use; callers that share a Map across goroutines
// must serialize access themselves.
package seqmap

import "errors"

var (
	// ErrKeyExists is returned by Insert when the key is already present.
	// The map is left unchanged and the caller keeps the value.
	ErrKeyExists = errors.New("seqmap: key already exists")

	// ErrNotFound is returned by Remove when the key is absent.
	ErrNotFound = errors.New("seqmap: key not found")

	// ErrPrefixCollision is returned by implementations that cannot store a
	// key which is a strict prefix of an existing key (or vice versa). It is
	// unreachable through the keycode encoders, which produce prefix-free
	// byte sequences.
	ErrPrefixCollision = errors.New("seqmap: key is a strict prefix of another key")
)

// Key is the encoding capability consumed by map implementations: equal keys
// must encode to equal byte sequences, and the byte-lexicographic order of
// encodings must be meaningful to the caller.
type Key interface {
	Encode() []byte
}

// Map is an ordered associative container keyed by the canonical encoding of K.
type Map[K Key, V any] interface {
	// Insert adds a key-value pair. It returns ErrKeyExists if the key is
	// already present; the map is not modified in that case.
	Insert(key K, val V) error

	// Lookup returns the value stored for the key, if any.
	Lookup(key K) (V, bool)

	// Remove deletes the key and returns its value, or ErrNotFound.
	Remove(key K) (V, error)

	// Len returns the number of stored keys.
	Len() int
}

// Package keycode produces canonical, order-preserving byte encodings for
// common key types. For every encoder the byte-lexicographic order of the
// output matches the natural order of the input, and no encoded key is a
// strict prefix of another.
package keycode

import "encoding/binary"

const (
	escByte  = 0x00 // escaped as 0x00 0xFF inside variable-length keys
	escPad   = 0xFF
	termByte = 0x01 // 0x00 0x01 terminates a variable-length key
)

// Bytes encodes a variable-length byte key. Embedded 0x00 bytes are escaped
// as 0x00 0xFF and the result is terminated with 0x00 0x01, which keeps the
// encoding both order-preserving and prefix-free.
func Bytes(key []byte) []byte {
	return appendBytes(make([]byte, 0, len(key)+2), key)
}

// String encodes a string key, see Bytes.
func String(key string) []byte {
	return appendBytes(make([]byte, 0, len(key)+2), []byte(key))
}

func appendBytes(dst, key []byte) []byte {
	for _, c := range key {
		dst = append(dst, c)
		if c == escByte {
			dst = append(dst, escPad)
		}
	}

	return append(dst, escByte, termByte)
}

// Uint32 encodes an unsigned 32-bit key as fixed-width big-endian bytes.
func Uint32(v uint32) []byte {
	var buf [4]byte

	binary.BigEndian.PutUint32(buf[:], v)

	return buf[:]
}

// Uint64 encodes an unsigned 64-bit key as fixed-width big-endian bytes.
func Uint64(v uint64) []byte {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)

	return buf[:]
}

// Int32 encodes a signed 32-bit key; flipping the sign bit makes negative
// values sort before positive ones.
func Int32(v int32) []byte {
	return Uint32(uint32(v) ^ (1 << 31))
}

// Int64 encodes a signed 64-bit key, see Int32.
func Int64(v int64) []byte {
	return Uint64(uint64(v) ^ (1 << 63))
}

// Tuple concatenates already encoded elements into a composite key. The
// result orders by element as long as every variable-length element was
// produced by Bytes/String (fixed-width elements are self-delimiting).
func Tuple(parts ...[]byte) []byte {
	var total int

	for _, p := range parts {
		total += len(p)
	}

	dst := make([]byte, 0, total)
	for _, p := range parts {
		dst = append(dst, p...)
	}

	return dst
}

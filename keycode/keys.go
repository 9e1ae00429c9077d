package keycode

// Ready-made key types implementing the seqmap.Key capability.

// Str is a string key.
type Str string

func (s Str) Encode() []byte { return String(string(s)) }

// Raw is a variable-length byte key.
type Raw []byte

func (r Raw) Encode() []byte { return Bytes(r) }

// U64 is an unsigned 64-bit key.
type U64 uint64

func (u U64) Encode() []byte { return Uint64(uint64(u)) }

// I64 is a signed 64-bit key.
type I64 int64

func (i I64) Encode() []byte { return Int64(int64(i)) }

package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
)

// Func is a seeded 64-bit hash function. It must be deterministic.
type Func func(data []byte, seed uint64) uint64

var (
	_ Func = Sum64
	_ Func = Metro64
	_ Func = Murmur3
	_ Func = XXHash64
)

// Pair returns the two base hashes used for double hashing:
// h1 = fn(data, 0) and h2 = fn(data, h1).
func Pair(fn Func, data []byte) (h1, h2 uint64) {
	h1 = fn(data, 0)
	h2 = fn(data, h1)
	return h1, h2
}

// Metro64 is the 64-bit metrohash of _data_ with _seed_.
func Metro64(data []byte, seed uint64) uint64 {
	return metro.Hash64(data, seed)
}

// Murmur3 is the first half of the 128-bit murmur3 hash. murmur3 only takes a
// 32-bit seed, so both halves of _seed_ are folded into it.
func Murmur3(data []byte, seed uint64) uint64 {
	return murmur3.Sum64WithSeed(data, uint32(seed^(seed>>32)))
}

// XXHash64 is xxhash64 over the 8 little-endian bytes of _seed_ followed by _data_.
func XXHash64(data []byte, seed uint64) uint64 {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], seed)
	d := xxhash.New()
	_, _ = d.Write(prefix[:])
	_, _ = d.Write(data)
	return d.Sum64()
}

/*
Package hash implements the hash engine behind the Bloom filters: a seeded
64-bit MurmurHash64A and a few other seeded 64-bit hashes with the same
signature.
*/
package hash

import "encoding/binary"

const (
	mixMultiplier = 0xc6a4a7935bd1e995
	mixShift      = 47
	blockSize     = 8
)

// Sum64 returns the MurmurHash64A of _data_ with _seed_.
// 8-byte blocks are read little-endian so the value doesn't depend on the
// platform. Sum64 never reads past len(data) and doesn't allocate.
func Sum64(data []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(data)) * mixMultiplier)

	nblocks := len(data) / blockSize
	for i := 0; i < nblocks; i++ {
		k := binary.LittleEndian.Uint64(data[i*blockSize:])
		k *= mixMultiplier
		k ^= k >> mixShift
		k *= mixMultiplier

		h ^= k
		h *= mixMultiplier
	}

	tail := data[nblocks*blockSize:]
	if len(tail) > 0 {
		// byte i of the tail lands at bit 8*i, highest byte first
		for i := len(tail) - 1; i >= 0; i-- {
			h ^= uint64(tail[i]) << (8 * uint(i))
		}
		h *= mixMultiplier
	}

	h ^= h >> mixShift
	h *= mixMultiplier
	h ^= h >> mixShift
	return h
}

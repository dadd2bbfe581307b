/*
Package filters provides Bloom filters over any item type with an explicit
byte encoding: an unsynchronized in-memory BloomFilter, a read/write locked
SyncBloomFilter and a RedisBloomFilter whose bits live in Redis.
*/
package filters

import (
	"errors"
	"fmt"
	"math"

	"github.com/kwertop/simplebloom"
	"github.com/kwertop/simplebloom/codec"
	"github.com/kwertop/simplebloom/hash"
)

// ErrIncompatibleFilters is returned when merging filters with different sizes
// or numbers of hashes.
var ErrIncompatibleFilters = errors.New("filters: incompatible filters")

// BaseFilter is the behaviour shared by the in-memory filters.
type BaseFilter[T any] interface {
	Add(item T)
	Contains(item T) bool
	SizeInBits() uint
	NumHashes() uint
}

var (
	_ BaseFilter[string] = (*BloomFilter[string])(nil)
	_ BaseFilter[string] = (*SyncBloomFilter[string])(nil)
)

// Stats describes the fill of a filter.
type Stats struct {
	SizeInBits uint
	NumHashes  uint
	SetBits    uint
	// FalsePositiveRate is the probability that an item never added is
	// reported present, estimated from the fraction of set bits.
	FalsePositiveRate float64
}

func newStats(size, numHashes, setBits uint) Stats {
	return Stats{
		SizeInBits:        size,
		NumHashes:         numHashes,
		SetBits:           setBits,
		FalsePositiveRate: math.Pow(float64(setBits)/float64(size), float64(numHashes)),
	}
}

// params validates the constructor arguments shared by every filter and sizes the filter.
func params[T any](capacity uint, errorRate float64, encoder codec.Encoder[T], hashFn hash.Func) (size, numHashes uint, err error) {
	if encoder == nil {
		return 0, 0, fmt.Errorf("%w: encoder is nil", simplebloom.ErrInvalidParameter)
	}
	if hashFn == nil {
		return 0, 0, fmt.Errorf("%w: hash function is nil", simplebloom.ErrInvalidParameter)
	}
	return simplebloom.CalculateParameters(capacity, errorRate)
}

// getIndex returns the i-th bit position of an item from its base hashes
// (double hashing). The sum wraps at 64 bits before the modulo.
func getIndex(h1, h2 uint64, i, size uint) uint {
	return uint((h1 + uint64(i)*h2) % uint64(size))
}

// getIndexes returns all _numHashes_ positions of the item encoded as _data_.
func getIndexes(hashFn hash.Func, data []byte, numHashes, size uint) []uint {
	h1, h2 := hash.Pair(hashFn, data)
	indexes := make([]uint, numHashes)
	for i := range indexes {
		indexes[i] = getIndex(h1, h2, uint(i), size)
	}
	return indexes
}

package filters

import (
	"fmt"

	"github.com/kwertop/simplebloom/bitset"
	"github.com/kwertop/simplebloom/codec"
	"github.com/kwertop/simplebloom/hash"
)

// BloomFilter is an in-memory Bloom filter over items of type T.
// _size_ is the number of bits m and _numHashes_ the number of positions k
// probed per item; both are fixed at construction.
// _filter_ holds the bits in ceil(m/64) words.
// BloomFilter isn't safe for concurrent use when one of the goroutines calls
// Add; use SyncBloomFilter for that.
type BloomFilter[T any] struct {
	size      uint
	numHashes uint
	encode    codec.Encoder[T]
	hash      hash.Func
	filter    *bitset.BitSetMem
}

// NewBloomFilter creates a BloomFilter sized for _capacity_ items at a false
// positive rate of _errorRate_, hashing items with hash.Sum64.
// It fails with simplebloom.ErrInvalidParameter if _errorRate_ isn't in (0,1).
func NewBloomFilter[T any](capacity uint, errorRate float64, encoder codec.Encoder[T]) (*BloomFilter[T], error) {
	return NewBloomFilterWithHash(capacity, errorRate, encoder, hash.Sum64)
}

// NewBloomFilterWithHash is NewBloomFilter with the base hash function _hashFn_.
func NewBloomFilterWithHash[T any](capacity uint, errorRate float64, encoder codec.Encoder[T], hashFn hash.Func) (*BloomFilter[T], error) {
	size, numHashes, err := params(capacity, errorRate, encoder, hashFn)
	if err != nil {
		return nil, err
	}
	filter, err := bitset.NewBitSetMem(size)
	if err != nil {
		return nil, err
	}
	return &BloomFilter[T]{
		size:      size,
		numHashes: numHashes,
		encode:    encoder,
		hash:      hashFn,
		filter:    filter,
	}, nil
}

// NewStringBloomFilter creates a BloomFilter for strings
func NewStringBloomFilter(capacity uint, errorRate float64) (*BloomFilter[string], error) {
	return NewBloomFilter[string](capacity, errorRate, codec.String)
}

// Add inserts _item_ in the filter
func (bloomFilter *BloomFilter[T]) Add(item T) {
	h1, h2 := hash.Pair(bloomFilter.hash, bloomFilter.encode(item))
	for i := uint(0); i < bloomFilter.numHashes; i++ {
		bloomFilter.filter.Set(getIndex(h1, h2, i, bloomFilter.size))
	}
}

// Contains returns false if _item_ was definitely never added and true if it
// may have been added.
func (bloomFilter *BloomFilter[T]) Contains(item T) bool {
	h1, h2 := hash.Pair(bloomFilter.hash, bloomFilter.encode(item))
	for i := uint(0); i < bloomFilter.numHashes; i++ {
		if !bloomFilter.filter.Test(getIndex(h1, h2, i, bloomFilter.size)) {
			return false
		}
	}
	return true
}

// SizeInBits returns the number of bits m of the filter
func (bloomFilter *BloomFilter[T]) SizeInBits() uint {
	return bloomFilter.size
}

// NumHashes returns the number of positions probed per item
func (bloomFilter *BloomFilter[T]) NumHashes() uint {
	return bloomFilter.numHashes
}

// BitCount returns the number of set bits
func (bloomFilter *BloomFilter[T]) BitCount() uint {
	return bloomFilter.filter.Count()
}

// BitSet returns the internal bitset
func (bloomFilter *BloomFilter[T]) BitSet() *bitset.BitSetMem {
	return bloomFilter.filter
}

// BloomPositiveRate returns the estimated false positive rate of the filter
// given the bits set so far.
func (bloomFilter *BloomFilter[T]) BloomPositiveRate() float64 {
	return bloomFilter.Stats().FalsePositiveRate
}

// Stats returns the size, number of hashes and fill of the filter
func (bloomFilter *BloomFilter[T]) Stats() Stats {
	return newStats(bloomFilter.size, bloomFilter.numHashes, bloomFilter.filter.Count())
}

// Equals checks if two BloomFilters have the same parameters and bits
func (aFilter *BloomFilter[T]) Equals(bFilter *BloomFilter[T]) bool {
	if aFilter.size != bFilter.size || aFilter.numHashes != bFilter.numHashes {
		return false
	}
	return aFilter.filter.Equal(bFilter.filter)
}

// Clone returns an independent copy of the filter
func (bloomFilter *BloomFilter[T]) Clone() *BloomFilter[T] {
	clone := *bloomFilter
	clone.filter = bloomFilter.filter.Clone()
	return &clone
}

// Merge adds every item of _other_ to the filter. Both filters must have the
// same size and number of hashes, and must have been built with the same
// encoder and hash function.
func (bloomFilter *BloomFilter[T]) Merge(other *BloomFilter[T]) error {
	if bloomFilter.size != other.size || bloomFilter.numHashes != other.numHashes {
		return fmt.Errorf("%w: m=%d k=%d and m=%d k=%d", ErrIncompatibleFilters,
			bloomFilter.size, bloomFilter.numHashes, other.size, other.numHashes)
	}
	return bloomFilter.filter.Union(other.filter)
}

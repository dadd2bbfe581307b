package bitset

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitSetMem is an in-memory implementation of IBitSet.
// _size_ is the logical number of bits; storage is rounded up to whole
// 64-bit words by _set_, https://github.com/bits-and-blooms/bitset.
// BitSetMem isn't safe for concurrent writes.
type BitSetMem struct {
	set  *bitset.BitSet
	size uint
}

// NewBitSetMem creates a new BitSetMem of _size_ bits, all unset.
func NewBitSetMem(size uint) (*BitSetMem, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	return &BitSetMem{bitset.New(size), size}, nil
}

// Size returns the size of the bitset
func (bitSet *BitSetMem) Size() uint {
	return bitSet.size
}

// Test reports whether the bit at _index_ is set. Indexes past Size are unset.
func (bitSet *BitSetMem) Test(index uint) bool {
	return bitSet.set.Test(index)
}

// Set sets the bit at _index_. The caller keeps _index_ below Size.
func (bitSet *BitSetMem) Set(index uint) {
	bitSet.set.Set(index)
}

// Count returns the number of set bits
func (bitSet *BitSetMem) Count() uint {
	return bitSet.set.Count()
}

// Words returns the backing 64-bit words, bit i lives in word i/64 at
// position i%64. The slice is shared with the bitset.
func (bitSet *BitSetMem) Words() []uint64 {
	return bitSet.set.Bytes()
}

// Equal reports whether both bitsets have the same size and bits
func (bitSet *BitSetMem) Equal(other *BitSetMem) bool {
	return bitSet.size == other.size && bitSet.set.Equal(other.set)
}

// Clone returns an independent copy of the bitset
func (bitSet *BitSetMem) Clone() *BitSetMem {
	return &BitSetMem{bitSet.set.Clone(), bitSet.size}
}

// Union sets every bit that is set in _other_. Both bitsets must have the same size.
func (bitSet *BitSetMem) Union(other *BitSetMem) error {
	if bitSet.size != other.size {
		return fmt.Errorf("bitset: can't union bitsets of sizes %d and %d", bitSet.size, other.size)
	}
	bitSet.set.InPlaceUnion(other.set)
	return nil
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetMem) Has(_ context.Context, index uint) (bool, error) {
	return bitSet.Test(index), nil
}

// HasMulti checks if the bits at the indices specified by _indexes_ are set
func (bitSet *BitSetMem) HasMulti(_ context.Context, indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, ErrEmptyIndexes
	}
	result := make([]bool, len(indexes))
	for i, index := range indexes {
		result[i] = bitSet.Test(index)
	}
	return result, nil
}

// Insert sets the bit at index specified by _index_
func (bitSet *BitSetMem) Insert(_ context.Context, index uint) error {
	if index >= bitSet.size {
		return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, bitSet.size)
	}
	bitSet.Set(index)
	return nil
}

// InsertMulti sets the bits at indices specified by array _indexes_
func (bitSet *BitSetMem) InsertMulti(_ context.Context, indexes []uint) error {
	if len(indexes) == 0 {
		return ErrEmptyIndexes
	}
	for _, index := range indexes {
		if index >= bitSet.size {
			return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, bitSet.size)
		}
	}
	for _, index := range indexes {
		bitSet.Set(index)
	}
	return nil
}

// BitCount returns the total number of set bits in the bitset
func (bitSet *BitSetMem) BitCount(_ context.Context) (uint, error) {
	return bitSet.Count(), nil
}

// Equals checks if two bitsets are equal. _otherBitSet_ may be backed by redis.
func (bitSet *BitSetMem) Equals(ctx context.Context, otherBitSet IBitSet) (bool, error) {
	other, err := snapshot(ctx, otherBitSet)
	if err != nil {
		return false, err
	}
	return bitSet.Equal(other), nil
}

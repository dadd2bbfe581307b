/*
Package bitset implements the bit arrays behind the Bloom filters - both
in-memory and redis.
For in-memory, https://github.com/bits-and-blooms/bitset is used while
for redis, the bitmap commands of redis are used.
*/
package bitset

import (
	"context"
	"errors"
)

var (
	// ErrIndexOutOfRange is returned when a bit past the size of the bitset is set.
	ErrIndexOutOfRange = errors.New("bitset: index out of range")
	// ErrEmptyIndexes is returned by the multi-index operations when no index is passed.
	ErrEmptyIndexes = errors.New("bitset: at least 1 index is required")
	// ErrZeroSize is returned when a bitset of size 0 is requested.
	ErrZeroSize = errors.New("bitset: size must be greater than 0")
)

// IBitSet is a fixed-size bit array. Bits are only ever set, never cleared.
type IBitSet interface {
	// Size returns the number of bits in the bitset
	Size() uint

	// Has returns true if the bit is set at index, else false
	Has(ctx context.Context, index uint) (bool, error)

	// HasMulti returns an array of boolean values for the queried
	// index values in the indexes array
	HasMulti(ctx context.Context, indexes []uint) ([]bool, error)

	// Insert sets the bit at index
	Insert(ctx context.Context, index uint) error

	// InsertMulti sets the bits at the indices passed in the indexes array
	InsertMulti(ctx context.Context, indexes []uint) error

	// BitCount returns the total number of set bits in the bitset
	BitCount(ctx context.Context) (uint, error)

	// Equals checks if two bitsets have the same size and the same bits set
	Equals(ctx context.Context, otherBitSet IBitSet) (bool, error)
}

// snapshot returns an in-memory copy of any IBitSet.
func snapshot(ctx context.Context, b IBitSet) (*BitSetMem, error) {
	switch s := b.(type) {
	case *BitSetMem:
		return s, nil
	case *BitSetRedis:
		return s.Snapshot(ctx)
	default:
		return nil, errors.New("bitset: unknown bitset implementation")
	}
}

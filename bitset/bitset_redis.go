package bitset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "simplebloom:bitset:"

// BitSetRedis is an implementation of IBitSet.
// size is the number of bits in the bitset
// key is the redis key to the bitset data structure in redis
// Bitsets or Bitmaps are implemented in Redis using string.
// All bit operations are done on the string stored at _key_.
// For more details, please refer https://redis.io/docs/data-types/bitmaps/
// Every SETBIT and GETBIT is atomic on the server, so a BitSetRedis can be
// shared by several clients.
type BitSetRedis struct {
	client redis.Cmdable
	size   uint
	key    string
}

// NewBitSetRedis creates a new BitSetRedis of size _size_ under a fresh key.
func NewBitSetRedis(ctx context.Context, client redis.Cmdable, size uint) (*BitSetRedis, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	key := keyPrefix + uuid.NewString()
	// SETBIT on the last bit makes redis allocate the whole zeroed string
	if err := client.SetBit(ctx, key, int64(size-1), 0).Err(); err != nil {
		return nil, fmt.Errorf("bitset: error while creating redis bitset: %w", err)
	}
	return &BitSetRedis{client, size, key}, nil
}

// Size returns the size of the bitset saved in redis
func (bitSet *BitSetRedis) Size() uint {
	return bitSet.size
}

// Key gives the key at which the bitset is saved in redis
func (bitSet *BitSetRedis) Key() string {
	return bitSet.key
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetRedis) Has(ctx context.Context, index uint) (bool, error) {
	val, err := bitSet.client.GetBit(ctx, bitSet.key, int64(index)).Result()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

// HasMulti checks if the bits at the indices specified by _indexes_ are set.
// All bits are read in one pipeline.
func (bitSet *BitSetRedis) HasMulti(ctx context.Context, indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, ErrEmptyIndexes
	}
	pipe := bitSet.client.Pipeline()
	values := make([]*redis.IntCmd, len(indexes))
	for i := range indexes {
		values[i] = pipe.GetBit(ctx, bitSet.key, int64(indexes[i]))
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]bool, len(values))
	for i := range values {
		result[i] = values[i].Val() != 0
	}
	return result, nil
}

// Insert sets the bit at index specified by _index_
func (bitSet *BitSetRedis) Insert(ctx context.Context, index uint) error {
	if index >= bitSet.size {
		return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, bitSet.size)
	}
	return bitSet.client.SetBit(ctx, bitSet.key, int64(index), 1).Err()
}

// InsertMulti sets the bits at indices specified by array _indexes_ in one pipeline.
func (bitSet *BitSetRedis) InsertMulti(ctx context.Context, indexes []uint) error {
	if len(indexes) == 0 {
		return ErrEmptyIndexes
	}
	pipe := bitSet.client.Pipeline()
	for _, index := range indexes {
		if index >= bitSet.size {
			pipe.Discard()
			return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, bitSet.size)
		}
		pipe.SetBit(ctx, bitSet.key, int64(index), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// BitCount returns the total number of set bits in the bitset saved in redis
func (bitSet *BitSetRedis) BitCount(ctx context.Context) (uint, error) {
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := bitSet.client.BitCount(ctx, bitSet.key, bitRange).Result()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// Equals checks if two bitsets are equal. Two BitSetRedis are compared on
// the server values, anything else through an in-memory snapshot.
func (bitSet *BitSetRedis) Equals(ctx context.Context, otherBitSet IBitSet) (bool, error) {
	if bitSet.size != otherBitSet.Size() {
		return false, nil
	}
	if other, ok := otherBitSet.(*BitSetRedis); ok {
		aSetVal, err := bitSet.client.Get(ctx, bitSet.key).Result()
		if err != nil {
			return false, err
		}
		bSetVal, err := other.client.Get(ctx, other.key).Result()
		if err != nil {
			return false, err
		}
		return aSetVal == bSetVal, nil
	}
	mem, err := bitSet.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return mem.Equals(ctx, otherBitSet)
}

// Snapshot copies the bits saved in redis into a BitSetMem.
// Redis numbers bits from the most significant bit of the first byte.
func (bitSet *BitSetRedis) Snapshot(ctx context.Context) (*BitSetMem, error) {
	val, err := bitSet.client.Get(ctx, bitSet.key).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	mem, err := NewBitSetMem(bitSet.size)
	if err != nil {
		return nil, err
	}
	for i, b := range val {
		for j := uint(0); j < 8; j++ {
			index := uint(i)*8 + j
			if index >= bitSet.size {
				break
			}
			if b&(0x80>>j) != 0 {
				mem.Set(index)
			}
		}
	}
	return mem, nil
}

// Delete removes the bitset from redis. The BitSetRedis can't be used afterwards.
func (bitSet *BitSetRedis) Delete(ctx context.Context) error {
	return bitSet.client.Del(ctx, bitSet.key).Err()
}

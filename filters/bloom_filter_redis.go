package filters

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kwertop/simplebloom/bitset"
	"github.com/kwertop/simplebloom/codec"
	"github.com/kwertop/simplebloom/hash"
)

// RedisBloomFilter is a Bloom filter whose bits are kept in a Redis bitmap,
// so several processes can share it. It computes the same bit positions as
// a BloomFilter with the same parameters, encoder and hash function.
// The positions of one item are written or read in a single pipeline.
type RedisBloomFilter[T any] struct {
	size      uint
	numHashes uint
	encode    codec.Encoder[T]
	hash      hash.Func
	filter    *bitset.BitSetRedis
}

// NewRedisBloomFilter creates a Redis backed filter sized for _capacity_
// items at a false positive rate of _errorRate_, under a new key.
func NewRedisBloomFilter[T any](ctx context.Context, client redis.Cmdable, capacity uint, errorRate float64, encoder codec.Encoder[T]) (*RedisBloomFilter[T], error) {
	return NewRedisBloomFilterWithHash(ctx, client, capacity, errorRate, encoder, hash.Sum64)
}

// NewRedisBloomFilterWithHash is NewRedisBloomFilter with the base hash function _hashFn_.
func NewRedisBloomFilterWithHash[T any](ctx context.Context, client redis.Cmdable, capacity uint, errorRate float64, encoder codec.Encoder[T], hashFn hash.Func) (*RedisBloomFilter[T], error) {
	size, numHashes, err := params(capacity, errorRate, encoder, hashFn)
	if err != nil {
		return nil, err
	}
	filter, err := bitset.NewBitSetRedis(ctx, client, size)
	if err != nil {
		return nil, err
	}
	return &RedisBloomFilter[T]{
		size:      size,
		numHashes: numHashes,
		encode:    encoder,
		hash:      hashFn,
		filter:    filter,
	}, nil
}

// Add inserts _item_ in the filter
func (bloomFilter *RedisBloomFilter[T]) Add(ctx context.Context, item T) error {
	indexes := getIndexes(bloomFilter.hash, bloomFilter.encode(item), bloomFilter.numHashes, bloomFilter.size)
	if err := bloomFilter.filter.InsertMulti(ctx, indexes); err != nil {
		return fmt.Errorf("filters: error while adding to redis filter %s: %w", bloomFilter.filter.Key(), err)
	}
	return nil
}

// Contains returns false if _item_ was definitely never added and true if it
// may have been added.
func (bloomFilter *RedisBloomFilter[T]) Contains(ctx context.Context, item T) (bool, error) {
	indexes := getIndexes(bloomFilter.hash, bloomFilter.encode(item), bloomFilter.numHashes, bloomFilter.size)
	result, err := bloomFilter.filter.HasMulti(ctx, indexes)
	if err != nil {
		return false, fmt.Errorf("filters: error while querying redis filter %s: %w", bloomFilter.filter.Key(), err)
	}
	for _, ok := range result {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// SizeInBits returns the number of bits m of the filter
func (bloomFilter *RedisBloomFilter[T]) SizeInBits() uint {
	return bloomFilter.size
}

// NumHashes returns the number of positions probed per item
func (bloomFilter *RedisBloomFilter[T]) NumHashes() uint {
	return bloomFilter.numHashes
}

// Key returns the Redis key holding the bits
func (bloomFilter *RedisBloomFilter[T]) Key() string {
	return bloomFilter.filter.Key()
}

// BitSet returns the internal bitset
func (bloomFilter *RedisBloomFilter[T]) BitSet() *bitset.BitSetRedis {
	return bloomFilter.filter
}

// Stats returns the size, number of hashes and fill of the filter
func (bloomFilter *RedisBloomFilter[T]) Stats(ctx context.Context) (Stats, error) {
	setBits, err := bloomFilter.filter.BitCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	return newStats(bloomFilter.size, bloomFilter.numHashes, setBits), nil
}

// Delete removes the filter's key from Redis
func (bloomFilter *RedisBloomFilter[T]) Delete(ctx context.Context) error {
	return bloomFilter.filter.Delete(ctx)
}

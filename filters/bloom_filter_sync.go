package filters

import (
	"sync"

	"github.com/kwertop/simplebloom/codec"
)

// SyncBloomFilter is a BloomFilter guarded by a read/write lock: Add takes
// the write lock, queries take the read lock.
type SyncBloomFilter[T any] struct {
	lock   sync.RWMutex
	filter *BloomFilter[T]
}

// NewSyncBloomFilter creates a SyncBloomFilter with the same parameters as NewBloomFilter
func NewSyncBloomFilter[T any](capacity uint, errorRate float64, encoder codec.Encoder[T]) (*SyncBloomFilter[T], error) {
	filter, err := NewBloomFilter(capacity, errorRate, encoder)
	if err != nil {
		return nil, err
	}
	return Synchronized(filter), nil
}

// Synchronized wraps _filter_. The caller must stop using _filter_ directly.
func Synchronized[T any](filter *BloomFilter[T]) *SyncBloomFilter[T] {
	return &SyncBloomFilter[T]{filter: filter}
}

// Add inserts _item_ in the filter
func (syncFilter *SyncBloomFilter[T]) Add(item T) {
	syncFilter.lock.Lock()
	defer syncFilter.lock.Unlock()
	syncFilter.filter.Add(item)
}

// Contains returns false if _item_ was definitely never added and true if it
// may have been added.
func (syncFilter *SyncBloomFilter[T]) Contains(item T) bool {
	syncFilter.lock.RLock()
	defer syncFilter.lock.RUnlock()
	return syncFilter.filter.Contains(item)
}

// SizeInBits returns the number of bits m of the filter
func (syncFilter *SyncBloomFilter[T]) SizeInBits() uint {
	return syncFilter.filter.SizeInBits()
}

// NumHashes returns the number of positions probed per item
func (syncFilter *SyncBloomFilter[T]) NumHashes() uint {
	return syncFilter.filter.NumHashes()
}

// Stats returns the size, number of hashes and fill of the filter
func (syncFilter *SyncBloomFilter[T]) Stats() Stats {
	syncFilter.lock.RLock()
	defer syncFilter.lock.RUnlock()
	return syncFilter.filter.Stats()
}

// Snapshot returns an unsynchronized copy of the filter
func (syncFilter *SyncBloomFilter[T]) Snapshot() *BloomFilter[T] {
	syncFilter.lock.RLock()
	defer syncFilter.lock.RUnlock()
	return syncFilter.filter.Clone()
}

// Merge adds every item of _other_ to the filter. _other_ is copied under its
// read lock first so the two locks are never held together.
func (syncFilter *SyncBloomFilter[T]) Merge(other *SyncBloomFilter[T]) error {
	if syncFilter == other {
		return nil
	}
	snapshot := other.Snapshot()
	syncFilter.lock.Lock()
	defer syncFilter.lock.Unlock()
	return syncFilter.filter.Merge(snapshot)
}

package filters

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kwertop/simplebloom/codec"
	"github.com/kwertop/simplebloom/internal/util"
)

func TestSyncFilterConcurrentAdd(t *testing.T) {
	filter, err := NewSyncBloomFilter[string](40000, 0.01, codec.String)
	require.NoError(t, err)

	const writers = 8
	batches := make([][]string, writers)
	for w := range batches {
		batches[w] = util.GenerateWords(util.GenerateRandomString(6)+"_", 5000)
	}

	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(2)
		go func(words []string) {
			defer wg.Done()
			for _, word := range words {
				filter.Add(word)
			}
		}(batch)
		go func(words []string) {
			defer wg.Done()
			for _, word := range words {
				filter.Contains(word)
			}
		}(batch)
	}
	wg.Wait()

	for _, batch := range batches {
		for _, word := range batch {
			require.True(t, filter.Contains(word))
		}
	}
	stats := filter.Stats()
	require.Greater(t, stats.SetBits, uint(0))
	require.LessOrEqual(t, stats.SetBits, filter.SizeInBits())
}

func TestSyncFilterMatchesPlainFilter(t *testing.T) {
	plain := newStringFilter(t, 1000, 0.01)
	synced, err := NewSyncBloomFilter[string](1000, 0.01, codec.String)
	require.NoError(t, err)
	for _, word := range util.GenerateWords("same_", 500) {
		plain.Add(word)
		synced.Add(word)
	}
	require.True(t, plain.Equals(synced.Snapshot()))
	require.Equal(t, plain.SizeInBits(), synced.SizeInBits())
	require.Equal(t, plain.NumHashes(), synced.NumHashes())
}

func TestSyncFilterSnapshotIsIndependent(t *testing.T) {
	synced := Synchronized(newStringFilter(t, 1000, 0.01))
	synced.Add("before")
	snapshot := synced.Snapshot()
	synced.Add("after")
	require.True(t, snapshot.Contains("before"))
	require.False(t, snapshot.Equals(synced.Snapshot()))
}

func TestSyncFilterMerge(t *testing.T) {
	aFilter := Synchronized(newStringFilter(t, 1000, 0.01))
	bFilter := Synchronized(newStringFilter(t, 1000, 0.01))
	aFilter.Add("This")
	bFilter.Add("present")
	bFilter.Add("bloom")

	errs := make(chan error, 2)
	go func() { errs <- aFilter.Merge(bFilter) }()
	go func() { errs <- bFilter.Merge(aFilter) }()
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	for _, word := range []string{"This", "present", "bloom"} {
		require.True(t, aFilter.Contains(word))
	}
	require.False(t, aFilter.Contains("is"))
	require.NoError(t, aFilter.Merge(aFilter))

	other := Synchronized(newStringFilter(t, 10, 0.01))
	require.ErrorIs(t, aFilter.Merge(other), ErrIncompatibleFilters)
}

/*
Package simplebloom sizes Bloom filters and configures the Redis connection
used by Redis backed filters.

The filter itself lives in the filters package, the hash engine in hash,
item encoders in codec and the bit arrays in bitset.
*/
package simplebloom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a filter can't be sized from the
// capacity and error rate passed.
var ErrInvalidParameter = errors.New("simplebloom: invalid parameter")

// CalculateFilterSize returns the number of bits m needed to hold _capacity_
// items with a false positive rate of _errorRate_:
//
//	m = ceil(-(n * ln(p)) / ln(2)^2)
//
// A capacity of 0 is treated as 1.
func CalculateFilterSize(capacity uint, errorRate float64) (uint, error) {
	if !(errorRate > 0 && errorRate < 1) {
		return 0, fmt.Errorf("%w: error rate %v is not in the open interval (0,1)", ErrInvalidParameter, errorRate)
	}
	n := float64(max(capacity, 1))
	size := math.Ceil(-(n * math.Log(errorRate)) / (math.Ln2 * math.Ln2))
	return toCount("filter size", size)
}

// CalculateNumHashes returns the number of hash functions k for a filter of
// _size_ bits holding _capacity_ items:
//
//	k = ceil((m / n) * ln(2))
func CalculateNumHashes(size, capacity uint) (uint, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: filter size must be greater than 0", ErrInvalidParameter)
	}
	n := float64(max(capacity, 1))
	numHashes := math.Ceil((float64(size) / n) * math.Ln2)
	return toCount("number of hashes", numHashes)
}

// CalculateParameters returns both the filter size and the number of hash
// functions for _capacity_ items at _errorRate_.
func CalculateParameters(capacity uint, errorRate float64) (size, numHashes uint, err error) {
	size, err = CalculateFilterSize(capacity, errorRate)
	if err != nil {
		return 0, 0, err
	}
	numHashes, err = CalculateNumHashes(size, capacity)
	if err != nil {
		return 0, 0, err
	}
	return size, numHashes, nil
}

func toCount(name string, v float64) (uint, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, name)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: %s %v rounds to 0", ErrInvalidParameter, name, v)
	}
	if v >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s %v overflows", ErrInvalidParameter, name, v)
	}
	return uint(v), nil
}

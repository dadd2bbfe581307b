package filters_test

import (
	"fmt"

	"github.com/kwertop/simplebloom/filters"
)

func ExampleBloomFilter() {
	filter, err := filters.NewStringBloomFilter(1000, 0.01)
	if err != nil {
		panic(err)
	}
	filter.Add("apple")
	filter.Add("banana")

	fmt.Println("size in bits:", filter.SizeInBits())
	fmt.Println("hash functions:", filter.NumHashes())
	fmt.Println("apple:", filter.Contains("apple"))
	fmt.Println("cherry:", filter.Contains("cherry"))
	// Output:
	// size in bits: 9586
	// hash functions: 7
	// apple: true
	// cherry: false
}

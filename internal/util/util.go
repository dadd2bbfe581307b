package util

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

var (
	srcLock sync.Mutex
	src     = rand.NewSource(time.Now().UnixNano())
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// GenerateRandomString returns a random string of _n_ ASCII letters.
// It's safe for concurrent use.
func GenerateRandomString(n int) string {
	srcLock.Lock()
	defer srcLock.Unlock()

	b := make([]byte, n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return string(b)
}

// GenerateWords returns _count_ distinct words "<prefix><i>", the shape of
// the keys used to benchmark filters against exact sets.
func GenerateWords(prefix string, count int) []string {
	words := make([]string, count)
	for i := range words {
		words[i] = prefix + strconv.Itoa(i)
	}
	return words
}

package util

import (
	"math/rand"
	"time"
)

// New returns a deterministic generator. Seed 0 maps to 1 so a zero value
// never silently means "random"; use Seed for that.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Seed resolves a user-supplied seed, drawing one from the clock for 0.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

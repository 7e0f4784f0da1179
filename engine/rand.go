package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a PCG generator. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandRange returns a uniform value in [min, max).
func RandRange(rng Rand, min, max int) int {
	return rng.IntN(max-min) + min
}

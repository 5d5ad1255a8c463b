// Package chrono holds timing aids for experiments and demos.
package chrono

import (
	"math/rand"
	"time"
)

// sink keeps the accumulator observable so the loop is not optimized away.
var sink float64

// Burn spins for roughly d, accumulating random draws, and returns the loop
// count. It simulates CPU load inside an audio callback when eyeballing
// timing behavior; it has no place in production code.
func Burn(rng *rand.Rand, d time.Duration) int64 {
	deadline := time.Now().Add(d)

	var acc float64
	var loops int64
	for time.Now().Before(deadline) {
		acc += rng.Float64()*2 - 1
		loops++
	}
	sink = acc

	return loops
}

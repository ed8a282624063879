// Package randutil builds the random sources that pick secrets.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from the one value, so a single --seed reproduces a
// whole session of secrets.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// SeedOrNow returns seed unchanged unless it is zero, in which case a seed
// is taken from the clock.
func SeedOrNow(seed int64, clock quartz.Clock) int64 {
	if seed != 0 {
		return seed
	}
	if s := clock.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

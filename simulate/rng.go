package simulate

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

// NewRNG returns a deterministic source. seed 0 uses defaultSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// File: rand.go
// Title: Seeded Randomness
// Description: Constructs the injectable random sources used by every
//              sampling operation.

package mathx

import "math/rand/v2"

// NewRand returns a PCG-backed generator for seed. Two generators created
// from the same seed produce identical streams.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

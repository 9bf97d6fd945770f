package sim

import "math/rand/v2"

// Rand supplies uniform values in [0, 1) for spawn placement
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

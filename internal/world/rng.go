package world

import "math/rand"

// Source supplies the randomness used by dungeon generation.
type Source interface {
	// IntRange returns a uniform integer in [min, max].
	IntRange(min, max int) int
	// Bool returns a fair coin flip.
	Bool() bool
}

// Rand adapts math/rand to Source.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a seeded Source. The same seed always yields the same sequence.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max].
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Bool returns a fair coin flip.
func (r *Rand) Bool() bool {
	return r.rng.Intn(2) == 0
}

package rng

import "math/rand"

// Seeded wraps math/rand with a fixed seed for deterministic shuffles.
// Use in tests and replays; production code should prefer Crypto.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a Seeded generator from the provided seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

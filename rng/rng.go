// Package rng supplies the single RNG source shared by the playout
// policy and the search engine, so that a seeded search is fully
// reproducible: MT19937-64, matching the original engine's
// std::mt19937_64 generator.
package rng

import (
	"math/rand"

	mt19937 "github.com/bszcz/mt19937_64"
)

// New returns a math/rand.Rand backed by a freshly seeded MT19937-64
// generator.
func New(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

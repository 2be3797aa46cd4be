// Package random provides the random number source threaded through every generator.
package random

import (
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// Source is the only randomness the generators consume.
type Source interface {
	// IntRange returns a uniform integer in [min, max].
	IntRange(min, max int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// WeightedIndex returns i with probability weights[i] / sum(weights).
	WeightedIndex(weights []float64) int
}

// FakerSource backs Source with a gofakeit Faker. It is safe for concurrent use.
type FakerSource struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSource returns a seeded source. Seed 0 draws the seed from crypto/rand, so runs
// differ unless a caller asks for a fixed seed.
func NewSource(seed int64) *FakerSource {
	return &FakerSource{faker: gofakeit.New(seed)}
}

func (s *FakerSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Number(min, max)
}

func (s *FakerSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Float64Range(0, 1)
}

func (s *FakerSource) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return s.IntRange(0, len(weights)-1)
	}

	r := s.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

package rng

import (
	"fmt"
	"math/rand"
)

// SeededSource implements Source using math/rand with an explicit seed,
// so tests can reproduce exact AI tiebreaks, threat fallbacks, and
// ability status rolls. Not safe for concurrent use.
type SeededSource struct {
	r *rand.Rand
}

// NewSeeded creates a SeededSource from a fixed seed.
func NewSeeded(seed int64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewSource(seed))}
}

// Roll returns a random integer in [1, size].
func (s *SeededSource) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("rng: invalid size %d", size)
	}
	return s.r.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (s *SeededSource) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rng: invalid size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("rng: invalid count %d", count)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}

// Float64 returns a uniform float64 in [0, 1).
func (s *SeededSource) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a uniform int in [0, n).
func (s *SeededSource) Intn(n int) int {
	return s.r.Intn(n)
}

// Package rng provides the engine's single injectable source of
// randomness, used by AI tiebreakers, threat's random fallback, and
// ability status-effect chance sampling. Beyond dice rolls it exposes
// Float64/Intn so callers that need a chance roll or a uniform pick
// don't have to fake one on top of a 1..size die.
package rng

//go:generate mockgen -destination=rngmock/mock_source.go -package=rngmock github.com/zbonzo/CrimsonFall-sub000/rng Source

// Source is the randomness seam threaded through the engine. Tests
// inject a SeededSource; production code defaults to CryptoSource.
type Source interface {
	// Roll returns a random integer in [1, size]. Returns an error if
	// size <= 0.
	Roll(size int) (int, error)

	// RollN rolls count dice of the given size.
	RollN(count, size int) ([]int, error)

	// Float64 returns a random float64 in [0, 1).
	Float64() float64

	// Intn returns a random int in [0, n). Panics if n <= 0, matching
	// math/rand.Intn's contract.
	Intn(n int) int
}

package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CryptoSource implements Source using crypto/rand. It is the engine's
// production default (Default below).
type CryptoSource struct{}

// Roll returns a cryptographically secure random integer in [1, size].
func (c *CryptoSource) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("rng: invalid size %d", size)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
	if err != nil {
		return 0, fmt.Errorf("rng: crypto/rand error: %w", err)
	}
	return int(n.Int64()) + 1, nil
}

// RollN rolls count dice of the given size.
func (c *CryptoSource) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rng: invalid size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("rng: invalid count %d", count)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := c.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}

// Float64 returns a uniform float64 in [0, 1) using crypto/rand.
func (c *CryptoSource) Float64() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		return 0
	}
	return float64(n.Int64()) / float64(int64(1)<<53)
}

// Intn returns a uniform int in [0, n) using crypto/rand.
func (c *CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Default is the package-level production randomness source.
var Default Source = &CryptoSource{}

// SetDefault swaps the package-level default source. Not safe for
// concurrent use with other rng operations; intended for tests and
// embedders that want a process-wide seeded source.
func SetDefault(s Source) {
	Default = s
}

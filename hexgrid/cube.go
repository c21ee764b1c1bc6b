package hexgrid

import "fmt"

// Cube is a cube coordinate (q, r, s) with the invariant q + r + s == 0.
// All positions exchanged between engine packages are Cube values.
type Cube struct {
	Q, R, S int
}

// New constructs a Cube, rejecting any triple that violates q+r+s=0.
func New(q, r, s int) (Cube, error) {
	c := Cube{Q: q, R: r, S: s}
	if !c.valid() {
		return Cube{}, fmt.Errorf("hexgrid: invalid cube coordinate (%d,%d,%d): q+r+s must equal 0", q, r, s)
	}
	return c, nil
}

// FromAxial derives s from q and r, which always yields a valid cube.
func FromAxial(q, r int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

func (c Cube) valid() bool {
	return c.Q+c.R+c.S == 0
}

// Key returns a canonical string suitable for use as a map key (e.g. the
// occupancy set).
func (c Cube) Key() string {
	return fmt.Sprintf("%d,%d,%d", c.Q, c.R, c.S)
}

// Equal reports whether two coordinates refer to the same cell.
func (c Cube) Equal(o Cube) bool {
	return c.Q == o.Q && c.R == o.R && c.S == o.S
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Distance returns the hex distance between two cells: max(|dq|,|dr|,|ds|).
func Distance(a, b Cube) int {
	return maxInt(abs(a.Q-b.Q), maxInt(abs(a.R-b.R), abs(a.S-b.S)))
}

// neighborOffsets is the fixed, stable neighbor order: E, NE, NW, W,
// SW, SE.
var neighborOffsets = [6]Cube{
	{Q: 1, R: 0, S: -1}, // E
	{Q: 1, R: -1, S: 0}, // NE
	{Q: 0, R: -1, S: 1}, // NW
	{Q: -1, R: 0, S: 1}, // W
	{Q: -1, R: 1, S: 0}, // SW
	{Q: 0, R: 1, S: -1}, // SE
}

// Neighbors returns the six adjacent cells in the fixed order
// E, NE, NW, W, SW, SE.
func Neighbors(c Cube) [6]Cube {
	var out [6]Cube
	for i, off := range neighborOffsets {
		out[i] = Cube{Q: c.Q + off.Q, R: c.R + off.R, S: c.S + off.S}
	}
	return out
}

// InRange returns every cell within hex distance radius of center,
// including center itself, ordered by increasing q then r for
// determinism.
func InRange(center Cube, radius int) []Cube {
	if radius < 0 {
		return nil
	}
	out := make([]Cube, 0, 3*radius*(radius+1)+1)
	for dq := -radius; dq <= radius; dq++ {
		loR := maxInt(-radius, -dq-radius)
		hiR := minInt(radius, -dq+radius)
		for dr := loR; dr <= hiR; dr++ {
			ds := -dq - dr
			out = append(out, Cube{Q: center.Q + dq, R: center.R + dr, S: center.S + ds})
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Ring returns every cell at exactly hex distance radius from center.
// Ring(center, 0) is just {center}.
func Ring(center Cube, radius int) []Cube {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Cube{center}
	}

	out := make([]Cube, 0, 6*radius)
	// Walk the ring starting at the cell radius steps in the SW
	// direction, then take `radius` steps in each of the six
	// directions in order.
	cell := Cube{Q: center.Q + neighborOffsets[4].Q*radius, R: center.R + neighborOffsets[4].R*radius, S: center.S + neighborOffsets[4].S*radius}
	for side := 0; side < 6; side++ {
		dir := neighborOffsets[side]
		for step := 0; step < radius; step++ {
			out = append(out, cell)
			cell = Cube{Q: cell.Q + dir.Q, R: cell.R + dir.R, S: cell.S + dir.S}
		}
	}
	return out
}

// Step returns the single neighbor of from that minimizes distance to
// toward. If from already equals toward, Step returns from unchanged.
//
// A sign-based step ((sign(dq), sign(dr)) with s rebalanced) is not
// always the true nearest neighbor when one axis dominates, so Step
// tries each of the six neighbors and picks the one genuinely closest
// to the destination, breaking ties by the fixed neighbor order
// (E, NE, NW, W, SW, SE).
func Step(from, toward Cube) Cube {
	if from.Equal(toward) {
		return from
	}

	best := from
	bestDist := Distance(from, toward)
	for _, n := range Neighbors(from) {
		if d := Distance(n, toward); d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best
}

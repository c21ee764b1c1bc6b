package ai

import (
	"sort"

	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
)

func distance(a, b Combatant) int {
	return hexgrid.Distance(a.Position(), b.Position())
}

// nearestEnemy returns the closest enemy to ctx.Self, breaking ties by
// lowest id.
func nearestEnemy(ctx Context) Combatant {
	return nearest(ctx.Self, ctx.Enemies)
}

func nearest(self Combatant, candidates []Combatant) Combatant {
	if len(candidates) == 0 {
		return nil
	}
	ordered := sortedByID(candidates)
	best := ordered[0]
	bestDist := distance(self, best)
	for _, c := range ordered[1:] {
		if d := distance(self, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// adjacentEnemy returns an enemy at distance exactly 1, or nil.
func adjacentEnemy(ctx Context) Combatant {
	for _, c := range sortedByID(ctx.Enemies) {
		if distance(ctx.Self, c) == 1 {
			return c
		}
	}
	return nil
}

// lowestHPEnemy returns the enemy with the lowest current HP, breaking
// ties by lowest id.
func lowestHPEnemy(enemies []Combatant) Combatant {
	if len(enemies) == 0 {
		return nil
	}
	ordered := sortedByID(enemies)
	best := ordered[0]
	for _, c := range ordered[1:] {
		if c.CurrentHP() < best.CurrentHP() {
			best = c
		}
	}
	return best
}

// mostWoundedAlly returns the ally (self included) with the lowest HP
// fraction, breaking ties by lowest id.
func mostWoundedAlly(ctx Context) Combatant {
	pool := append([]Combatant{ctx.Self}, ctx.Allies...)
	ordered := sortedByID(pool)
	best := ordered[0]
	for _, c := range ordered[1:] {
		if HPFraction(c) < HPFraction(best) {
			best = c
		}
	}
	return best
}

func sortedByID(combatants []Combatant) []Combatant {
	out := make([]Combatant, len(combatants))
	copy(out, combatants)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// stepToward returns the single neighbor of self's position that
// minimizes distance to dest, excluding cells in blocked.
func stepToward(self Combatant, dest hexgrid.Cube, blocked map[string]bool) hexgrid.Cube {
	return bestStep(self.Position(), func(c hexgrid.Cube) int { return hexgrid.Distance(c, dest) }, blocked, true)
}

// stepAwayFromAll returns the single reachable neighbor that maximizes
// the minimum distance to every enemy, excluding cells in blocked.
// This is the shared "kite"/"flee"/"defensive retreat" step.
func stepAwayFromAll(self Combatant, enemies []Combatant, blocked map[string]bool) hexgrid.Cube {
	score := func(c hexgrid.Cube) int {
		if len(enemies) == 0 {
			return 0
		}
		min := hexgrid.Distance(c, enemies[0].Position())
		for _, e := range enemies[1:] {
			if d := hexgrid.Distance(c, e.Position()); d < min {
				min = d
			}
		}
		return min
	}
	return bestStep(self.Position(), score, blocked, false)
}

// bestStep evaluates every neighbor of from (plus from itself, as a
// last resort when every neighbor is blocked) against score, picking
// the minimum when minimize is true or the maximum otherwise. Ties
// break on the fixed neighbor order from hexgrid.Neighbors.
func bestStep(from hexgrid.Cube, score func(hexgrid.Cube) int, blocked map[string]bool, minimize bool) hexgrid.Cube {
	best := from
	bestScore := score(from)
	haveCandidate := false

	for _, n := range hexgrid.Neighbors(from) {
		if blocked[n.Key()] {
			continue
		}
		s := score(n)
		switch {
		case !haveCandidate:
			best, bestScore, haveCandidate = n, s, true
		case minimize && s < bestScore:
			best, bestScore = n, s
		case !minimize && s > bestScore:
			best, bestScore = n, s
		}
	}
	return best
}

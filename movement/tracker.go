package movement

import (
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rpgerr"
)

// OccupancySet is a read-only view of which cells are currently
// occupied or blocked, keyed by hexgrid.Cube.Key(). The engine's state
// manager owns the concrete map; movement only ever reads it.
type OccupancySet map[string]bool

// Result reports a successful move.
type Result struct {
	From hexgrid.Cube
	To   hexgrid.Cube
}

// Tracker holds one entity's position and per-round movement state.
type Tracker struct {
	position          hexgrid.Cube
	movementRange     int
	hasMovedThisRound bool
	history           []hexgrid.Cube
}

// New creates a Tracker starting at position with the given movement
// range.
func New(position hexgrid.Cube, movementRange int) *Tracker {
	return &Tracker{position: position, movementRange: movementRange, history: []hexgrid.Cube{position}}
}

// Position returns the entity's current cell.
func (t *Tracker) Position() hexgrid.Cube { return t.position }

// MovementRange returns the entity's per-round movement range.
func (t *Tracker) MovementRange() int { return t.movementRange }

// HasMovedThisRound reports whether Move already succeeded this round.
func (t *Tracker) HasMovedThisRound() bool { return t.hasMovedThisRound }

// History returns every cell this entity has occupied, oldest first,
// including the starting position.
func (t *Tracker) History() []hexgrid.Cube {
	out := make([]hexgrid.Cube, len(t.history))
	copy(out, t.history)
	return out
}

// Move attempts to move to target in one step: rejected if already
// moved this round, target is farther than movementRange, target is
// occupied or an obstacle, or canMove forbids it. canMove is the
// caller's statuseffect.Tracker.CanMove() result; movement has no
// status sub-state of its own.
func (t *Tracker) Move(target hexgrid.Cube, occupied, obstacles OccupancySet, canMove bool) (Result, error) {
	if !canMove {
		return Result{}, rpgerr.NotAllowed("status effects prevent movement")
	}
	if t.hasMovedThisRound {
		return Result{}, rpgerr.TimingRestriction("already moved this round")
	}
	if dist := hexgrid.Distance(t.position, target); dist > t.movementRange {
		return Result{}, rpgerr.OutOfRange("target is beyond movement range")
	}
	if obstacles[target.Key()] {
		return Result{}, rpgerr.ConflictingState("target cell is an obstacle")
	}
	if occupied[target.Key()] {
		return Result{}, rpgerr.ConflictingState("Position is occupied")
	}

	from := t.position
	t.position = target
	t.hasMovedThisRound = true
	t.history = append(t.history, target)
	return Result{From: from, To: target}, nil
}

// GetReachablePositions returns every cell within movementRange of the
// current position. It does not filter out occupied or obstacle cells;
// callers evaluate that at Move time.
func (t *Tracker) GetReachablePositions() []hexgrid.Cube {
	return hexgrid.InRange(t.position, t.movementRange)
}

// ResetForNewRound clears the moved-this-round flag. Called by the
// round scheduler once per round, after status ticks.
func (t *Tracker) ResetForNewRound() {
	t.hasMovedThisRound = false
}

// ResetForEncounter returns the tracker to a fresh position and clears
// move history.
func (t *Tracker) ResetForEncounter(position hexgrid.Cube) {
	t.position = position
	t.hasMovedThisRound = false
	t.history = []hexgrid.Cube{position}
}

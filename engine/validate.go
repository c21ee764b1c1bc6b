package engine

import (
	"fmt"

	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
)

// ValidateGameState checks the engine's structural invariants
// (duplicate ids, two alive entities sharing a cell, an invalid cube
// coordinate, HP out of [0, maxHP], and the phase/round/winner
// consistency rules) and returns one error per violation found rather
// than stopping at the first. The scheduler never calls this or
// repairs a violation it reports; it exists for diagnostic tools and
// tests.
func (e *Engine) ValidateGameState() []error {
	var errs []error

	errs = append(errs, e.validateUniqueIDs()...)
	errs = append(errs, e.validateOccupancy()...)
	errs = append(errs, e.validateEntities()...)
	errs = append(errs, e.validatePhase()...)

	return errs
}

func (e *Engine) validateUniqueIDs() []error {
	var errs []error
	seen := make(map[string]bool, len(e.state.playerIDs)+len(e.state.monsterIDs))
	for _, id := range e.state.playerIDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate entity id %q", id))
		}
		seen[id] = true
	}
	for _, id := range e.state.monsterIDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate entity id %q", id))
		}
		seen[id] = true
	}
	return errs
}

func (e *Engine) validateOccupancy() []error {
	var errs []error
	byCell := make(map[string][]string)
	for _, ent := range e.state.allEntities() {
		if !ent.IsAlive() {
			continue
		}
		key := ent.Position().Key()
		byCell[key] = append(byCell[key], ent.GetID())
	}
	for key, ids := range byCell {
		if len(ids) > 1 {
			errs = append(errs, fmt.Errorf("cell %s occupied by more than one alive entity: %v", key, ids))
		}
	}
	return errs
}

func (e *Engine) validateEntities() []error {
	var errs []error
	for _, ent := range e.state.allEntities() {
		c := ent.Position()
		if _, err := hexgrid.New(c.Q, c.R, c.S); err != nil {
			errs = append(errs, fmt.Errorf("entity %q: %w", ent.GetID(), err))
		}
	}
	for _, id := range e.state.playerIDs {
		p := e.state.players[id]
		if hp := p.Stats.CurrentHP(); hp < 0 || hp > p.Stats.MaxHP() {
			errs = append(errs, fmt.Errorf("entity %q: currentHp %d out of range [0,%d]", id, hp, p.Stats.MaxHP()))
		}
	}
	for _, id := range e.state.monsterIDs {
		m := e.state.monsters[id]
		if hp := m.Stats.CurrentHP(); hp < 0 || hp > m.Stats.MaxHP() {
			errs = append(errs, fmt.Errorf("entity %q: currentHp %d out of range [0,%d]", id, hp, m.Stats.MaxHP()))
		}
	}
	return errs
}

// validatePhase checks the phase/round/winner consistency invariants:
// the round counter is positive exactly when the phase has left setup,
// and a winner is recorded exactly when the phase is ended.
func (e *Engine) validatePhase() []error {
	var errs []error

	roundStarted := e.state.currentRound > 0
	notSetup := e.state.phase != PhaseSetup
	if roundStarted != notSetup {
		errs = append(errs, fmt.Errorf("currentRound=%d but phase=%q", e.state.currentRound, e.state.phase))
	}

	hasWinner := e.state.winner == WinnerPlayers || e.state.winner == WinnerMonsters || e.state.winner == WinnerDraw
	ended := e.state.phase == PhaseEnded
	if ended != hasWinner {
		errs = append(errs, fmt.Errorf("phase=%q but winner=%q", e.state.phase, e.state.winner))
	}

	return errs
}

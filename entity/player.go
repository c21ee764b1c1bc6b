package entity

import (
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/core"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/statuseffect"
)

// KindPlayer is the GetType() value every Player reports.
const KindPlayer = "player"

var _ core.Entity = (*Player)(nil)
var _ ai.Combatant = (*Player)(nil)

// Player is a player-controlled combatant. It submits at most one
// action per round (tracked by the engine's state manager, not here)
// and can gain levels through AddExperience.
type Player struct {
	Base
	ClassID string
}

// NewPlayer creates a Player from class at the given starting
// position, seeded with catalog's status-effect definitions.
func NewPlayer(class PlayerClass, id, name string, position hexgrid.Cube, catalog statuseffect.Catalog) *Player {
	return &Player{
		Base:    newBase(id, name, KindPlayer, class.Stats, true, position, catalog, startingAbilities(class)),
		ClassID: class.ID,
	}
}

// ResetForEncounter restores this player to full HP at position with a
// clean status/ability/movement state, preserving level and
// experience.
func (p *Player) ResetForEncounter(position hexgrid.Cube) {
	p.Base.ResetForEncounter(position)
}

package action

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/movement"
	"github.com/zbonzo/CrimsonFall-sub000/stats"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// Variant is the tagged-union discriminator shared by PlayerAction and
// ActionResult.
type Variant string

const (
	Move    Variant = "move"
	Attack  Variant = "attack"
	Ability Variant = "ability"
	Wait    Variant = "wait"
)

// PlayerAction is one player's submitted intent for the round.
type PlayerAction struct {
	PlayerID       string
	Variant        Variant
	TargetPosition *hexgrid.Cube
	TargetID       string
	AbilityID      string
}

// Intent is the processor's unified view of one actor's action,
// whether it came from a submitted PlayerAction or a cached
// ai.Decision. Both resolve through the same pipeline.
type Intent struct {
	ActorID        string
	Variant        Variant
	TargetPosition *hexgrid.Cube
	TargetID       string
	AbilityID      string
}

// FromPlayerAction builds an Intent from a submitted PlayerAction.
func FromPlayerAction(pa PlayerAction) Intent {
	return Intent{
		ActorID:        pa.PlayerID,
		Variant:        pa.Variant,
		TargetPosition: pa.TargetPosition,
		TargetID:       pa.TargetID,
		AbilityID:      pa.AbilityID,
	}
}

// FromAIDecision builds an Intent from a monster's cached AI decision.
func FromAIDecision(actorID string, d ai.Decision) Intent {
	var variant Variant
	switch d.Kind {
	case ai.DecisionAttack:
		variant = Attack
	case ai.DecisionAbility:
		variant = Ability
	case ai.DecisionMove:
		variant = Move
	default:
		variant = Wait
	}
	return Intent{
		ActorID:        actorID,
		Variant:        variant,
		TargetPosition: d.TargetPosition,
		TargetID:       d.TargetID,
		AbilityID:      d.AbilityID,
	}
}

// ActionResult reports the outcome of resolving one Intent.
type ActionResult struct {
	EntityID    string
	EntityName  string
	Variant     Variant
	Success     bool
	Reason      string
	DamageDealt int
	HealingDone int
	NewPosition *hexgrid.Cube
	TargetID    string
	AbilityUsed string
}

// Entity is the narrow, mutating view the processor needs of a player
// or monster. entity.Player and entity.Monster both satisfy it through
// their embedded entity.Base; action never imports entity, keeping the
// dependency one-directional (the engine wires concrete entities in
// through World).
type Entity interface {
	GetID() string
	GetType() string
	Name() string
	Position() hexgrid.Cube
	IsAlive() bool
	CanAct() bool
	CanBeTargeted() bool
	EffectiveArmor() int
	AttackDamage(base *int) int
	ApplyIncomingDamage(raw int, source string) stats.DamageResult
	ApplyIncomingHealing(raw int) stats.HealResult
	AddStatusEffect(name string, duration int, value float64) error
	TryMove(target hexgrid.Cube, occupied, obstacles movement.OccupancySet) (movement.Result, error)
	AbilitySet() *ability.Set
}

// World is the processor's read/write seam into the game state: entity
// lookup, occupancy/obstacles for movement, and the living monsters'
// threat tables for threat emission. The engine's state manager
// implements this.
type World interface {
	Lookup(id string) (Entity, bool)
	// MonsterThreat returns id's own threat table if id names a
	// monster, for attack-threat emission.
	MonsterThreat(id string) (*threat.Table, bool)
	// LivingMonsterThreatTables returns every currently-alive monster's
	// threat table, for the threat a player healing someone else draws
	// from the whole monster side.
	LivingMonsterThreatTables() []*threat.Table
	// Occupied returns the occupancy set excluding excludeID's own
	// current cell, so an entity is never blocked by itself.
	Occupied(excludeID string) movement.OccupancySet
	Obstacles() movement.OccupancySet

	// EnemiesOf returns every living entity on the opposing faction from
	// actorID (players for a monster actor, monsters for a player
	// actor), for resolving an area-of-effect ability against every
	// qualifying target at once.
	EnemiesOf(actorID string) []Entity
}

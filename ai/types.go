package ai

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
)

// Variant names one of the six fixed AI behavior policies.
type Variant string

const (
	Aggressive Variant = "aggressive"
	Defensive  Variant = "defensive"
	Tactical   Variant = "tactical"
	Berserker  Variant = "berserker"
	Support    Variant = "support"
	Passive    Variant = "passive"
)

// Combatant is the narrow, read-only view a strategy needs of any
// entity: self, ally, or enemy. The concrete entity package implements
// this; ai never imports entity back.
type Combatant interface {
	ID() string
	Position() hexgrid.Cube
	CurrentHP() int
	MaxHP() int
	EffectiveArmor() int
	MovementRange() int
	// ReadyAbilities returns the abilities this combatant could use
	// right now (known and not on cooldown).
	ReadyAbilities() []ability.Definition
}

// HPFraction returns c's current HP divided by max HP, or 0 if MaxHP
// is non-positive.
func HPFraction(c Combatant) float64 {
	if c.MaxHP() <= 0 {
		return 0
	}
	return float64(c.CurrentHP()) / float64(c.MaxHP())
}

// Context is the per-decision, read-only view a strategy evaluates
// against. It borrows allies/enemies for the duration of one Decide
// call and must not be retained past it.
type Context struct {
	Self         Combatant
	Allies       []Combatant
	Enemies      []Combatant
	CurrentRound int
	// Obstacles is the set of cells a move may not land on: map
	// obstacles plus every living entity's current position, keyed by
	// hexgrid.Cube.Key().
	Obstacles map[string]bool
}

// DecisionKind is the tagged-union discriminator for Decision.
type DecisionKind string

const (
	DecisionAttack  DecisionKind = "attack"
	DecisionAbility DecisionKind = "ability"
	DecisionMove    DecisionKind = "move"
	DecisionWait    DecisionKind = "wait"
)

// Decision is what a strategy or behavior rule produces for one
// monster's turn.
type Decision struct {
	Kind           DecisionKind
	TargetID       string
	TargetPosition *hexgrid.Cube
	AbilityID      string
	Priority       int
	Reasoning      string
}

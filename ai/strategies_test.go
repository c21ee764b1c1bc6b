package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

type fakeCombatant struct {
	id            string
	pos           hexgrid.Cube
	hp, maxHP     int
	armor         int
	movementRange int
	ready         []ability.Definition
}

func (f *fakeCombatant) ID() string                           { return f.id }
func (f *fakeCombatant) Position() hexgrid.Cube               { return f.pos }
func (f *fakeCombatant) CurrentHP() int                       { return f.hp }
func (f *fakeCombatant) MaxHP() int                           { return f.maxHP }
func (f *fakeCombatant) EffectiveArmor() int                  { return f.armor }
func (f *fakeCombatant) MovementRange() int                   { return f.movementRange }
func (f *fakeCombatant) ReadyAbilities() []ability.Definition { return f.ready }

func combatant(id string, pos hexgrid.Cube, hp, maxHP int) *fakeCombatant {
	return &fakeCombatant{id: id, pos: pos, hp: hp, maxHP: maxHP, movementRange: 2}
}

func TestAggressiveAttacksNearestWithinTwo(t *testing.T) {
	self := combatant("goblin", hexgrid.FromAxial(0, 0), 50, 50)
	enemy := combatant("hero", hexgrid.FromAxial(2, 0), 100, 100)

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{enemy}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Aggressive, nil, ctx, nil, rng.NewSeeded(1))

	assert.Equal(t, ai.DecisionAttack, d.Kind)
	assert.Equal(t, "hero", d.TargetID)
}

func TestAggressiveStepsTowardThreatTargetWhenFar(t *testing.T) {
	self := combatant("goblin", hexgrid.FromAxial(0, 0), 50, 50)
	enemy := combatant("hero", hexgrid.FromAxial(5, 0), 100, 100)

	tbl := threat.NewTable(threat.DefaultConfig())
	tbl.Update("hero", threat.Update{TotalDamageDealt: 10})

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{enemy}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Aggressive, nil, ctx, tbl, rng.NewSeeded(1))

	require.Equal(t, ai.DecisionMove, d.Kind)
	require.NotNil(t, d.TargetPosition)
	assert.Less(t, hexgrid.Distance(*d.TargetPosition, enemy.Position()), hexgrid.Distance(self.Position(), enemy.Position()))
}

func TestAggressiveWaitsWithNoEnemies(t *testing.T) {
	self := combatant("goblin", hexgrid.FromAxial(0, 0), 50, 50)
	ctx := ai.Context{Self: self, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Aggressive, nil, ctx, nil, rng.NewSeeded(1))
	assert.Equal(t, ai.DecisionWait, d.Kind)
}

func TestDefensiveRetreatsBelow40Percent(t *testing.T) {
	self := combatant("guard", hexgrid.FromAxial(0, 0), 10, 100)
	enemy := combatant("hero", hexgrid.FromAxial(1, 0), 100, 100)

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{enemy}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Defensive, nil, ctx, nil, rng.NewSeeded(1))

	require.Equal(t, ai.DecisionMove, d.Kind)
	require.NotNil(t, d.TargetPosition)
	assert.GreaterOrEqual(t, hexgrid.Distance(*d.TargetPosition, enemy.Position()), hexgrid.Distance(self.Position(), enemy.Position()))
}

func TestDefensiveCounterattacksWhenHealthyAndAdjacent(t *testing.T) {
	self := combatant("guard", hexgrid.FromAxial(0, 0), 90, 100)
	enemy := combatant("hero", hexgrid.FromAxial(1, 0), 100, 100)

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{enemy}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Defensive, nil, ctx, nil, rng.NewSeeded(1))

	assert.Equal(t, ai.DecisionAttack, d.Kind)
	assert.Equal(t, "hero", d.TargetID)
}

func TestBerserkerTargetsLowestHPEnemy(t *testing.T) {
	self := combatant("brute", hexgrid.FromAxial(0, 0), 100, 100)
	strong := combatant("tank", hexgrid.FromAxial(1, 0), 90, 100)
	weak := combatant("squishy", hexgrid.FromAxial(-1, 0), 10, 100)

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{strong, weak}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Berserker, nil, ctx, nil, rng.NewSeeded(1))

	assert.Equal(t, "squishy", d.TargetID)
}

func TestPassiveOnlyCounterattacksWhenAdjacent(t *testing.T) {
	self := combatant("critter", hexgrid.FromAxial(0, 0), 50, 50)
	farEnemy := combatant("hero", hexgrid.FromAxial(3, 0), 100, 100)

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{farEnemy}, Obstacles: map[string]bool{}}
	assert.Equal(t, ai.DecisionWait, ai.Decide(ai.Passive, nil, ctx, nil, rng.NewSeeded(1)).Kind)

	ctx.Enemies = []ai.Combatant{combatant("adjacent", hexgrid.FromAxial(1, 0), 100, 100)}
	d := ai.Decide(ai.Passive, nil, ctx, nil, rng.NewSeeded(1))
	assert.Equal(t, ai.DecisionAttack, d.Kind)
}

func TestSupportHealsMostWoundedAlly(t *testing.T) {
	heal := ability.Definition{ID: "mend", Kind: ability.KindHealing, Healing: 15, Range: 3, TargetType: ability.TargetAlly}
	self := &fakeCombatant{id: "cleric", pos: hexgrid.FromAxial(0, 0), hp: 80, maxHP: 80, movementRange: 2, ready: []ability.Definition{heal}}
	ally := combatant("fighter", hexgrid.FromAxial(1, 0), 20, 100)

	ctx := ai.Context{Self: self, Allies: []ai.Combatant{ally}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Support, nil, ctx, nil, rng.NewSeeded(1))

	assert.Equal(t, ai.DecisionAbility, d.Kind)
	assert.Equal(t, "mend", d.AbilityID)
	assert.Equal(t, "fighter", d.TargetID)
}

func TestSupportFallsThroughToDefensiveWithoutWoundedAllies(t *testing.T) {
	self := &fakeCombatant{id: "cleric", pos: hexgrid.FromAxial(0, 0), hp: 80, maxHP: 80, movementRange: 2}
	ally := combatant("fighter", hexgrid.FromAxial(1, 0), 95, 100)

	ctx := ai.Context{Self: self, Allies: []ai.Combatant{ally}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Support, nil, ctx, nil, rng.NewSeeded(1))
	assert.Equal(t, ai.DecisionWait, d.Kind, "no adjacent enemy, healthy self: falls through to defensive's wait")
}

func TestBehaviorRuleFiresBeforeStrategy(t *testing.T) {
	self := combatant("guard", hexgrid.FromAxial(0, 0), 10, 100)
	enemy := combatant("hero", hexgrid.FromAxial(5, 0), 100, 100)
	rules := []ai.Rule{
		{Priority: 10, Condition: ai.Condition{Kind: ai.ConditionHPBelow, Threshold: 0.5}, Action: ai.Action{Kind: ai.ActionFocusTarget}},
	}

	ctx := ai.Context{Self: self, Enemies: []ai.Combatant{enemy}, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Passive, rules, ctx, nil, rng.NewSeeded(1))

	assert.Equal(t, ai.DecisionAttack, d.Kind)
	assert.Equal(t, "hero", d.TargetID)
}

func TestCallForHelpElidedToWait(t *testing.T) {
	self := combatant("goblin", hexgrid.FromAxial(0, 0), 100, 100)
	rules := []ai.Rule{
		{Priority: 5, Condition: ai.Condition{Kind: ai.ConditionHPAbove, Threshold: 0}, Action: ai.Action{Kind: ai.ActionCallForHelp}},
	}
	ctx := ai.Context{Self: self, Obstacles: map[string]bool{}}
	d := ai.Decide(ai.Aggressive, rules, ctx, nil, rng.NewSeeded(1))
	assert.Equal(t, ai.DecisionWait, d.Kind)
	assert.Contains(t, d.Reasoning, "elided")
}

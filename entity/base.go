package entity

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/movement"
	"github.com/zbonzo/CrimsonFall-sub000/stats"
	"github.com/zbonzo/CrimsonFall-sub000/statuseffect"
)

// Base holds the sub-systems every combatant, player or monster,
// exclusively owns: its stat block, active status effects, known
// abilities, and position.
type Base struct {
	id   string
	name string
	kind string

	Movement  *movement.Tracker
	Stats     *stats.Stats
	Statuses  *statuseffect.Tracker
	Abilities *ability.Set

	catalog statuseffect.Catalog
}

func newBase(id, name, kind string, base stats.BaseStats, levelUpEnabled bool, position hexgrid.Cube, catalog statuseffect.Catalog, abilities []ability.Definition) Base {
	return Base{
		id:        id,
		name:      name,
		kind:      kind,
		Movement:  movement.New(position, base.MovementRange),
		Stats:     stats.New(base, levelUpEnabled),
		Statuses:  statuseffect.NewTracker(catalog),
		Abilities: ability.NewSet(abilities...),
		catalog:   catalog,
	}
}

// GetID implements core.Entity.
func (b *Base) GetID() string { return b.id }

// ID implements ai.Combatant. It returns the same value as GetID; the
// two names exist because core.Entity and ai.Combatant were authored as
// separate narrow interfaces and neither should import the other.
func (b *Base) ID() string { return b.id }

// GetType implements core.Entity.
func (b *Base) GetType() string { return b.kind }

// Name returns the entity's display name.
func (b *Base) Name() string { return b.name }

// Position implements ai.Combatant.
func (b *Base) Position() hexgrid.Cube { return b.Movement.Position() }

// CurrentHP implements ai.Combatant.
func (b *Base) CurrentHP() int { return b.Stats.CurrentHP() }

// MaxHP implements ai.Combatant.
func (b *Base) MaxHP() int { return b.Stats.MaxHP() }

// EffectiveArmor is base armor plus temporary armor plus the shielded
// status bonus.
func (b *Base) EffectiveArmor() int {
	return b.Stats.EffectiveArmor() + int(b.Statuses.ArmorBonus())
}

// MovementRange implements ai.Combatant.
func (b *Base) MovementRange() int { return b.Stats.MovementRange() }

// IsAlive reports whether the entity has not yet died.
func (b *Base) IsAlive() bool { return !b.Stats.IsDead() }

// CanAct reports whether status effects allow this entity to act.
func (b *Base) CanAct() bool { return b.Statuses.CanAct() }

// CanMove reports whether status effects allow this entity to move.
func (b *Base) CanMove() bool { return b.Statuses.CanMove() }

// CanBeTargeted reports whether status effects allow this entity to be
// targeted (invisible blocks it).
func (b *Base) CanBeTargeted() bool { return b.Statuses.CanBeTargeted() }

// ReadyAbilities implements ai.Combatant: every learned ability not
// currently on cooldown.
func (b *Base) ReadyAbilities() []ability.Definition {
	var ready []ability.Definition
	for _, id := range b.Abilities.IDs() {
		if b.Abilities.RemainingCooldown(id) > 0 {
			continue
		}
		def, ok := b.Abilities.Get(id)
		if ok {
			ready = append(ready, def)
		}
	}
	return ready
}

// AttackDamage computes an attack's damage output: the stat block's
// base-damage-times-level-modifier, further scaled by the entity's
// status-effect damage modifier (enraged/weakened). base is nil to use
// the entity's own BaseDamage; an ability may override it with its own
// Damage value.
func (b *Base) AttackDamage(base *int) int {
	output := b.Stats.CalculateDamageOutput(base)
	return int(float64(output) * b.Statuses.DamageModifier())
}

// ApplyIncomingDamage applies raw damage after scaling it by the
// entity's vulnerable/damage-taken modifier, then routes it through
// the stat block's armor-reduction formula.
func (b *Base) ApplyIncomingDamage(raw int, source string) stats.DamageResult {
	scaled := int(float64(raw) * b.Statuses.DamageTakenModifier())
	return b.Stats.TakeDamage(scaled, source)
}

// ApplyIncomingHealing applies raw healing after scaling it by the
// entity's blessed/cursed healing modifier.
func (b *Base) ApplyIncomingHealing(raw int) stats.HealResult {
	scaled := int(float64(raw) * b.Statuses.HealingModifier())
	return b.Stats.Heal(scaled)
}

// ApplyRawDamage applies damage straight to the stat block, bypassing
// the damage-taken modifier. Used for periodic poison/burning ticks,
// which would otherwise double-count vulnerable.
func (b *Base) ApplyRawDamage(raw int, source string) stats.DamageResult {
	return b.Stats.TakeDamage(raw, source)
}

// ApplyRawHealing applies healing straight to the stat block, bypassing
// the healing modifier. Used for periodic regeneration ticks.
func (b *Base) ApplyRawHealing(raw int) stats.HealResult {
	return b.Stats.Heal(raw)
}

// AbilitySet returns the entity's ability set, for callers (the action
// processor) that need to check cooldowns or mark an ability used.
func (b *Base) AbilitySet() *ability.Set { return b.Abilities }

// TryMove attempts a single-step move to target, folding in this
// entity's current CanMove() status.
func (b *Base) TryMove(target hexgrid.Cube, occupied, obstacles movement.OccupancySet) (movement.Result, error) {
	return b.Movement.Move(target, occupied, obstacles, b.CanMove())
}

// AddStatusEffect applies name to this entity; see
// statuseffect.Tracker.AddEffect for the stacking/replacement rules.
func (b *Base) AddStatusEffect(name string, duration int, value float64) error {
	return b.Statuses.AddEffect(name, duration, value)
}

// ProcessRoundResult bundles the per-entity outputs of one round's
// upkeep: status ticks applied, abilities that came off cooldown.
type ProcessRoundResult struct {
	StatusTicks      statuseffect.RoundResult
	ExpiredAbilities []string
}

// ProcessRound applies this entity's once-per-round upkeep: status
// effect ticks (poison/burning damage, regeneration healing) followed
// by expiry, ability cooldown decrement, and the movement flag reset.
// A dead entity still processes; its ticks are no-ops because
// TakeDamage/Heal short-circuit on a dead stat block.
func (b *Base) ProcessRound() ProcessRoundResult {
	tickResult := b.Statuses.ProcessRound()
	for _, tick := range tickResult.Ticks {
		switch tick.Kind {
		case statuseffect.TickPoisonDamage, statuseffect.TickBurningDamage:
			b.ApplyRawDamage(int(tick.Value), string(tick.Kind))
		case statuseffect.TickRegeneration:
			b.ApplyRawHealing(int(tick.Value))
		}
	}

	expiredAbilities := b.Abilities.ProcessRound()
	b.Movement.ResetForNewRound()

	return ProcessRoundResult{StatusTicks: tickResult, ExpiredAbilities: expiredAbilities}
}

// ResetForEncounter restores this entity to its starting state for a
// fresh encounter: HP refilled, effects cleared, cooldowns cleared,
// abilities' temporary grants removed, and position reset. Threat and
// AI decision state are reset by Monster's own ResetForEncounter,
// since only monsters carry them.
func (b *Base) ResetForEncounter(position hexgrid.Cube) {
	b.Stats.ResetForEncounter()
	b.Statuses = statuseffect.NewTracker(b.catalog)
	b.Abilities.ResetForEncounter()
	b.Movement.ResetForEncounter(position)
}

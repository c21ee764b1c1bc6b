package stats

import "math"

// BaseStats are the embedder-supplied stats a PlayerClass or
// MonsterDefinition carries before any combat modifiers apply.
type BaseStats struct {
	MaxHP         int
	BaseArmor     int
	BaseDamage    int
	MovementRange int
}

// DamageResult reports the outcome of TakeDamage.
type DamageResult struct {
	DamageDealt int
	Blocked     int
	Died        bool
}

// HealResult reports the outcome of Heal.
type HealResult struct {
	AmountHealed int
}

// LevelUpResult reports the outcome of AddExperience.
type LevelUpResult struct {
	LeveledUp            bool
	NewLevel             int
	DamageModifierGained float64
}

// Stats is the mutable combat stat block for a player or monster.
type Stats struct {
	base BaseStats

	currentHP      int
	temporaryArmor int
	damageModifier float64
	level          int
	experience     int
	levelUpEnabled bool
}

// New creates a Stats block at full HP, level 1, damage modifier 1.0.
// levelUpEnabled controls whether AddExperience can ever level the
// entity up (monsters typically leave this false).
func New(base BaseStats, levelUpEnabled bool) *Stats {
	return &Stats{
		base:           base,
		currentHP:      base.MaxHP,
		damageModifier: 1.0,
		level:          1,
		levelUpEnabled: levelUpEnabled,
	}
}

// MaxHP returns the entity's maximum hit points.
func (s *Stats) MaxHP() int { return s.base.MaxHP }

// CurrentHP returns the entity's current hit points.
func (s *Stats) CurrentHP() int { return s.currentHP }

// IsDead reports whether current HP has reached zero.
func (s *Stats) IsDead() bool { return s.currentHP <= 0 }

// Level returns the entity's current level.
func (s *Stats) Level() int { return s.level }

// Experience returns accumulated experience since the last level up.
func (s *Stats) Experience() int { return s.experience }

// DamageModifier returns the current damage output multiplier.
func (s *Stats) DamageModifier() float64 { return s.damageModifier }

// SetDamageModifier sets the damage output multiplier, floored at 0.1.
func (s *Stats) SetDamageModifier(v float64) {
	if v < 0.1 {
		v = 0.1
	}
	s.damageModifier = v
}

// AddTemporaryArmor adjusts temporary armor granted by status effects or
// abilities. The "shielded" effect's bonus is not stored here; it is
// added separately by entity.Base.EffectiveArmor.
func (s *Stats) AddTemporaryArmor(delta int) {
	s.temporaryArmor += delta
}

// EffectiveArmor returns base armor plus any temporary armor bonus.
func (s *Stats) EffectiveArmor() int {
	return s.base.BaseArmor + s.temporaryArmor
}

// MovementRange returns the entity's per-round movement range.
func (s *Stats) MovementRange() int { return s.base.MovementRange }

// ResetForEncounter restores HP to full and clears any temporary armor
// bonus. Level, experience, and the damage modifier persist across
// encounters.
func (s *Stats) ResetForEncounter() {
	s.currentHP = s.base.MaxHP
	s.temporaryArmor = 0
}

// TakeDamage applies raw damage after armor reduction. A dead entity
// takes no further damage. source is accepted for callers that want to
// attribute the hit (e.g. telemetry) but does not affect the formula.
func (s *Stats) TakeDamage(raw int, source string) DamageResult {
	_ = source
	if s.IsDead() {
		return DamageResult{}
	}
	if raw < 0 {
		raw = 0
	}

	reductionRate := math.Min(0.9, float64(s.EffectiveArmor())*0.1)
	armorReduction := int(math.Floor(float64(raw) * reductionRate))
	netDamage := raw - armorReduction
	if netDamage < 1 {
		netDamage = 1
	}
	if raw == 0 {
		netDamage = 0
		armorReduction = 0
	}

	s.currentHP -= netDamage
	if s.currentHP < 0 {
		s.currentHP = 0
	}

	return DamageResult{
		DamageDealt: netDamage,
		Blocked:     armorReduction,
		Died:        s.currentHP == 0,
	}
}

// Heal restores HP, clamped to MaxHP. A dead entity cannot be healed.
func (s *Stats) Heal(raw int) HealResult {
	if s.IsDead() {
		return HealResult{}
	}
	if raw < 0 {
		raw = 0
	}

	before := s.currentHP
	s.currentHP += raw
	if s.currentHP > s.base.MaxHP {
		s.currentHP = s.base.MaxHP
	}

	return HealResult{AmountHealed: s.currentHP - before}
}

// CalculateDamageOutput applies the damage modifier to base (or the
// entity's BaseDamage if base is nil).
func (s *Stats) CalculateDamageOutput(base *int) int {
	b := s.base.BaseDamage
	if base != nil {
		b = *base
	}
	return int(math.Floor(float64(b) * s.damageModifier))
}

// AddExperience grants n experience points (coerced to zero if
// negative). If level-ups are enabled and accumulated experience meets
// the level threshold (level*100), the entity gains one level: the
// threshold is subtracted, the damage modifier increases by 0.10, and
// HP is restored to full. At most one level is gained per call, even
// if the remaining experience would meet the next threshold too.
func (s *Stats) AddExperience(n int) LevelUpResult {
	if n < 0 {
		n = 0
	}
	s.experience += n

	if !s.levelUpEnabled {
		return LevelUpResult{}
	}

	threshold := s.level * 100
	if s.experience < threshold {
		return LevelUpResult{}
	}

	s.experience -= threshold
	s.level++
	s.damageModifier += 0.10
	s.currentHP = s.base.MaxHP

	return LevelUpResult{
		LeveledUp:            true,
		NewLevel:             s.level,
		DamageModifierGained: 0.10,
	}
}

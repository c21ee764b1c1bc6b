package entity

import (
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/core"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/statuseffect"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// KindMonster is the GetType() value every Monster reports.
const KindMonster = "monster"

var _ core.Entity = (*Monster)(nil)
var _ ai.Combatant = (*Monster)(nil)

// Monster is a server-controlled combatant. Each monster exclusively
// owns its threat table and AI decision state; AI strategies
// themselves stay stateless and are looked up from ai.Strategies by
// AIVariant each decision.
type Monster struct {
	Base

	DefinitionID string
	AIVariant    ai.Variant
	Behaviors    []ai.Rule
	Difficulty   string
	LootTable    []string
	Tags         []string

	Threat       *threat.Table
	lastDecision *ai.Decision
}

// NewMonster creates a Monster from def at the given starting
// position, seeded with catalog's status-effect definitions.
func NewMonster(def MonsterDefinition, id, name string, position hexgrid.Cube, catalog statuseffect.Catalog) *Monster {
	return &Monster{
		Base:         newBase(id, name, KindMonster, def.Stats, false, position, catalog, def.Abilities),
		DefinitionID: def.ID,
		AIVariant:    def.AIVariant,
		Behaviors:    def.Behaviors,
		Difficulty:   def.Difficulty,
		LootTable:    def.LootTable,
		Tags:         def.Tags,
		Threat:       threat.NewTable(def.ThreatConfig),
	}
}

// Decide runs this monster's behavior rules and AI strategy against
// ctx, caches the resulting Decision, and returns it. Strategies are
// plain functions looked up by variant; none holds a pointer back to
// the monster it decides for.
func (m *Monster) Decide(ctx ai.Context, source rng.Source) ai.Decision {
	var tbl *threat.Table
	if m.Threat.Config().Enabled {
		tbl = m.Threat
	}
	decision := ai.Decide(m.AIVariant, m.Behaviors, ctx, tbl, source)
	m.lastDecision = &decision
	return decision
}

// LastDecision returns the most recent cached AI decision, if any.
func (m *Monster) LastDecision() (ai.Decision, bool) {
	if m.lastDecision == nil {
		return ai.Decision{}, false
	}
	return *m.lastDecision, true
}

// ResetForEncounter restores this monster to full HP at position with
// a clean status/ability/movement/threat state and clears its cached
// AI decision.
func (m *Monster) ResetForEncounter(position hexgrid.Cube) {
	m.Base.ResetForEncounter(position)
	m.Threat = threat.NewTable(m.Threat.Config())
	m.lastDecision = nil
}

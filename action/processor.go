package action

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/rpgerr"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// basicAttackRange is the fixed range of the engine's seeded
// basic_attack ability.
const basicAttackRange = 1

// Entity kinds the processor branches on for threat emission. These
// mirror entity.KindPlayer/KindMonster; action does not import entity,
// so the strings are restated here.
const (
	kindPlayer  = "player"
	kindMonster = "monster"
)

// Processor resolves Intents into ActionResults against a World.
type Processor struct{}

// NewProcessor creates a Processor. It holds no state of its own; one
// value may be reused across rounds and encounters.
func NewProcessor() *Processor {
	return &Processor{}
}

// ResolveAll resolves each intent in order: the round scheduler
// supplies player actions first, in player-list order, then monster AI
// decisions. The processor itself does not reorder.
func (p *Processor) ResolveAll(intents []Intent, world World, source rng.Source) []ActionResult {
	results := make([]ActionResult, len(intents))
	for i, intent := range intents {
		results[i] = p.Resolve(intent, world, source)
	}
	return results
}

// Resolve executes one Intent against world. Any panic raised by a
// sub-operation is converted into a failed ActionResult rather than
// propagating, so one bad action never aborts the round.
func (p *Processor) Resolve(intent Intent, world World, source rng.Source) (result ActionResult) {
	actor, ok := world.Lookup(intent.ActorID)
	result = ActionResult{EntityID: intent.ActorID, Variant: intent.Variant}
	if ok {
		result.EntityName = actor.Name()
	}

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Reason = rpgerr.Newf(rpgerr.CodeInternal, "action processor recovered: %v", r).Error()
		}
	}()

	if !ok {
		result.Reason = rpgerr.NotFound("unknown actor: " + intent.ActorID).Error()
		return result
	}
	if !actor.IsAlive() {
		result.Reason = rpgerr.NotAllowed("actor is dead").Error()
		return result
	}
	if (intent.Variant == Attack || intent.Variant == Ability) && !actor.CanAct() {
		result.Reason = rpgerr.NotAllowed("status effects prevent acting").Error()
		return result
	}

	switch intent.Variant {
	case Move:
		return p.resolveMove(actor, intent, world, result)
	case Attack:
		return p.resolveAttack(actor, intent, world, result)
	case Ability:
		return p.resolveAbility(actor, intent, world, source, result)
	case Wait:
		result.Success = true
		return result
	default:
		result.Reason = rpgerr.InvalidArgument("unknown action variant: " + string(intent.Variant)).Error()
		return result
	}
}

func (p *Processor) resolveMove(actor Entity, intent Intent, world World, result ActionResult) ActionResult {
	if intent.TargetPosition == nil {
		result.Reason = rpgerr.InvalidArgument("move requires a target position").Error()
		return result
	}

	occupied := world.Occupied(actor.GetID())
	obstacles := world.Obstacles()
	moveResult, err := actor.TryMove(*intent.TargetPosition, occupied, obstacles)
	if err != nil {
		result.Reason = err.Error()
		return result
	}

	result.Success = true
	result.NewPosition = &moveResult.To
	return result
}

func (p *Processor) resolveAttack(actor Entity, intent Intent, world World, result ActionResult) ActionResult {
	target, err := p.resolveTarget(actor, intent.TargetID, world, basicAttackRange)
	if err != nil {
		result.Reason = err.Error()
		return result
	}

	damage := actor.AttackDamage(nil)
	dmgResult := target.ApplyIncomingDamage(damage, actor.GetID())

	result.Success = true
	result.TargetID = target.GetID()
	result.DamageDealt = dmgResult.DamageDealt

	p.emitAttackThreat(actor, target, world, float64(dmgResult.DamageDealt))
	return result
}

// resolveTarget looks up targetID and validates it is alive,
// targetable, and within maxRange of actor.
func (p *Processor) resolveTarget(actor Entity, targetID string, world World, maxRange int) (Entity, error) {
	if targetID == "" {
		return nil, rpgerr.InvalidArgument("target is required")
	}
	target, ok := world.Lookup(targetID)
	if !ok {
		return nil, rpgerr.NotFound("unknown target: " + targetID)
	}
	if !target.IsAlive() {
		return nil, rpgerr.InvalidTarget("target is dead")
	}
	if !target.CanBeTargeted() {
		return nil, rpgerr.InvalidTarget("target cannot be targeted")
	}
	if hexgrid.Distance(actor.Position(), target.Position()) > maxRange {
		return nil, rpgerr.OutOfRange("out of range")
	}
	return target, nil
}

func (p *Processor) resolveAbility(actor Entity, intent Intent, world World, source rng.Source, result ActionResult) ActionResult {
	def, ok := actor.AbilitySet().Get(intent.AbilityID)
	if !ok {
		result.Reason = rpgerr.NotFound("unknown ability: " + intent.AbilityID).Error()
		return result
	}
	if err := actor.AbilitySet().UseAbility(intent.AbilityID); err != nil {
		result.Reason = err.Error()
		return result
	}
	result.AbilityUsed = def.ID

	if def.Kind == ability.KindAttack && def.AreaOfEffect > 0 {
		return p.resolveAreaAttack(actor, def, world, result)
	}

	needsTarget := def.Kind == ability.KindAttack ||
		(def.Kind == ability.KindHealing && def.Range > 0) ||
		(def.Kind == ability.KindDefense && def.Range > 0)

	var target Entity
	if needsTarget {
		t, err := p.resolveTarget(actor, intent.TargetID, world, def.Range)
		if err != nil {
			result.Reason = err.Error()
			return result
		}
		target = t
	} else if intent.TargetID != "" {
		if t, ok := world.Lookup(intent.TargetID); ok {
			target = t
		}
	}
	if target == nil {
		target = actor
	}

	result.Success = true
	result.TargetID = target.GetID()

	switch def.Kind {
	case ability.KindAttack:
		damage := actor.AttackDamage(&def.Damage)
		dmgResult := target.ApplyIncomingDamage(damage, actor.GetID())
		result.DamageDealt = dmgResult.DamageDealt
		p.emitAttackThreat(actor, target, world, float64(dmgResult.DamageDealt))
	case ability.KindHealing:
		healResult := target.ApplyIncomingHealing(def.Healing)
		result.HealingDone = healResult.AmountHealed
		if target.GetID() != actor.GetID() {
			p.emitHealingThreat(actor, world, float64(healResult.AmountHealed))
		}
	}

	for _, grant := range def.StatusEffects {
		if source.Float64() < grant.EffectiveChance() {
			_ = target.AddStatusEffect(grant.Name, grant.Duration, grant.Value)
		}
	}

	return result
}

// resolveAreaAttack applies an area-of-effect attack ability to every
// living, targetable enemy within def.AreaOfEffect of the caster's own
// position. It requires no primary target and always succeeds, even
// when nothing is in range.
func (p *Processor) resolveAreaAttack(actor Entity, def ability.Definition, world World, result ActionResult) ActionResult {
	result.Success = true

	hits := 0
	for _, target := range world.EnemiesOf(actor.GetID()) {
		if !target.IsAlive() || !target.CanBeTargeted() {
			continue
		}
		if hexgrid.Distance(actor.Position(), target.Position()) > def.AreaOfEffect {
			continue
		}
		damage := actor.AttackDamage(&def.Damage)
		dmgResult := target.ApplyIncomingDamage(damage, actor.GetID())
		result.DamageDealt += dmgResult.DamageDealt
		hits++
		p.emitAttackThreat(actor, target, world, float64(dmgResult.DamageDealt))
	}
	if hits == 0 {
		result.Reason = "no targets in area"
	}
	return result
}

// emitAttackThreat folds one resolved attack into the affected
// monster's threat table. A player hitting a monster makes that player
// hotter in the defender's table; a monster hitting a player keeps the
// victim hot in the attacker's own table. Either way exactly one
// monster table is updated per hit, and player-vs-player or
// monster-vs-monster hits generate nothing.
func (p *Processor) emitAttackThreat(actor, target Entity, world World, damage float64) {
	switch {
	case actor.GetType() == kindPlayer && target.GetType() == kindMonster:
		if tbl, ok := world.MonsterThreat(target.GetID()); ok {
			tbl.Update(actor.GetID(), threat.Update{
				DamageToSelf:     damage,
				TotalDamageDealt: damage,
				PlayerArmor:      float64(actor.EffectiveArmor()),
			})
		}
	case actor.GetType() == kindMonster && target.GetType() == kindPlayer:
		if tbl, ok := world.MonsterThreat(actor.GetID()); ok {
			tbl.Update(target.GetID(), threat.Update{
				DamageToSelf:     damage,
				TotalDamageDealt: damage,
				PlayerArmor:      float64(target.EffectiveArmor()),
			})
		}
	}
}

// emitHealingThreat makes a player who healed someone else hotter in
// every living monster's table. A monster healing its allies generates
// nothing; monsters do not appear in threat tables.
func (p *Processor) emitHealingThreat(actor Entity, world World, healed float64) {
	if actor.GetType() != kindPlayer {
		return
	}
	for _, tbl := range world.LivingMonsterThreatTables() {
		tbl.Update(actor.GetID(), threat.Update{
			HealingDone: healed,
			PlayerArmor: float64(actor.EffectiveArmor()),
		})
	}
}

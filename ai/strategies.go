package ai

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// Strategy is one AI variant's policy function, invoked once an
// entity's behavior rules have all failed to fire.
type Strategy func(ctx Context, tbl *threat.Table, source rng.Source) Decision

// Strategies is the fixed dispatch table, one entry per Variant.
var Strategies = map[Variant]Strategy{
	Aggressive: aggressiveStrategy,
	Defensive:  defensiveStrategy,
	Tactical:   tacticalStrategy,
	Berserker:  berserkerStrategy,
	Support:    supportStrategy,
	Passive:    passiveStrategy,
}

// Decide evaluates rules (in priority order) and, if none fire, the
// variant's strategy. This is the single entry point the monster AI
// layer calls once per decision.
func Decide(variant Variant, rules []Rule, ctx Context, tbl *threat.Table, source rng.Source) Decision {
	if d, ok := EvaluateRules(rules, ctx); ok {
		return d
	}
	strat, ok := Strategies[variant]
	if !ok {
		return Decision{Kind: DecisionWait, Reasoning: "unknown AI variant"}
	}
	return strat(ctx, tbl, source)
}

func waitDecision(reason string) Decision {
	return Decision{Kind: DecisionWait, Reasoning: reason}
}

func attackDecision(target Combatant, reasoning string) Decision {
	return Decision{Kind: DecisionAttack, TargetID: target.ID(), Reasoning: reasoning}
}

// aggressiveStrategy: attack the nearest enemy within distance 2;
// otherwise ask threat for a target and step toward it; otherwise wait.
func aggressiveStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	if target := nearestEnemy(ctx); target != nil && distance(ctx.Self, target) <= 2 {
		return attackDecision(target, "aggressive: nearest enemy within range")
	}

	if tbl != nil {
		if target, ok := selectThreatTarget(ctx, tbl, source); ok {
			pos := stepToward(ctx.Self, target.Position(), ctx.Obstacles)
			return Decision{Kind: DecisionMove, TargetPosition: &pos, Reasoning: "aggressive: closing on threat target"}
		}
	}
	return waitDecision("aggressive: no enemies to engage")
}

// defensiveStrategy: retreat when hurt, counterattack when cornered,
// otherwise wait.
func defensiveStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	if HPFraction(ctx.Self) < 0.4 {
		pos := stepAwayFromAll(ctx.Self, ctx.Enemies, ctx.Obstacles)
		return Decision{Kind: DecisionMove, TargetPosition: &pos, Reasoning: "defensive: retreating at low HP"}
	}
	if target := adjacentEnemy(ctx); target != nil {
		return attackDecision(target, "defensive: counterattacking adjacent enemy")
	}
	return waitDecision("defensive: no threat to respond to")
}

// tacticalStrategy weighs outnumbered/advantage/low-HP/crowding before
// falling back to the nearest enemy.
func tacticalStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	friendlyCount := len(ctx.Allies) + 1
	enemyCount := len(ctx.Enemies)
	outnumbered := enemyCount > friendlyCount
	advantaged := friendlyCount > enemyCount
	lowHP := HPFraction(ctx.Self) < 0.4
	nearbyEnemies := countWithin(ctx.Self, ctx.Enemies, 2)

	if tbl != nil {
		if sel := tbl.SelectTarget(threatCandidates(ctx.Enemies), source); sel.Found {
			if target := findByID(ctx.Enemies, sel.Target); target != nil && distance(ctx.Self, target) <= 1 {
				d := attackDecision(target, "tactical: pressing threat target")
				d.Priority = int(sel.Confidence * 10)
				return d
			}
		}
	}

	if lowHP && nearbyEnemies >= 2 {
		pos := stepAwayFromAll(ctx.Self, ctx.Enemies, ctx.Obstacles)
		return Decision{Kind: DecisionMove, TargetPosition: &pos, Reasoning: "tactical: kiting while low and crowded"}
	}

	if outnumbered {
		if isolated := isolatedEnemy(ctx.Enemies); isolated != nil {
			return attackDecision(isolated, "tactical: picking off isolated enemy")
		}
		if ally := nearestAlly(ctx); ally != nil {
			pos := stepToward(ctx.Self, ally.Position(), ctx.Obstacles)
			return Decision{Kind: DecisionMove, TargetPosition: &pos, Reasoning: "tactical: falling back to allies while outnumbered"}
		}
	}

	if advantaged {
		if target := lowestHPEnemy(ctx.Enemies); target != nil {
			return attackDecision(target, "tactical: focusing weakest enemy with the advantage")
		}
	}

	if target := nearestEnemy(ctx); target != nil {
		return attackDecision(target, "tactical: default nearest enemy")
	}
	return waitDecision("tactical: no enemies present")
}

// berserkerStrategy always targets the lowest-HP enemy, charging in
// when not already adjacent, with escalating priority below half HP.
func berserkerStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	target := lowestHPEnemy(ctx.Enemies)
	if target == nil {
		return waitDecision("berserker: no enemies present")
	}

	priority := 0
	if HPFraction(ctx.Self) < 0.5 {
		priority = 10
	}

	if distance(ctx.Self, target) <= 1 {
		d := attackDecision(target, "berserker: savaging the weakest enemy")
		d.Priority = priority
		return d
	}
	pos := stepToward(ctx.Self, target.Position(), ctx.Obstacles)
	return Decision{Kind: DecisionMove, TargetPosition: &pos, Priority: priority, Reasoning: "berserker: charging the weakest enemy"}
}

// supportStrategy heals the most wounded ally below 60% HP, falling
// through to defensive behavior otherwise.
func supportStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	wounded := mostWoundedAllyBelow(ctx, 0.6)
	if wounded != nil {
		if healID, ok := readyAbilityOfKind(ctx.Self, ability.KindHealing); ok {
			return Decision{Kind: DecisionAbility, AbilityID: healID, TargetID: wounded.ID(), Reasoning: "support: healing the most wounded ally"}
		}
	}
	return defensiveStrategy(ctx, tbl, source)
}

// passiveStrategy only counterattacks when cornered, otherwise waits.
func passiveStrategy(ctx Context, tbl *threat.Table, source rng.Source) Decision {
	if target := adjacentEnemy(ctx); target != nil {
		return attackDecision(target, "passive: counterattacking adjacent enemy")
	}
	return waitDecision("passive: avoiding conflict")
}

func selectThreatTarget(ctx Context, tbl *threat.Table, source rng.Source) (Combatant, bool) {
	sel := tbl.SelectTarget(threatCandidates(ctx.Enemies), source)
	if !sel.Found {
		return nil, false
	}
	target := findByID(ctx.Enemies, sel.Target)
	return target, target != nil
}

func threatCandidates(enemies []Combatant) []threat.Candidate {
	out := make([]threat.Candidate, len(enemies))
	for i, e := range enemies {
		out[i] = threat.Candidate{ID: e.ID(), CurrentHP: e.CurrentHP(), MaxHP: e.MaxHP()}
	}
	return out
}

func findByID(combatants []Combatant, id string) Combatant {
	for _, c := range combatants {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func countWithin(self Combatant, others []Combatant, radius int) int {
	n := 0
	for _, o := range others {
		if distance(self, o) <= radius {
			n++
		}
	}
	return n
}

// isolatedEnemy returns an enemy with no other enemy within distance 2
// of it, breaking ties by lowest id.
func isolatedEnemy(enemies []Combatant) Combatant {
	for _, e := range sortedByID(enemies) {
		alone := true
		for _, other := range enemies {
			if other.ID() == e.ID() {
				continue
			}
			if distance(e, other) <= 2 {
				alone = false
				break
			}
		}
		if alone {
			return e
		}
	}
	return nil
}

func nearestAlly(ctx Context) Combatant {
	return nearest(ctx.Self, ctx.Allies)
}

func mostWoundedAllyBelow(ctx Context, threshold float64) Combatant {
	candidate := mostWoundedAlly(ctx)
	if candidate == nil || HPFraction(candidate) >= threshold {
		return nil
	}
	return candidate
}

func readyAbilityOfKind(self Combatant, kind ability.Kind) (string, bool) {
	for _, def := range self.ReadyAbilities() {
		if def.Kind == kind {
			return def.ID, true
		}
	}
	return "", false
}

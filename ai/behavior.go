package ai

import (
	"sort"

	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
)

// ConditionKind is one of the five fixed behavior-rule conditions.
type ConditionKind string

const (
	ConditionHPBelow       ConditionKind = "hp_below"
	ConditionHPAbove       ConditionKind = "hp_above"
	ConditionEnemyInRange  ConditionKind = "enemy_in_range"
	ConditionAllyInDanger  ConditionKind = "ally_in_danger"
	ConditionCooldownReady ConditionKind = "cooldown_ready"
)

// Condition is one behavior rule's trigger. Only the fields relevant
// to Kind are read: Threshold for hp_below/hp_above/ally_in_danger,
// Range for enemy_in_range, AbilityID for cooldown_ready.
type Condition struct {
	Kind      ConditionKind
	Threshold float64
	Range     int
	AbilityID string
}

// ActionKind is one of the five fixed behavior-rule actions.
type ActionKind string

const (
	ActionUseAbility  ActionKind = "use_ability"
	ActionMoveTo      ActionKind = "move_to"
	ActionFlee        ActionKind = "flee"
	ActionFocusTarget ActionKind = "focus_target"
	// ActionCallForHelp resolves to a wait decision: the engine has no
	// reinforcement system for it to invoke, and emitting an ability use
	// against an ability nobody defines would fail every round. An
	// embedder that wants reinforcements listens on the telemetry bus
	// instead. See Rule.apply.
	ActionCallForHelp ActionKind = "call_for_help"
)

// Action is what a Rule does once its Condition evaluates true.
type Action struct {
	Kind           ActionKind
	AbilityID      string
	TargetPosition *hexgrid.Cube
}

// Rule is one scripted behavior entry: a condition and the action to
// take when it holds. Rules are evaluated highest Priority first.
type Rule struct {
	Priority  int
	Condition Condition
	Action    Action
}

// EvaluateRules returns the decision produced by the first rule (in
// descending-priority order) whose condition evaluates true against
// ctx, or (Decision{}, false) if none fire, in which case the caller
// falls through to the variant's strategy.
func EvaluateRules(rules []Rule, ctx Context) (Decision, bool) {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	for _, rule := range ordered {
		if conditionHolds(rule.Condition, ctx) {
			return rule.apply(ctx), true
		}
	}
	return Decision{}, false
}

func conditionHolds(c Condition, ctx Context) bool {
	switch c.Kind {
	case ConditionHPBelow:
		return HPFraction(ctx.Self) < c.Threshold
	case ConditionHPAbove:
		return HPFraction(ctx.Self) > c.Threshold
	case ConditionEnemyInRange:
		for _, e := range ctx.Enemies {
			if distance(ctx.Self, e) <= c.Range {
				return true
			}
		}
		return false
	case ConditionAllyInDanger:
		threshold := c.Threshold
		if threshold == 0 {
			threshold = 0.3
		}
		for _, a := range ctx.Allies {
			if HPFraction(a) < threshold {
				return true
			}
		}
		return false
	case ConditionCooldownReady:
		for _, def := range ctx.Self.ReadyAbilities() {
			if def.ID == c.AbilityID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (r Rule) apply(ctx Context) Decision {
	switch r.Action.Kind {
	case ActionUseAbility:
		target := nearestEnemy(ctx)
		targetID := ""
		if target != nil {
			targetID = target.ID()
		}
		return Decision{Kind: DecisionAbility, AbilityID: r.Action.AbilityID, TargetID: targetID, Priority: r.Priority, Reasoning: "behavior rule: use_ability"}
	case ActionMoveTo:
		if r.Action.TargetPosition == nil {
			return Decision{Kind: DecisionWait, Priority: r.Priority, Reasoning: "behavior rule: move_to with no destination"}
		}
		pos := stepToward(ctx.Self, *r.Action.TargetPosition, ctx.Obstacles)
		return Decision{Kind: DecisionMove, TargetPosition: &pos, Priority: r.Priority, Reasoning: "behavior rule: move_to"}
	case ActionFlee:
		pos := stepAwayFromAll(ctx.Self, ctx.Enemies, ctx.Obstacles)
		return Decision{Kind: DecisionMove, TargetPosition: &pos, Priority: r.Priority, Reasoning: "behavior rule: flee"}
	case ActionFocusTarget:
		target := lowestHPEnemy(ctx.Enemies)
		if target == nil {
			return Decision{Kind: DecisionWait, Priority: r.Priority, Reasoning: "behavior rule: focus_target with no enemies"}
		}
		return Decision{Kind: DecisionAttack, TargetID: target.ID(), Priority: r.Priority, Reasoning: "behavior rule: focus_target"}
	case ActionCallForHelp:
		return Decision{Kind: DecisionWait, Priority: r.Priority, Reasoning: "call_for_help elided: no reinforcement hook wired"}
	default:
		return Decision{Kind: DecisionWait, Priority: r.Priority, Reasoning: "behavior rule: unknown action"}
	}
}

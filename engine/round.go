package engine

import (
	"github.com/zbonzo/CrimsonFall-sub000/action"
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/entity"
	"github.com/zbonzo/CrimsonFall-sub000/statuseffect"
	"github.com/zbonzo/CrimsonFall-sub000/telemetry"
)

// RoundResult reports one round's outcome.
type RoundResult struct {
	RoundNumber         int
	ActionResults       []action.ActionResult
	StatusEffectResults map[string]statuseffect.RoundResult
	GameEnded           bool
	Winner              Winner
	Reason              string
}

// RoundStartedPayload is telemetry.RoundStarted's payload.
type RoundStartedPayload struct {
	RoundNumber int
}

// RoundEndedPayload is telemetry.RoundEnded's payload.
type RoundEndedPayload struct {
	Result RoundResult
}

// ActionResolvedPayload is telemetry.ActionResolved's payload.
type ActionResolvedPayload struct {
	Result action.ActionResult
}

// EntityDiedPayload is telemetry.EntityDied's payload.
type EntityDiedPayload struct {
	EntityID   string
	EntityType string
}

// ProcessRound advances the encounter by one round: AI decisions and
// submitted player actions resolve first, then threat decay, then
// status-effect ticks, then end-condition checks. Ticks observe
// post-action HP, and the end-condition check observes post-tick
// deaths. If the game is paused, not yet started, or already
// ended, ProcessRound returns an inert result and changes nothing.
func (e *Engine) ProcessRound() RoundResult {
	if e.paused || e.state.phase != PhasePlaying {
		return e.inertResult()
	}
	if winner, reason, ended := e.state.evaluateEndCondition(); ended {
		e.finalize(winner, reason)
		return e.inertResult()
	}

	roundNumber := e.state.currentRound
	e.bus.Publish(telemetry.Event{Topic: telemetry.RoundStarted, Payload: RoundStartedPayload{RoundNumber: roundNumber}})

	aliveBeforeActions := e.aliveSet()
	intents := e.collectIntents()
	results := e.processor.ResolveAll(intents, e.state, e.rng)
	for _, r := range results {
		e.bus.Publish(telemetry.Event{Topic: telemetry.ActionResolved, Payload: ActionResolvedPayload{Result: r}})
	}
	e.publishDeaths(aliveBeforeActions)

	// Threat decay happens exactly once per round, after action
	// resolution.
	e.applyThreatDecay()

	aliveBeforeTicks := e.aliveSet()
	statusResults := e.tickStatusEffects()
	e.publishDeaths(aliveBeforeTicks)

	// Occupancy is derived live from entity positions (state.Occupied),
	// so there is no cached set to refresh after the ticks' deaths.

	if winner, reason, ended := e.state.evaluateEndCondition(); ended {
		e.finalize(winner, reason)
	} else {
		e.state.currentRound++
		if e.state.currentRound > e.config.MaxRounds {
			e.finalize(WinnerDraw, "Maximum rounds reached")
		}
	}

	e.pending = make(map[string]action.PlayerAction)

	result := RoundResult{
		RoundNumber:         roundNumber,
		ActionResults:       results,
		StatusEffectResults: statusResults,
		GameEnded:           e.state.phase == PhaseEnded,
		Winner:              e.state.winner,
		Reason:              e.state.endReason,
	}
	e.history = append(e.history, result)
	e.bus.Publish(telemetry.Event{Topic: telemetry.RoundEnded, Payload: RoundEndedPayload{Result: result}})
	return result
}

func (e *Engine) inertResult() RoundResult {
	return RoundResult{
		RoundNumber: e.state.currentRound,
		GameEnded:   e.state.phase == PhaseEnded,
		Winner:      e.state.winner,
		Reason:      e.state.endReason,
	}
}

func (e *Engine) finalize(winner Winner, reason string) {
	e.state.phase = PhaseEnded
	e.state.winner = winner
	e.state.endReason = reason
}

// collectIntents gathers this round's Intents: submitted player
// actions first, in player-list order, then each alive, able-to-act
// monster's fresh AI decision, in monster-list order. A player who
// submitted nothing this round simply takes no action.
func (e *Engine) collectIntents() []action.Intent {
	var intents []action.Intent

	for _, id := range e.state.playerIDs {
		pa, ok := e.pending[id]
		if !ok {
			continue
		}
		intents = append(intents, action.FromPlayerAction(pa))
	}

	for _, id := range e.state.monsterIDs {
		m := e.state.monsters[id]
		if !m.IsAlive() || !m.CanAct() {
			continue
		}
		ctx := e.buildContext(m)
		decision := m.Decide(ctx, e.rng)
		intents = append(intents, action.FromAIDecision(m.GetID(), decision))
	}

	return intents
}

// buildContext assembles self's per-decision ai.Context: living allies
// and enemies, and the set of cells a move may not land on (static
// obstacles plus every living entity's current position). The context
// is rebuilt fresh for every decision and never retained.
func (e *Engine) buildContext(self *entity.Monster) ai.Context {
	var allies []ai.Combatant
	for _, id := range e.state.monsterIDs {
		if id == self.GetID() {
			continue
		}
		if m := e.state.monsters[id]; m.IsAlive() {
			allies = append(allies, m)
		}
	}

	var enemies []ai.Combatant
	for _, id := range e.state.playerIDs {
		if p := e.state.players[id]; p.IsAlive() {
			enemies = append(enemies, p)
		}
	}

	obstacles := make(map[string]bool, len(e.state.obstacles))
	for k := range e.state.obstacles {
		obstacles[k] = true
	}
	for _, id := range e.state.playerIDs {
		if p := e.state.players[id]; p.IsAlive() {
			obstacles[p.Position().Key()] = true
		}
	}
	for _, id := range e.state.monsterIDs {
		if m := e.state.monsters[id]; m.IsAlive() {
			obstacles[m.Position().Key()] = true
		}
	}

	return ai.Context{
		Self:         self,
		Allies:       allies,
		Enemies:      enemies,
		CurrentRound: e.state.currentRound,
		Obstacles:    obstacles,
	}
}

// tickStatusEffects applies every entity's once-per-round
// status-effect upkeep, including dead entities; their ticks are
// no-ops because Stats.TakeDamage/Heal short-circuit on zero HP.
func (e *Engine) tickStatusEffects() map[string]statuseffect.RoundResult {
	out := make(map[string]statuseffect.RoundResult, len(e.state.playerIDs)+len(e.state.monsterIDs))
	for _, id := range e.state.playerIDs {
		out[id] = e.state.players[id].ProcessRound().StatusTicks
	}
	for _, id := range e.state.monsterIDs {
		out[id] = e.state.monsters[id].ProcessRound().StatusTicks
	}
	return out
}

func (e *Engine) applyThreatDecay() {
	for _, id := range e.state.monsterIDs {
		e.state.monsters[id].Threat.ApplyThreatDecay()
	}
}

func (e *Engine) aliveSet() map[string]bool {
	out := make(map[string]bool, len(e.state.playerIDs)+len(e.state.monsterIDs))
	for _, id := range e.state.playerIDs {
		out[id] = e.state.players[id].IsAlive()
	}
	for _, id := range e.state.monsterIDs {
		out[id] = e.state.monsters[id].IsAlive()
	}
	return out
}

// publishDeaths emits telemetry.EntityDied for every id that was alive
// in prior but is dead now.
func (e *Engine) publishDeaths(prior map[string]bool) {
	current := e.aliveSet()
	for id, wasAlive := range prior {
		if !wasAlive || current[id] {
			continue
		}
		entityType := ""
		if ent, ok := e.state.Lookup(id); ok {
			entityType = ent.GetType()
		}
		e.bus.Publish(telemetry.Event{Topic: telemetry.EntityDied, Payload: EntityDiedPayload{EntityID: id, EntityType: entityType}})
	}
}

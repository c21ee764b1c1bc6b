package engine

import (
	"github.com/google/uuid"

	"github.com/zbonzo/CrimsonFall-sub000/action"
	"github.com/zbonzo/CrimsonFall-sub000/entity"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/rpgerr"
	"github.com/zbonzo/CrimsonFall-sub000/telemetry"
)

// Engine is the module's public entry point: the round scheduler and
// state manager for one encounter. An embedder constructs one per
// encounter and drives it through StartGame/SubmitPlayerAction/
// ProcessRound.
type Engine struct {
	state     *state
	config    Config
	bus       telemetry.EventBus
	rng       rng.Source
	processor *action.Processor

	encounterID string
	history     []RoundResult
	pending     map[string]action.PlayerAction

	paused bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithEventBus overrides the default telemetry.Bus, for an embedder
// that wants to share one bus across encounters or inject a mock in
// tests.
func WithEventBus(bus telemetry.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithRNGSource overrides the default rng.Default, for deterministic
// tests.
func WithRNGSource(source rng.Source) Option {
	return func(e *Engine) { e.rng = source }
}

// WithObstacles seeds the state manager's static obstacle set.
func WithObstacles(obstacles []hexgrid.Cube) Option {
	return func(e *Engine) { e.state.obstacles = obstacleSet(obstacles) }
}

func obstacleSet(obstacles []hexgrid.Cube) map[string]bool {
	set := make(map[string]bool, len(obstacles))
	for _, c := range obstacles {
		set[c.Key()] = true
	}
	return set
}

// New creates an Engine in phase setup, taking exclusive ownership of
// players and monsters. Config zero values are replaced by the
// documented defaults.
func New(players []*entity.Player, monsters []*entity.Monster, config Config, opts ...Option) *Engine {
	e := &Engine{
		state:       newState(players, monsters, nil),
		config:      config.withDefaults(),
		bus:         telemetry.NewBus(),
		rng:         rng.Default,
		processor:   action.NewProcessor(),
		encounterID: uuid.New().String(),
		pending:     make(map[string]action.PlayerAction),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncounterID returns the random id generated for this Engine in New.
// The telemetry events the Engine publishes do not carry it.
func (e *Engine) EncounterID() string { return e.encounterID }

// World exposes the engine's action.World view of its own state
// manager, for an embedder (or test) that wants to resolve an
// action.Intent directly without waiting for the next ProcessRound.
func (e *Engine) World() action.World { return e.state }

// EventBus returns the engine's telemetry bus, for an embedder to
// subscribe to round lifecycle events.
func (e *Engine) EventBus() telemetry.EventBus { return e.bus }

// StartGame moves phase to playing and sets the round to 1. Fails if
// the game has already started.
func (e *Engine) StartGame() error {
	if e.state.phase != PhaseSetup {
		return rpgerr.TimingRestriction("game has already started")
	}
	e.state.phase = PhasePlaying
	e.state.currentRound = 1
	return nil
}

// SubmitPlayerAction records pa as its player's action for the current
// round. It rejects an unknown player, a dead player, a duplicate
// submission, or a request missing the parameters its variant
// requires. The action itself is not resolved until ProcessRound.
func (e *Engine) SubmitPlayerAction(pa action.PlayerAction) error {
	player, ok := e.state.players[pa.PlayerID]
	if !ok {
		return rpgerr.NotFound("unknown player: " + pa.PlayerID)
	}
	if !player.IsAlive() {
		return rpgerr.NotAllowed("player is dead")
	}
	if _, duplicate := e.pending[pa.PlayerID]; duplicate {
		return rpgerr.AlreadyExists("player already submitted an action this round")
	}
	if err := validatePlayerAction(pa); err != nil {
		return err
	}

	e.pending[pa.PlayerID] = pa
	return nil
}

func validatePlayerAction(pa action.PlayerAction) error {
	switch pa.Variant {
	case action.Move:
		if pa.TargetPosition == nil {
			return rpgerr.InvalidArgument("move requires targetPosition")
		}
	case action.Attack:
		if pa.TargetID == "" {
			return rpgerr.InvalidArgument("attack requires targetId")
		}
	case action.Ability:
		if pa.AbilityID == "" {
			return rpgerr.InvalidArgument("ability requires abilityId")
		}
	case action.Wait:
		// no parameters required
	default:
		return rpgerr.InvalidArgument("unknown action variant: " + string(pa.Variant))
	}
	return nil
}

// GameState is a read-only snapshot of the state manager's lifecycle
// fields.
type GameState struct {
	Phase        Phase
	CurrentRound int
	Winner       Winner
	Reason       string
}

// GameState returns the current lifecycle snapshot.
func (e *Engine) GameState() GameState {
	return GameState{
		Phase:        e.state.phase,
		CurrentRound: e.state.currentRound,
		Winner:       e.state.winner,
		Reason:       e.state.endReason,
	}
}

// CurrentRound returns the round currently being played, 0 before
// StartGame.
func (e *Engine) CurrentRound() int { return e.state.currentRound }

// IsGameEnded reports whether the encounter has finished.
func (e *Engine) IsGameEnded() bool { return e.state.phase == PhaseEnded }

// Winner returns who the encounter was decided for, empty while it is
// still running.
func (e *Engine) Winner() Winner { return e.state.winner }

// RoundHistory returns a copy of every RoundResult produced so far.
func (e *Engine) RoundHistory() []RoundResult {
	out := make([]RoundResult, len(e.history))
	copy(out, e.history)
	return out
}

// GetAlivePlayers returns the living players in roster order.
func (e *Engine) GetAlivePlayers() []*entity.Player { return e.state.alivePlayers() }

// GetAliveMonsters returns the living monsters in roster order.
func (e *Engine) GetAliveMonsters() []*entity.Monster { return e.state.aliveMonsters() }

// GetAllEntities returns every entity, players first, in roster order.
func (e *Engine) GetAllEntities() []action.Entity { return e.state.allEntities() }

// GetEntityByID looks up any entity, player or monster, by id.
func (e *Engine) GetEntityByID(id string) (action.Entity, bool) { return e.state.Lookup(id) }

// ResetForNewEncounter clears round history and resets every entity to
// its starting state. When newPlayers or newMonsters is non-nil, it
// replaces the roster; otherwise the existing roster is reset in place
// at its current position.
func (e *Engine) ResetForNewEncounter(newPlayers []*entity.Player, newMonsters []*entity.Monster) {
	if newPlayers != nil || newMonsters != nil {
		if newPlayers == nil {
			newPlayers = e.state.alivePlayers()
		}
		if newMonsters == nil {
			newMonsters = e.state.aliveMonsters()
		}
		e.state.resetRoster(newPlayers, newMonsters)
	}

	for _, p := range e.state.players {
		p.ResetForEncounter(p.Position())
	}
	for _, m := range e.state.monsters {
		m.ResetForEncounter(m.Position())
	}

	e.state.phase = PhaseSetup
	e.state.currentRound = 0
	e.state.winner = ""
	e.state.endReason = ""
	e.history = nil
	e.pending = make(map[string]action.PlayerAction)
	e.paused = false
}

// Pause suspends round processing: ProcessRound returns an inert
// result until Resume is called.
func (e *Engine) Pause() { e.paused = true }

// Resume lifts a prior Pause.
func (e *Engine) Resume() { e.paused = false }

// Stop ends the game immediately as a draw with the reason "Stopped by
// embedder", regardless of the current board state. Further ProcessRound calls are inert.
func (e *Engine) Stop() {
	if e.state.phase == PhaseEnded {
		return
	}
	e.state.phase = PhaseEnded
	e.state.winner = WinnerDraw
	e.state.endReason = "Stopped by embedder"
}

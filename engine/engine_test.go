package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/action"
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/engine"
	"github.com/zbonzo/CrimsonFall-sub000/entity"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/rng"
	"github.com/zbonzo/CrimsonFall-sub000/stats"
	"github.com/zbonzo/CrimsonFall-sub000/statuseffect"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

func warriorClass() entity.PlayerClass {
	return entity.PlayerClass{
		ID:   "warrior",
		Name: "Warrior",
		Stats: stats.BaseStats{
			MaxHP: 100, BaseArmor: 2, BaseDamage: 15, MovementRange: 1,
		},
	}
}

func aggressiveGoblin(id string, pos hexgrid.Cube) *entity.Monster {
	def := entity.MonsterDefinition{
		ID:   "goblin",
		Name: "Goblin",
		Stats: stats.BaseStats{
			MaxHP: 50, BaseArmor: 1, BaseDamage: 12, MovementRange: 1,
		},
		AIVariant:    ai.Aggressive,
		ThreatConfig: threat.Config{Enabled: false},
	}
	return entity.NewMonster(def, id, "Goblin", pos, statuseffect.DefaultCatalog())
}

func newTestEngine(players []*entity.Player, monsters []*entity.Monster, cfg engine.Config, seed int64) *engine.Engine {
	return engine.New(players, monsters, cfg, engine.WithRNGSource(rng.NewSeeded(seed)))
}

// TestScenarioApproachAndAttack walks a warrior two hexes toward a
// goblin three hexes away: the opening attack is out of range, the post-approach attack
// lands for base damage minus the goblin's armor reduction.
func TestScenarioApproachAndAttack(t *testing.T) {
	p := entity.NewPlayer(warriorClass(), "p1", "Conan", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	m := aggressiveGoblin("g1", hexgrid.FromAxial(3, 0))

	e := newTestEngine([]*entity.Player{p}, []*entity.Monster{m}, engine.Config{}, 1)
	require.NoError(t, e.StartGame())

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Attack, TargetID: "g1"}))
	round1 := e.ProcessRound()
	first := resultFor(t, round1, "p1")
	assert.False(t, first.Success)
	assert.Contains(t, first.Reason, "out of range")

	for i := 0; i < 2; i++ {
		target := hexgrid.FromAxial(i+1, 0)
		require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Move, TargetPosition: &target}))
		e.ProcessRound()
	}

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Attack, TargetID: "g1"}))
	final := resultFor(t, e.ProcessRound(), "p1")
	assert.True(t, final.Success)
	assert.Equal(t, 14, final.DamageDealt, "15 base minus floor(15*0.1)=1 blocked by armor 1")
	assert.Equal(t, 36, m.CurrentHP())
}

// TestScenarioWhirlwindClearsAdjacentGoblins has a solo hero clear
// three adjacent goblins with one area attack, ending the encounter.
func TestScenarioWhirlwindClearsAdjacentGoblins(t *testing.T) {
	hero := entity.NewPlayer(entity.PlayerClass{
		ID: "hero", Name: "Hero",
		Stats: stats.BaseStats{MaxHP: 150, BaseArmor: 3, BaseDamage: 20, MovementRange: 1},
	}, "hero", "Hero", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	hero.Abilities.Learn(ability.Definition{
		ID: "whirlwind", Name: "Whirlwind", Kind: ability.KindAttack,
		Damage: 15, Range: 0, AreaOfEffect: 1, Cooldown: 0, TargetType: ability.TargetArea,
	})

	goblinDef := entity.MonsterDefinition{
		ID: "weak_goblin", Name: "Goblin",
		Stats:        stats.BaseStats{MaxHP: 15, BaseArmor: 0, BaseDamage: 5, MovementRange: 1},
		AIVariant:    ai.Passive,
		ThreatConfig: threat.Config{Enabled: false},
	}
	g1 := entity.NewMonster(goblinDef, "g1", "Goblin 1", hexgrid.FromAxial(1, 0), statuseffect.DefaultCatalog())
	g2 := entity.NewMonster(goblinDef, "g2", "Goblin 2", hexgrid.FromAxial(1, -1), statuseffect.DefaultCatalog())
	g3 := entity.NewMonster(goblinDef, "g3", "Goblin 3", hexgrid.FromAxial(0, 1), statuseffect.DefaultCatalog())

	e := newTestEngine([]*entity.Player{hero}, []*entity.Monster{g1, g2, g3}, engine.Config{}, 1)
	require.NoError(t, e.StartGame())
	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "hero", Variant: action.Ability, AbilityID: "whirlwind"}))

	round := e.ProcessRound()
	whirlwind := resultFor(t, round, "hero")
	assert.True(t, whirlwind.Success)
	assert.Equal(t, 45, whirlwind.DamageDealt, "3 goblins x whirlwind's own 15 damage each")
	assert.False(t, g1.IsAlive())
	assert.False(t, g2.IsAlive())
	assert.False(t, g3.IsAlive())
	assert.True(t, round.GameEnded)
	assert.Equal(t, engine.WinnerPlayers, round.Winner)
}

// TestScenarioThreatFavorsHigherDamage: a damage dealer outdraws a
// healer on the threat table and is selected with high confidence.
func TestScenarioThreatFavorsHigherDamage(t *testing.T) {
	tbl := threat.NewTable(threat.DefaultConfig())
	tbl.Update("playerA", threat.Update{DamageToSelf: 20, TotalDamageDealt: 20, PlayerArmor: 2})
	tbl.Update("playerB", threat.Update{HealingDone: 10, PlayerArmor: 2})

	sel := tbl.SelectTarget([]threat.Candidate{
		{ID: "playerA", CurrentHP: 80, MaxHP: 100},
		{ID: "playerB", CurrentHP: 80, MaxHP: 100},
	}, rng.NewSeeded(1))

	require.True(t, sel.Found)
	assert.Equal(t, "playerA", sel.Target)
	assert.GreaterOrEqual(t, sel.Confidence, 0.8)
}

// TestScenarioSecondMoverLosesRaceForCell: two monsters both target
// the same empty cell; the first processed wins it, the second fails.
func TestScenarioSecondMoverLosesRaceForCell(t *testing.T) {
	m1 := aggressiveGoblin("g1", hexgrid.FromAxial(0, 0))
	m2 := aggressiveGoblin("g2", hexgrid.FromAxial(2, 0))
	e := newTestEngine(nil, []*entity.Monster{m1, m2}, engine.Config{}, 1)
	require.NoError(t, e.StartGame())

	target := hexgrid.FromAxial(1, 0)
	intents := []action.Intent{
		{ActorID: "g1", Variant: action.Move, TargetPosition: &target},
		{ActorID: "g2", Variant: action.Move, TargetPosition: &target},
	}
	results := action.NewProcessor().ResolveAll(intents, testWorldOf(e), rng.NewSeeded(1))
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Reason, "occupied")
}

// TestScenarioMaxRoundsEndsInDraw: both sides still standing after the
// round cap is a draw, and the ended game goes inert.
func TestScenarioMaxRoundsEndsInDraw(t *testing.T) {
	p := entity.NewPlayer(warriorClass(), "p1", "Conan", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	m := aggressiveGoblin("g1", hexgrid.FromAxial(5, 0))
	e := newTestEngine([]*entity.Player{p}, []*entity.Monster{m}, engine.Config{MaxRounds: 2}, 1)
	require.NoError(t, e.StartGame())

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Wait}))
	r1 := e.ProcessRound()
	assert.False(t, r1.GameEnded)

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Wait}))
	r2 := e.ProcessRound()
	assert.True(t, r2.GameEnded)
	assert.Equal(t, engine.WinnerDraw, r2.Winner)
	assert.Equal(t, "Maximum rounds reached", r2.Reason)

	inert := e.ProcessRound()
	assert.True(t, inert.GameEnded)
	assert.Empty(t, inert.ActionResults)
}

func TestEndConditionsForEmptyRosters(t *testing.T) {
	t.Run("no players means monsters win", func(t *testing.T) {
		m := aggressiveGoblin("g1", hexgrid.FromAxial(0, 0))
		e := newTestEngine(nil, []*entity.Monster{m}, engine.Config{}, 1)
		require.NoError(t, e.StartGame())

		result := e.ProcessRound()
		assert.True(t, result.GameEnded)
		assert.Equal(t, engine.WinnerMonsters, e.Winner())
		assert.Equal(t, "All players defeated", e.GameState().Reason)
	})

	t.Run("no combatants at all is a draw", func(t *testing.T) {
		e := newTestEngine(nil, nil, engine.Config{}, 1)
		require.NoError(t, e.StartGame())

		result := e.ProcessRound()
		assert.True(t, result.GameEnded)
		assert.Equal(t, engine.WinnerDraw, e.Winner())
		assert.Equal(t, "All combatants defeated", e.GameState().Reason)
	})
}

func TestSubmitPlayerActionRejectsDuplicateAndUnknown(t *testing.T) {
	p := entity.NewPlayer(warriorClass(), "p1", "Conan", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	e := newTestEngine([]*entity.Player{p}, nil, engine.Config{}, 1)
	require.NoError(t, e.StartGame())

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Wait}))
	assert.Error(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Wait}))
	assert.Error(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "ghost", Variant: action.Wait}))
	assert.Error(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Attack}))
}

func TestStartGameRejectsDoubleStart(t *testing.T) {
	e := newTestEngine(nil, nil, engine.Config{}, 1)
	require.NoError(t, e.StartGame())
	assert.Error(t, e.StartGame())
}

func TestPauseSuspendsProcessing(t *testing.T) {
	p := entity.NewPlayer(warriorClass(), "p1", "Conan", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	m := aggressiveGoblin("g1", hexgrid.FromAxial(5, 0))
	e := newTestEngine([]*entity.Player{p}, []*entity.Monster{m}, engine.Config{}, 1)
	require.NoError(t, e.StartGame())

	e.Pause()
	result := e.ProcessRound()
	assert.Equal(t, 1, result.RoundNumber)
	assert.Empty(t, result.ActionResults)

	e.Resume()
	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Wait}))
	result = e.ProcessRound()
	require.Len(t, result.ActionResults, 2, "the player's wait and the goblin's AI decision")
	assert.True(t, resultFor(t, result, "p1").Success)
}

func TestResetForNewEncounterRestoresRoster(t *testing.T) {
	p := entity.NewPlayer(warriorClass(), "p1", "Conan", hexgrid.FromAxial(0, 0), statuseffect.DefaultCatalog())
	m := aggressiveGoblin("g1", hexgrid.FromAxial(1, 0))
	e := newTestEngine([]*entity.Player{p}, []*entity.Monster{m}, engine.Config{}, 1)
	require.NoError(t, e.StartGame())

	require.NoError(t, e.SubmitPlayerAction(action.PlayerAction{PlayerID: "p1", Variant: action.Attack, TargetID: "g1"}))
	e.ProcessRound()
	assert.Less(t, m.CurrentHP(), m.MaxHP())

	e.ResetForNewEncounter(nil, nil)
	assert.Equal(t, m.MaxHP(), m.CurrentHP())
	assert.Equal(t, engine.PhaseSetup, e.GameState().Phase)
	assert.Equal(t, 0, e.CurrentRound())
	assert.Empty(t, e.RoundHistory())
}

// testWorldOf exposes the engine's internal action.World for a
// fine-grained multi-actor resolution test without re-deriving it.
func testWorldOf(e *engine.Engine) action.World {
	return e.World()
}

// resultFor returns entityID's ActionResult from round, failing the
// test if the entity took no action.
func resultFor(t *testing.T, round engine.RoundResult, entityID string) action.ActionResult {
	t.Helper()
	for _, r := range round.ActionResults {
		if r.EntityID == entityID {
			return r
		}
	}
	t.Fatalf("no action result for %q in round %d", entityID, round.RoundNumber)
	return action.ActionResult{}
}

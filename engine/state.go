package engine

import (
	"github.com/zbonzo/CrimsonFall-sub000/action"
	"github.com/zbonzo/CrimsonFall-sub000/entity"
	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/movement"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// Phase is the game's coarse lifecycle stage. Transitions only move
// forward: setup to playing to ended.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Winner names who an ended game was decided in favor of.
type Winner string

const (
	WinnerPlayers  Winner = "players"
	WinnerMonsters Winner = "monsters"
	WinnerDraw     Winner = "draw"
)

// state is the state manager: it exclusively owns the player/monster
// collections, the obstacle set, and the phase/round/winner
// bookkeeping. It implements action.World so the action.Processor can
// resolve intents against it without either package importing entity
// or engine.
type state struct {
	phase        Phase
	currentRound int
	winner       Winner
	endReason    string

	playerIDs []string
	players   map[string]*entity.Player

	monsterIDs []string
	monsters   map[string]*entity.Monster

	obstacles map[string]bool
}

var _ action.World = (*state)(nil)

func newState(players []*entity.Player, monsters []*entity.Monster, obstacles []hexgrid.Cube) *state {
	s := &state{
		phase:     PhaseSetup,
		players:   make(map[string]*entity.Player, len(players)),
		monsters:  make(map[string]*entity.Monster, len(monsters)),
		obstacles: make(map[string]bool, len(obstacles)),
	}
	for _, p := range players {
		s.playerIDs = append(s.playerIDs, p.GetID())
		s.players[p.GetID()] = p
	}
	for _, m := range monsters {
		s.monsterIDs = append(s.monsterIDs, m.GetID())
		s.monsters[m.GetID()] = m
	}
	for _, c := range obstacles {
		s.obstacles[c.Key()] = true
	}
	return s
}

func (s *state) resetRoster(players []*entity.Player, monsters []*entity.Monster) {
	s.playerIDs = nil
	s.players = make(map[string]*entity.Player, len(players))
	for _, p := range players {
		s.playerIDs = append(s.playerIDs, p.GetID())
		s.players[p.GetID()] = p
	}

	s.monsterIDs = nil
	s.monsters = make(map[string]*entity.Monster, len(monsters))
	for _, m := range monsters {
		s.monsterIDs = append(s.monsterIDs, m.GetID())
		s.monsters[m.GetID()] = m
	}
}

// Lookup implements action.World.
func (s *state) Lookup(id string) (action.Entity, bool) {
	if p, ok := s.players[id]; ok {
		return p, true
	}
	if m, ok := s.monsters[id]; ok {
		return m, true
	}
	return nil, false
}

// MonsterThreat implements action.World.
func (s *state) MonsterThreat(id string) (*threat.Table, bool) {
	m, ok := s.monsters[id]
	if !ok {
		return nil, false
	}
	return m.Threat, true
}

// LivingMonsterThreatTables implements action.World.
func (s *state) LivingMonsterThreatTables() []*threat.Table {
	var out []*threat.Table
	for _, id := range s.monsterIDs {
		m := s.monsters[id]
		if m.IsAlive() {
			out = append(out, m.Threat)
		}
	}
	return out
}

// Occupied implements action.World: every alive entity's cell, except
// excludeID's own (an entity is never blocked by itself).
func (s *state) Occupied(excludeID string) movement.OccupancySet {
	set := make(movement.OccupancySet)
	for id, p := range s.players {
		if id == excludeID || !p.IsAlive() {
			continue
		}
		set[p.Position().Key()] = true
	}
	for id, m := range s.monsters {
		if id == excludeID || !m.IsAlive() {
			continue
		}
		set[m.Position().Key()] = true
	}
	return set
}

// EnemiesOf implements action.World: a player's enemies are the living
// monsters, and vice versa.
func (s *state) EnemiesOf(actorID string) []action.Entity {
	if _, ok := s.players[actorID]; ok {
		var out []action.Entity
		for _, id := range s.monsterIDs {
			if m := s.monsters[id]; m.IsAlive() {
				out = append(out, m)
			}
		}
		return out
	}
	if _, ok := s.monsters[actorID]; ok {
		var out []action.Entity
		for _, id := range s.playerIDs {
			if p := s.players[id]; p.IsAlive() {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

// Obstacles implements action.World.
func (s *state) Obstacles() movement.OccupancySet {
	set := make(movement.OccupancySet, len(s.obstacles))
	for k := range s.obstacles {
		set[k] = true
	}
	return set
}

func (s *state) alivePlayers() []*entity.Player {
	var out []*entity.Player
	for _, id := range s.playerIDs {
		if p := s.players[id]; p.IsAlive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *state) aliveMonsters() []*entity.Monster {
	var out []*entity.Monster
	for _, id := range s.monsterIDs {
		if m := s.monsters[id]; m.IsAlive() {
			out = append(out, m)
		}
	}
	return out
}

func (s *state) allEntities() []action.Entity {
	out := make([]action.Entity, 0, len(s.playerIDs)+len(s.monsterIDs))
	for _, id := range s.playerIDs {
		out = append(out, s.players[id])
	}
	for _, id := range s.monsterIDs {
		out = append(out, s.monsters[id])
	}
	return out
}

// evaluateEndCondition reports whether the game should end given the
// current roster's alive/dead status.
func (s *state) evaluateEndCondition() (Winner, string, bool) {
	playersAlive := len(s.alivePlayers()) > 0
	monstersAlive := len(s.aliveMonsters()) > 0

	switch {
	case !playersAlive && !monstersAlive:
		return WinnerDraw, "All combatants defeated", true
	case !monstersAlive:
		return WinnerPlayers, "All monsters defeated", true
	case !playersAlive:
		return WinnerMonsters, "All players defeated", true
	default:
		return "", "", false
	}
}

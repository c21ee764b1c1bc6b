package entity

import (
	"github.com/zbonzo/CrimsonFall-sub000/ability"
	"github.com/zbonzo/CrimsonFall-sub000/ai"
	"github.com/zbonzo/CrimsonFall-sub000/stats"
	"github.com/zbonzo/CrimsonFall-sub000/threat"
)

// PlayerClass is the embedder-supplied template a Player is created
// from. Abilities lists every ability the class may ever learn;
// StartingAbilities names the subset (by id) known from the first
// round. basic_attack and wait are always known regardless of this
// list.
type PlayerClass struct {
	ID                string
	Name              string
	Description       string
	Stats             stats.BaseStats
	Abilities         []ability.Definition
	StartingAbilities []string
}

// ThreatConfig is the embedder-supplied threat policy for one monster
// definition. It aliases threat.Config so embedders describing a
// monster never import the threat package directly.
type ThreatConfig = threat.Config

// MonsterDefinition is the embedder-supplied template a Monster is
// created from.
type MonsterDefinition struct {
	ID           string
	Name         string
	Stats        stats.BaseStats
	Abilities    []ability.Definition
	AIVariant    ai.Variant
	ThreatConfig ThreatConfig
	Difficulty   string
	Behaviors    []ai.Rule
	LootTable    []string
	Tags         []string
}

func startingAbilities(class PlayerClass) []ability.Definition {
	if len(class.StartingAbilities) == 0 {
		return class.Abilities
	}
	wanted := make(map[string]bool, len(class.StartingAbilities))
	for _, id := range class.StartingAbilities {
		wanted[id] = true
	}
	out := make([]ability.Definition, 0, len(class.StartingAbilities))
	for _, def := range class.Abilities {
		if wanted[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

package entity

import "github.com/zbonzo/CrimsonFall-sub000/ability"

// DefaultAbilityCatalog returns the two abilities every entity starts
// with, ready-made for an embedder that wants to pass a non-empty
// PlayerClass/MonsterDefinition ability list without redefining
// basic_attack and wait by hand. NewPlayer/NewMonster always seed
// these two regardless of what is passed, so using this catalog is a
// convenience, not a requirement.
func DefaultAbilityCatalog() []ability.Definition {
	return []ability.Definition{ability.BasicAttack(), ability.Wait()}
}

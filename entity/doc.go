// Package entity composes the per-combatant sub-systems (stats,
// status effects, abilities, movement, and for monsters threat and AI)
// into the two concrete combatant types the rest of the engine
// operates on: Player and Monster. Both embed Base, which holds the
// shared sub-system wiring and the identity fields and nothing else.
package entity

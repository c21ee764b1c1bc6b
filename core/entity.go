package core

// Entity represents a combatant or other addressable object in the
// engine. Players and monsters both satisfy this through their concrete
// types; nothing in this module stores an Entity by interface value where
// identity matters more than capability. See each package's own
// capability interfaces (stats, statuseffect, ability, movement).
type Entity interface {
	// GetID returns the unique identifier for this entity, stable for
	// the lifetime of the encounter.
	GetID() string

	// GetType returns the entity's kind, e.g. "player" or "monster".
	GetType() string
}

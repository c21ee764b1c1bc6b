// Package ai implements the monster decision layer: per-variant
// combat strategies (aggressive, defensive, tactical, berserker,
// support, passive) and the scripted behavior rules evaluated before
// strategy dispatch.
//
// ai depends only on hexgrid, ability (for definitions), threat, and
// rng; it never imports entity, so a Combatant is whatever the caller's
// concrete entity type exposes through this package's narrow interface.
// Helpers break ties by lowest id, keeping a decision a pure function
// of its inputs unless a strategy explicitly rolls the injected
// rng.Source.
package ai

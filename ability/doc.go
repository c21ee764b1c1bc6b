// Package ability holds immutable ability definitions and the mutable
// per-entity cooldown/usage bookkeeping that goes with them: lookup,
// "is this ready", "mark it used", and the once-per-round cooldown
// decrement.
package ability

// Package statuseffect tracks named, stackable status effects on an
// entity: poison and burning damage-over-time, regeneration
// healing-over-time, shielded armor, and the control/multiplier
// effects (stunned, frozen, invisible, vulnerable, weakened, enraged,
// blessed, cursed).
//
// Stacking is linear: an active effect stores its base value once and
// scales it by the stack count at read time, so restacking never
// compounds the per-tick value.
package statuseffect

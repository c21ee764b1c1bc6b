// Package stats holds an entity's hit points, armor, damage output, and
// experience progression, and the arithmetic for damaging, healing, and
// leveling it up. Current HP clamps to [0, max], the damage modifier
// floors at 0.1 rather than going negative, and experience gain is
// level-gated.
package stats

// Package threat implements a monster's per-player threat table: a
// decaying accumulator that grows from damage dealt, healing done, and
// armor mitigated, plus the target-selection policy that reads it,
// with a bounded recent-target memory and per-player update history.
package threat

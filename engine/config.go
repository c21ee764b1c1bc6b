package engine

// Config carries the per-encounter tunables. Zero values are replaced
// by the documented defaults in New; unknown concerns stay with the
// embedder.
type Config struct {
	// MaxRounds is the round number after which an unfinished encounter
	// is finalized as a draw. Default 20.
	MaxRounds int

	// TurnTimeoutMs is advisory: the engine does not itself schedule
	// timers, but an embedder's transport layer can read it to decide
	// when to submit a default "wait" on a player's behalf.
	// Default 30000.
	TurnTimeoutMs int

	// AutoProgressAfterMs is advisory, same caveat as TurnTimeoutMs: how
	// long an embedder should wait with all-but-one player actions
	// submitted before calling ProcessRound anyway. Default 5000.
	AutoProgressAfterMs int
}

const (
	defaultMaxRounds           = 20
	defaultTurnTimeoutMs       = 30000
	defaultAutoProgressAfterMs = 5000
)

// withDefaults fills in any zero-valued field with its documented
// default.
func (c Config) withDefaults() Config {
	if c.MaxRounds == 0 {
		c.MaxRounds = defaultMaxRounds
	}
	if c.TurnTimeoutMs == 0 {
		c.TurnTimeoutMs = defaultTurnTimeoutMs
	}
	if c.AutoProgressAfterMs == 0 {
		c.AutoProgressAfterMs = defaultAutoProgressAfterMs
	}
	return c
}

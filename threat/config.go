package threat

// MinimumThreshold is the floor below which a threat entry is dropped
// after decay, and below which a target is considered not meaningfully
// threatened by SelectTarget.
const MinimumThreshold = 0.1

// tieEpsilon is how close two threat values must be to count as tied
// when picking among the highest-threat candidates.
const tieEpsilon = 0.01

// Config configures one monster's threat table. Zero-value fields take
// the documented defaults in NewTable.
type Config struct {
	Enabled               bool
	DecayRate             float64
	DamageMultiplier      float64
	HealingMultiplier     float64
	ArmorMultiplier       float64
	AvoidLastTargetRounds int
	FallbackToLowestHP    bool
	EnableTiebreaker      bool
}

// DefaultConfig returns the standard tuning: decay 0.1, damage
// multiplier 1.0, healing 1.5, armor 0.5, and remembering exactly 1
// recent target.
func DefaultConfig() Config {
	return Config{
		Enabled:               true,
		DecayRate:             0.1,
		DamageMultiplier:      1.0,
		HealingMultiplier:     1.5,
		ArmorMultiplier:       0.5,
		AvoidLastTargetRounds: 1,
	}
}

func (c Config) withDefaults() Config {
	if c.DecayRate == 0 {
		c.DecayRate = 0.1
	}
	if c.DamageMultiplier == 0 {
		c.DamageMultiplier = 1.0
	}
	if c.HealingMultiplier == 0 {
		c.HealingMultiplier = 1.5
	}
	if c.ArmorMultiplier == 0 {
		c.ArmorMultiplier = 0.5
	}
	if c.AvoidLastTargetRounds == 0 {
		c.AvoidLastTargetRounds = 1
	}
	return c
}

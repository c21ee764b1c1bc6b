package threat

import (
	"sort"

	"github.com/zbonzo/CrimsonFall-sub000/rng"
)

// maxHistory bounds the per-player update history retained for
// diagnostics.
const maxHistory = 10

// Update is one threat-generating event: damage a player dealt to the
// monster, total damage the player dealt (to anyone the monster cares
// about), healing the player performed, and the player's current armor.
type Update struct {
	DamageToSelf     float64
	TotalDamageDealt float64
	HealingDone      float64
	PlayerArmor      float64
}

// Candidate is a read-only view of one potential target, supplied
// fresh by the caller at selection time and never retained past it.
type Candidate struct {
	ID        string
	CurrentHP int
	MaxHP     int
}

// Selection is the result of SelectTarget.
type Selection struct {
	Target     string
	Found      bool
	Reason     string
	Confidence float64
}

// Table is one monster's threat table: an accumulator per player id,
// a bounded recent-target memory, and a bounded per-player history.
type Table struct {
	cfg         Config
	accumulator map[string]float64
	history     map[string][]Update
	lastTargets []string
}

// NewTable creates an empty Table configured by cfg.
func NewTable(cfg Config) *Table {
	return &Table{
		cfg:         cfg.withDefaults(),
		accumulator: make(map[string]float64),
		history:     make(map[string][]Update),
	}
}

// Config returns the table's configuration.
func (t *Table) Config() Config { return t.cfg }

// Threat returns the current accumulated threat for playerID, or 0.
func (t *Table) Threat(playerID string) float64 {
	return t.accumulator[playerID]
}

// Update folds a threat-generating event into playerID's accumulator.
// Non-positive raw contributions are ignored entirely.
func (t *Table) Update(playerID string, u Update) {
	raw := t.cfg.ArmorMultiplier*u.PlayerArmor*u.DamageToSelf +
		t.cfg.DamageMultiplier*u.TotalDamageDealt +
		t.cfg.HealingMultiplier*u.HealingDone
	if raw <= 0 {
		return
	}

	t.accumulator[playerID] += raw

	hist := append(t.history[playerID], u)
	if len(hist) > maxHistory {
		hist = hist[len(hist)-maxHistory:]
	}
	t.history[playerID] = hist
}

// History returns the bounded update history recorded for playerID.
func (t *Table) History(playerID string) []Update {
	hist := t.history[playerID]
	out := make([]Update, len(hist))
	copy(out, hist)
	return out
}

// ApplyThreatDecay multiplies every accumulated value by
// (1 - decayRate) and drops any entry that falls below
// MinimumThreshold.
func (t *Table) ApplyThreatDecay() {
	factor := 1 - t.cfg.DecayRate
	for id, v := range t.accumulator {
		v *= factor
		if v < MinimumThreshold {
			delete(t.accumulator, id)
			continue
		}
		t.accumulator[id] = v
	}
}

// LastTargets returns the recently-targeted id memory, most recent
// first.
func (t *Table) LastTargets() []string {
	out := make([]string, len(t.lastTargets))
	copy(out, t.lastTargets)
	return out
}

// SelectTarget picks the next target: prune accumulator entries for
// entities no longer in available, prefer candidates not targeted in
// the last AvoidLastTargetRounds picks, take the highest-threat
// candidate among those above MinimumThreshold, and fall back to
// lowest HP ratio or a uniform random pick when nobody is meaningfully
// threatened. available must already be the alive roster the monster
// can see; an empty post-cleanup pool reports no target rather than a
// stale one.
func (t *Table) SelectTarget(available []Candidate, source rng.Source) Selection {
	aliveIDs := make(map[string]bool, len(available))
	for _, c := range available {
		aliveIDs[c.ID] = true
	}
	for id := range t.accumulator {
		if !aliveIDs[id] {
			delete(t.accumulator, id)
		}
	}

	if len(available) == 0 {
		return Selection{Reason: "no targets"}
	}

	recent := make(map[string]bool, len(t.lastTargets))
	for _, id := range t.lastTargets {
		recent[id] = true
	}

	pool := filterOut(available, recent)
	if len(pool) == 0 {
		pool = available
	}

	threatened := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if t.accumulator[c.ID] > MinimumThreshold {
			threatened = append(threatened, c)
		}
	}

	var sel Selection
	switch {
	case len(threatened) == 0:
		sel = t.fallback(pool, source)
	default:
		sel = t.highestThreat(threatened, source)
	}

	if sel.Found {
		t.remember(sel.Target)
	}
	return sel
}

func (t *Table) fallback(pool []Candidate, source rng.Source) Selection {
	if t.cfg.FallbackToLowestHP {
		best := pool[0]
		bestRatio := hpRatio(best)
		for _, c := range pool[1:] {
			if r := hpRatio(c); r < bestRatio {
				bestRatio = r
				best = c
			}
		}
		return Selection{Target: best.ID, Found: true, Reason: "fallback: lowest hp", Confidence: 0.3}
	}

	idx := 0
	if len(pool) > 1 {
		idx = source.Intn(len(pool))
	}
	return Selection{Target: pool[idx].ID, Found: true, Reason: "fallback: random", Confidence: 0.1}
}

func (t *Table) highestThreat(threatened []Candidate, source rng.Source) Selection {
	maxThreat := 0.0
	for _, c := range threatened {
		if v := t.accumulator[c.ID]; v > maxThreat {
			maxThreat = v
		}
	}

	var tied []Candidate
	for _, c := range threatened {
		if maxThreat-t.accumulator[c.ID] <= tieEpsilon {
			tied = append(tied, c)
		}
	}
	sort.Slice(tied, func(i, j int) bool { return tied[i].ID < tied[j].ID })

	chosen := tied[0]
	if t.cfg.EnableTiebreaker && len(tied) > 1 {
		chosen = tied[source.Intn(len(tied))]
	}

	confidence := maxThreat / 50.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	return Selection{Target: chosen.ID, Found: true, Reason: "highest threat", Confidence: confidence}
}

func (t *Table) remember(id string) {
	next := make([]string, 0, t.cfg.AvoidLastTargetRounds)
	next = append(next, id)
	for _, prev := range t.lastTargets {
		if prev == id {
			continue
		}
		next = append(next, prev)
	}
	if len(next) > t.cfg.AvoidLastTargetRounds {
		next = next[:t.cfg.AvoidLastTargetRounds]
	}
	t.lastTargets = next
}

func filterOut(candidates []Candidate, exclude map[string]bool) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !exclude[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func hpRatio(c Candidate) float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.MaxHP)
}

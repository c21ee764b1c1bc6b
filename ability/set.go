package ability

import "github.com/zbonzo/CrimsonFall-sub000/rpgerr"

// Set is the mutable per-entity view over a shared ability catalog: it
// knows which abilities this entity has learned, which are on cooldown,
// and how many times each has been used.
type Set struct {
	// learned holds every ability id this entity can use, temporary or
	// permanent. Temporary entries (granted by a status effect or a
	// scripted behavior, for instance) are tracked in temporary and
	// cleared by ResetForEncounter; everything else persists.
	learned   map[string]Definition
	temporary map[string]bool

	// cooldowns maps an ability id to its remaining rounds. Absent means
	// ready.
	cooldowns map[string]int

	// usage counts how many times each ability has been used, for
	// diagnostics and tests.
	usage map[string]int
}

// NewSet creates a Set seeded with the given definitions, always
// including basic_attack and wait even if the caller omits them.
func NewSet(defs ...Definition) *Set {
	s := &Set{
		learned:   make(map[string]Definition),
		temporary: make(map[string]bool),
		cooldowns: make(map[string]int),
		usage:     make(map[string]int),
	}
	s.Learn(BasicAttack())
	s.Learn(Wait())
	for _, d := range defs {
		s.Learn(d)
	}
	return s
}

// Learn adds or replaces a permanent ability definition.
func (s *Set) Learn(def Definition) {
	s.learned[def.ID] = def
	delete(s.temporary, def.ID)
}

// LearnTemporary adds an ability definition that ResetForEncounter
// removes.
func (s *Set) LearnTemporary(def Definition) {
	s.learned[def.ID] = def
	s.temporary[def.ID] = true
}

// Get looks up a learned ability definition by id.
func (s *Set) Get(id string) (Definition, bool) {
	d, ok := s.learned[id]
	return d, ok
}

// RemainingCooldown returns the rounds remaining before id is usable
// again, or 0 if it is ready.
func (s *Set) RemainingCooldown(id string) int {
	return s.cooldowns[id]
}

// UsageCount returns how many times id has been used.
func (s *Set) UsageCount(id string) int {
	return s.usage[id]
}

// CanUseAbility reports whether id may be cast right now: known and
// not on cooldown. On failure it returns a structured *rpgerr.Error
// whose message includes the remaining rounds.
func (s *Set) CanUseAbility(id string) error {
	def, ok := s.learned[id]
	if !ok {
		return rpgerr.NotFound("unknown ability: " + id)
	}
	if remaining := s.cooldowns[id]; remaining > 0 {
		return rpgerr.CooldownActive(def.Name, remaining)
	}
	return nil
}

// UseAbility marks id as used: cooldown is set to the ability's
// configured cooldown (0 means ready again next round) and the usage
// counter increments. Fails the same way CanUseAbility does.
func (s *Set) UseAbility(id string) error {
	if err := s.CanUseAbility(id); err != nil {
		return err
	}
	def := s.learned[id]
	if def.Cooldown > 0 {
		s.cooldowns[id] = def.Cooldown
	}
	s.usage[id]++
	return nil
}

// ProcessRound decrements every active cooldown by one round and
// returns the ids that just reached zero.
func (s *Set) ProcessRound() []string {
	var expired []string
	for id, remaining := range s.cooldowns {
		remaining--
		if remaining <= 0 {
			delete(s.cooldowns, id)
			expired = append(expired, id)
			continue
		}
		s.cooldowns[id] = remaining
	}
	return expired
}

// ResetForEncounter clears all cooldowns and usage counts and removes
// every temporarily-learned ability.
func (s *Set) ResetForEncounter() {
	s.cooldowns = make(map[string]int)
	s.usage = make(map[string]int)
	for id := range s.temporary {
		delete(s.learned, id)
	}
	s.temporary = make(map[string]bool)
}

// IDs returns every learned ability id, in map-iteration order. Callers
// that need determinism should sort the result themselves.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.learned))
	for id := range s.learned {
		ids = append(ids, id)
	}
	return ids
}

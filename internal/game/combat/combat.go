// Package combat implements the party-versus-encounter combat engine: damage
// tables, enemy abilities, round orchestration, and the session loop.
package combat

// Skill labels applied when a character record does not name one.
const (
	DefaultAttackSkill  = "Fight"
	DefaultDefenseSkill = "Defend"
)

// Aspect is a named capability track on a character or enemy.
// Enemy aspects carrying an AbilityCode are once-per-session special attacks;
// the rest are narrative only.
type Aspect struct {
	Name        string
	TrackLength int
	AbilityCode string
}

// IsAbility reports whether the aspect can be used as a special attack.
func (a Aspect) IsAbility() bool { return a.AbilityCode != "" }

// longestTrack returns the maximum TrackLength in aspects, or 1 when none is positive.
func longestTrack(aspects []Aspect) int {
	best := 0
	for _, a := range aspects {
		if a.TrackLength > best {
			best = a.TrackLength
		}
	}
	if best <= 0 {
		return 1
	}
	return best
}

// Character is one member of the party.
//
// Invariant: CurrentHP >= 0.
type Character struct {
	ID           string
	Name         string
	HitPoints    int
	CurrentHP    int
	AttackScore  int
	AttackSkill  string
	DefenseScore int
	DefenseSkill string
	Aspects      []Aspect
	// Incapacitated is cleared at the start of every round.
	Incapacitated bool
}

// IsDead reports whether the character has no hit points left.
func (c *Character) IsDead() bool { return c.CurrentHP <= 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero.
//
// Postcondition: CurrentHP >= 0.
func (c *Character) ApplyDamage(amount int) {
	c.CurrentHP = max(c.CurrentHP-max(amount, 0), 0)
}

// LongestTrack returns the longest capability track, defaulting to 1.
func (c *Character) LongestTrack() int { return longestTrack(c.Aspects) }

// Enemy is a single instance of an enemy definition within an encounter.
//
// Invariant: CurrentHP >= 0; UsedAbilities only grows during a session.
type Enemy struct {
	InstanceID string
	BaseName   string
	// UniqueName disambiguates copies of the same base enemy, e.g. "Spider 2".
	UniqueName    string
	Aspects       []Aspect
	CurrentHP     int
	UsedAbilities []string
}

// NewEnemy builds an instance at full health.
//
// Postcondition: CurrentHP == MaxHP(); UsedAbilities is empty.
func NewEnemy(instanceID, baseName, uniqueName string, aspects []Aspect) Enemy {
	e := Enemy{
		InstanceID: instanceID,
		BaseName:   baseName,
		UniqueName: uniqueName,
		Aspects:    aspects,
	}
	e.CurrentHP = e.MaxHP()
	return e
}

// MaxHP is the sum of all aspect track lengths.
func (e *Enemy) MaxHP() int {
	total := 0
	for _, a := range e.Aspects {
		total += max(a.TrackLength, 0)
	}
	return total
}

// DisplayName returns UniqueName, falling back to BaseName.
func (e *Enemy) DisplayName() string {
	if e.UniqueName != "" {
		return e.UniqueName
	}
	return e.BaseName
}

// IsDead reports whether the instance has no hit points left.
func (e *Enemy) IsDead() bool { return e.CurrentHP <= 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero.
//
// Postcondition: CurrentHP >= 0.
func (e *Enemy) ApplyDamage(amount int) {
	e.CurrentHP = max(e.CurrentHP-max(amount, 0), 0)
}

// HasUsed reports whether the named ability aspect was already expended.
func (e *Enemy) HasUsed(aspect string) bool {
	for _, u := range e.UsedAbilities {
		if u == aspect {
			return true
		}
	}
	return false
}

// MarkUsed records aspect as expended. It returns false if it already was.
//
// Postcondition: HasUsed(aspect) is true.
func (e *Enemy) MarkUsed(aspect string) bool {
	if e.HasUsed(aspect) {
		return false
	}
	e.UsedAbilities = append(e.UsedAbilities, aspect)
	return true
}

// AvailableAbilities returns the ability aspects not yet used this session,
// in aspect order.
func (e *Enemy) AvailableAbilities() []Aspect {
	var out []Aspect
	for _, a := range e.Aspects {
		if a.IsAbility() && !e.HasUsed(a.Name) {
			out = append(out, a)
		}
	}
	return out
}

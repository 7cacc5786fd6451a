package combat

import "slices"

// Party is the owned collection of characters for one side, addressed by ID.
// Character order is the party order used by the player phase.
type Party []Character

// Clone returns a copy that shares no mutable state with p.
func (p Party) Clone() Party {
	if p == nil {
		return nil
	}
	out := make(Party, len(p))
	copy(out, p)
	return out
}

// IndexOf returns the position of the character with id, or -1.
func (p Party) IndexOf(id string) int {
	return slices.IndexFunc(p, func(c Character) bool { return c.ID == id })
}

// Living returns the indices of characters with CurrentHP > 0, in party order.
func (p Party) Living() []int {
	var out []int
	for i := range p {
		if !p[i].IsDead() {
			out = append(out, i)
		}
	}
	return out
}

// Weakest returns the index of the living character with the lowest CurrentHP.
// Ties go to the earliest in party order. ok is false when nobody is alive.
func (p Party) Weakest() (idx int, ok bool) {
	idx = -1
	for i := range p {
		if p[i].IsDead() {
			continue
		}
		if idx < 0 || p[i].CurrentHP < p[idx].CurrentHP {
			idx = i
		}
	}
	return idx, idx >= 0
}

// Encounter is the owned collection of enemy instances, addressed by InstanceID.
// Instance order is the order used by the enemy phase.
type Encounter []Enemy

// Clone returns a copy that shares no mutable state with e.
func (e Encounter) Clone() Encounter {
	if e == nil {
		return nil
	}
	out := make(Encounter, len(e))
	for i := range e {
		out[i] = e[i]
		out[i].UsedAbilities = slices.Clone(e[i].UsedAbilities)
	}
	return out
}

// ResetSession returns a clone with every instance's used abilities cleared,
// ready for a fresh session.
func (e Encounter) ResetSession() Encounter {
	out := e.Clone()
	for i := range out {
		out[i].UsedAbilities = nil
	}
	return out
}

// IndexOf returns the position of the instance with id, or -1.
func (e Encounter) IndexOf(instanceID string) int {
	return slices.IndexFunc(e, func(en Enemy) bool { return en.InstanceID == instanceID })
}

// Living returns the indices of instances with CurrentHP > 0, in instance order.
func (e Encounter) Living() []int {
	var out []int
	for i := range e {
		if !e[i].IsDead() {
			out = append(out, i)
		}
	}
	return out
}

// Weakest returns the index of the living instance with the lowest CurrentHP.
// Ties go to the earliest instance. ok is false when none is alive.
func (e Encounter) Weakest() (idx int, ok bool) {
	idx = -1
	for i := range e {
		if e[i].IsDead() {
			continue
		}
		if idx < 0 || e[i].CurrentHP < e[idx].CurrentHP {
			idx = i
		}
	}
	return idx, idx >= 0
}

// Defeated counts instances other than skip that are dead.
func (e Encounter) Defeated(skip int) int {
	n := 0
	for i := range e {
		if i != skip && e[i].IsDead() {
			n++
		}
	}
	return n
}

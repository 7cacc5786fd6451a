// Package roster loads party and encounter snapshots from YAML and turns them
// into the canonical combat records the engine operates on.
package roster

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// AspectDoc is one aspect as authored in YAML.
type AspectDoc struct {
	Name    string `yaml:"name"`
	Track   int    `yaml:"track"`
	Ability string `yaml:"ability"`
}

// CharacterDoc is a party member as authored in YAML. Pointer fields are
// optional and defaulted when absent.
type CharacterDoc struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	HitPoints    *int        `yaml:"hit_points"`
	CurrentHP    *int        `yaml:"current_hp"`
	AttackScore  *int        `yaml:"attack_score"`
	AttackSkill  string      `yaml:"attack_skill"`
	DefenseScore *int        `yaml:"defense_score"`
	DefenseSkill string      `yaml:"defense_skill"`
	Aspects      []AspectDoc `yaml:"aspects"`
}

// EnemyDoc is a base enemy definition with the number of copies to field.
type EnemyDoc struct {
	Name      string      `yaml:"name"`
	Count     int         `yaml:"count"`
	CurrentHP *int        `yaml:"current_hp"`
	Aspects   []AspectDoc `yaml:"aspects"`
}

// PartyDoc is the top-level party file.
type PartyDoc struct {
	Party []CharacterDoc `yaml:"party"`
}

// EncounterDoc is the top-level encounter file.
type EncounterDoc struct {
	Encounter []EnemyDoc `yaml:"encounter"`
}

// IDFunc generates identifiers for records that lack one.
type IDFunc func() string

// NewUUID is the default IDFunc.
func NewUUID() string { return uuid.NewString() }

func aspects(docs []AspectDoc) []combat.Aspect {
	if len(docs) == 0 {
		return nil
	}
	out := make([]combat.Aspect, len(docs))
	for i, d := range docs {
		out[i] = combat.Aspect{Name: d.Name, TrackLength: max(d.Track, 0), AbilityCode: d.Ability}
	}
	return out
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Character converts doc into a canonical record. Missing scores default to
// 1, missing skills to the combat defaults, missing hit points to the sum of
// the capability tracks (at least 1), and missing current HP to hit points.
//
// Postcondition: CurrentHP >= 0; ID is non-empty.
func (doc CharacterDoc) Character(newID IDFunc) combat.Character {
	c := combat.Character{
		ID:           doc.ID,
		Name:         doc.Name,
		AttackScore:  max(intOr(doc.AttackScore, 1), 0),
		AttackSkill:  doc.AttackSkill,
		DefenseScore: max(intOr(doc.DefenseScore, 1), 0),
		DefenseSkill: doc.DefenseSkill,
		Aspects:      aspects(doc.Aspects),
	}
	if c.ID == "" {
		c.ID = newID()
	}
	if c.AttackSkill == "" {
		c.AttackSkill = combat.DefaultAttackSkill
	}
	if c.DefenseSkill == "" {
		c.DefenseSkill = combat.DefaultDefenseSkill
	}
	tracks := 0
	for _, a := range c.Aspects {
		tracks += a.TrackLength
	}
	c.HitPoints = intOr(doc.HitPoints, max(tracks, 1))
	c.CurrentHP = max(intOr(doc.CurrentHP, c.HitPoints), 0)
	return c
}

// ToParty converts every character in doc, preserving order.
func (doc PartyDoc) ToParty(newID IDFunc) combat.Party {
	party := make(combat.Party, 0, len(doc.Party))
	for _, c := range doc.Party {
		party = append(party, c.Character(newID))
	}
	return party
}

// Expand turns each enemy definition into Count instances (at least one).
// Copies are counted by base name across the whole document: a name fielded
// more than once is numbered "Name 1", "Name 2", ... in document order, even
// when it appears in several definitions; a single copy keeps the bare name.
//
// Postcondition: every instance has a distinct InstanceID and UniqueName.
func (doc EncounterDoc) Expand(newID IDFunc) combat.Encounter {
	totals := make(map[string]int, len(doc.Encounter))
	for _, d := range doc.Encounter {
		totals[d.Name] += max(d.Count, 1)
	}

	seen := make(map[string]int, len(totals))
	var enc combat.Encounter
	for _, d := range doc.Encounter {
		for range max(d.Count, 1) {
			seen[d.Name]++
			unique := d.Name
			if totals[d.Name] > 1 {
				unique = fmt.Sprintf("%s %d", d.Name, seen[d.Name])
			}
			e := combat.NewEnemy(newID(), d.Name, unique, aspects(d.Aspects))
			if d.CurrentHP != nil {
				e.CurrentHP = max(*d.CurrentHP, 0)
			}
			enc = append(enc, e)
		}
	}
	return enc
}

// ParseParty decodes a party document.
func ParseParty(data []byte, newID IDFunc) (combat.Party, error) {
	var doc PartyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing party YAML: %w", err)
	}
	return doc.ToParty(newID), nil
}

// ParseEncounter decodes and expands an encounter document.
func ParseEncounter(data []byte, newID IDFunc) (combat.Encounter, error) {
	var doc EncounterDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing encounter YAML: %w", err)
	}
	return doc.Expand(newID), nil
}

// LoadParty reads a party file from path.
func LoadParty(path string) (combat.Party, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	p, err := ParseParty(data, NewUUID)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return p, nil
}

// LoadEncounter reads an encounter file from path.
func LoadEncounter(path string) (combat.Encounter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	e, err := ParseEncounter(data, NewUUID)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return e, nil
}

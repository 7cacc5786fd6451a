package combat

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// DamageModel selects the defense roll-to-damage table for a session.
type DamageModel string

const (
	// ModelZeroOneTwo: 6 → 0, 4–5 → 1, 1–3 → 2.
	ModelZeroOneTwo DamageModel = "0,1,2,counter"
	// ModelOneTwoAspect: 6 → 1, 4–5 → 2, 1–3 → longest track.
	ModelOneTwoAspect DamageModel = "1,2,aspect,counter"
	// ModelOneAspectDoubleAspect: 6 → 1, 4–5 → longest track, 1–3 → twice the longest track.
	ModelOneAspectDoubleAspect DamageModel = "1,aspect,2aspect,counter"
)

// DefaultDamageModel is used when none or an unknown model is configured.
const DefaultDamageModel = ModelZeroOneTwo

// DamageModels lists every supported model.
var DamageModels = []DamageModel{ModelZeroOneTwo, ModelOneTwoAspect, ModelOneAspectDoubleAspect}

// Valid reports whether m is one of DamageModels.
func (m DamageModel) Valid() bool {
	switch m {
	case ModelZeroOneTwo, ModelOneTwoAspect, ModelOneAspectDoubleAspect:
		return true
	default:
		return false
	}
}

// ParseDamageModel returns the model named by id.
func ParseDamageModel(id string) (DamageModel, error) {
	m := DamageModel(id)
	if !m.Valid() {
		return "", fmt.Errorf("unknown damage model %q", id)
	}
	return m, nil
}

// CalculateDamage scores an attacking roll: the highest die gives 2 for a 6,
// 1 for 4–5 and 0 for 1–3, plus 1 when the roll holds doubles.
//
// Postcondition: returns 0 for an empty roll; otherwise a value in [0, 3].
func CalculateDamage(rolls []int) int {
	if len(rolls) == 0 {
		return 0
	}
	var dmg int
	switch hi := dice.Highest(rolls); {
	case hi >= 6:
		dmg = 2
	case hi >= 4:
		dmg = 1
	}
	if dice.HasDoubles(rolls) {
		dmg++
	}
	return dmg
}

// DefenseOutcome is the result of a defending roll.
type DefenseOutcome struct {
	Damage int
	// Counter is set when the defending roll holds doubles.
	Counter bool
}

// CalculateDefenseDamage scores a defending roll against model. target
// supplies the longest capability track for the aspect-based models; a nil
// target counts as a track of 1.
//
// Postcondition: an empty roll yields the zero DefenseOutcome.
func CalculateDefenseDamage(rolls []int, model DamageModel, target *Character) DefenseOutcome {
	if len(rolls) == 0 {
		return DefenseOutcome{}
	}
	track := 1
	if target != nil {
		track = target.LongestTrack()
	}
	if !model.Valid() {
		model = DefaultDamageModel
	}

	hi := dice.Highest(rolls)
	var dmg int
	switch model {
	case ModelZeroOneTwo:
		dmg = tier(hi, 0, 1, 2)
	case ModelOneTwoAspect:
		dmg = tier(hi, 1, 2, track)
	case ModelOneAspectDoubleAspect:
		dmg = tier(hi, 1, track, 2*track)
	}
	return DefenseOutcome{Damage: dmg, Counter: dice.HasDoubles(rolls)}
}

// tier maps the highest die onto the six, four-five, and low bands.
func tier(hi, six, mid, low int) int {
	switch {
	case hi >= 6:
		return six
	case hi >= 4:
		return mid
	default:
		return low
	}
}

// IncapacitateOutcome is the result of defending against an incapacitate attack.
type IncapacitateOutcome struct {
	Damage             int
	Incapacitated      bool
	FullyIncapacitated bool
	Counter            bool
}

// CalculateIncapacitateDefense scores a roll against the incapacitate table:
// 6 → 1 damage, 4–5 → incapacitated, 1–3 → fully incapacitated (HP to 0).
//
// Postcondition: an empty roll yields the zero IncapacitateOutcome.
func CalculateIncapacitateDefense(rolls []int) IncapacitateOutcome {
	if len(rolls) == 0 {
		return IncapacitateOutcome{}
	}
	out := IncapacitateOutcome{Counter: dice.HasDoubles(rolls)}
	switch hi := dice.Highest(rolls); {
	case hi >= 6:
		out.Damage = 1
	case hi >= 4:
		out.Incapacitated = true
	default:
		out.FullyIncapacitated = true
	}
	return out
}

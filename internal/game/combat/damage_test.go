package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

func TestCalculateDamage(t *testing.T) {
	tests := []struct {
		rolls []int
		want  int
	}{
		{nil, 0},
		{[]int{6}, 2},
		{[]int{4}, 1},
		{[]int{5}, 1},
		{[]int{1, 2, 3}, 0},
		{[]int{6, 6}, 3},
		{[]int{2, 2}, 1},
		{[]int{4, 1, 4}, 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, combat.CalculateDamage(tc.rolls), "rolls=%v", tc.rolls)
	}
}

func TestCalculateDamage_Property_Bounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOfN(rapid.IntRange(1, 6), 0, 12).Draw(rt, "rolls")
		dmg := combat.CalculateDamage(rolls)
		assert.GreaterOrEqual(rt, dmg, 0)
		assert.LessOrEqual(rt, dmg, 3)
	})
}

func trackedTarget(tracks ...int) *combat.Character {
	c := &combat.Character{Name: "T"}
	for _, n := range tracks {
		c.Aspects = append(c.Aspects, combat.Aspect{Name: "track", TrackLength: n})
	}
	return c
}

func TestCalculateDefenseDamage_Tables(t *testing.T) {
	target := trackedTarget(2, 5, 3)
	tests := []struct {
		model combat.DamageModel
		roll  int
		want  int
	}{
		{combat.ModelZeroOneTwo, 6, 0},
		{combat.ModelZeroOneTwo, 5, 1},
		{combat.ModelZeroOneTwo, 4, 1},
		{combat.ModelZeroOneTwo, 1, 2},
		{combat.ModelOneTwoAspect, 6, 1},
		{combat.ModelOneTwoAspect, 4, 2},
		{combat.ModelOneTwoAspect, 1, 5},
		{combat.ModelOneAspectDoubleAspect, 6, 1},
		{combat.ModelOneAspectDoubleAspect, 5, 5},
		{combat.ModelOneAspectDoubleAspect, 1, 10},
	}
	for _, tc := range tests {
		out := combat.CalculateDefenseDamage([]int{tc.roll}, tc.model, target)
		assert.Equal(t, tc.want, out.Damage, "model=%s roll=%d", tc.model, tc.roll)
		assert.False(t, out.Counter)
	}
}

func TestCalculateDefenseDamage_DefaultsTrackToOne(t *testing.T) {
	out := combat.CalculateDefenseDamage([]int{2}, combat.ModelOneAspectDoubleAspect, nil)
	assert.Equal(t, 2, out.Damage)
	out = combat.CalculateDefenseDamage([]int{3}, combat.ModelOneTwoAspect, &combat.Character{})
	assert.Equal(t, 1, out.Damage)
}

func TestCalculateDefenseDamage_EmptyRoll(t *testing.T) {
	for _, m := range combat.DamageModels {
		assert.Equal(t, combat.DefenseOutcome{}, combat.CalculateDefenseDamage(nil, m, nil))
	}
}

func TestCalculateDefenseDamage_UnknownModelUsesDefault(t *testing.T) {
	out := combat.CalculateDefenseDamage([]int{1}, "bogus", nil)
	assert.Equal(t, 2, out.Damage)
}

func TestCalculateDefenseDamage_Property_CounterIffDoubles(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOfN(rapid.IntRange(1, 6), 0, 8).Draw(rt, "rolls")
		model := rapid.SampledFrom(combat.DamageModels).Draw(rt, "model")
		track := rapid.IntRange(0, 8).Draw(rt, "track")
		out := combat.CalculateDefenseDamage(rolls, model, trackedTarget(track))
		assert.Equal(rt, dice.HasDoubles(rolls), out.Counter)
		assert.GreaterOrEqual(rt, out.Damage, 0)
	})
}

func TestCalculateIncapacitateDefense(t *testing.T) {
	assert.Equal(t, combat.IncapacitateOutcome{Damage: 1}, combat.CalculateIncapacitateDefense([]int{6}))
	assert.Equal(t, combat.IncapacitateOutcome{Incapacitated: true}, combat.CalculateIncapacitateDefense([]int{4}))
	assert.Equal(t, combat.IncapacitateOutcome{FullyIncapacitated: true}, combat.CalculateIncapacitateDefense([]int{3, 1}))
	assert.Equal(t, combat.IncapacitateOutcome{Incapacitated: true, Counter: true}, combat.CalculateIncapacitateDefense([]int{5, 5}))
	assert.Equal(t, combat.IncapacitateOutcome{}, combat.CalculateIncapacitateDefense(nil))
}

func TestParseDamageModel(t *testing.T) {
	for _, m := range combat.DamageModels {
		got, err := combat.ParseDamageModel(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := combat.ParseDamageModel("1,2,3")
	assert.Error(t, err)
}

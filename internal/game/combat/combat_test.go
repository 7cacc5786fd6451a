package combat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

func TestCharacter_ApplyDamage(t *testing.T) {
	c := hero("ada", 5)
	c.ApplyDamage(2)
	assert.Equal(t, 3, c.CurrentHP)
	c.ApplyDamage(10)
	assert.Equal(t, 0, c.CurrentHP)
	assert.True(t, c.IsDead())
}

func TestEnemy_Property_DamageNeverBelowZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		track := rapid.IntRange(1, 30).Draw(rt, "track")
		dmg := rapid.IntRange(-5, 100).Draw(rt, "dmg")
		e := spider("s1", track)
		e.ApplyDamage(dmg)
		assert.GreaterOrEqual(rt, e.CurrentHP, 0)
		assert.LessOrEqual(rt, e.CurrentHP, track)
	})
}

func TestNewEnemy_HPIsSumOfTracks(t *testing.T) {
	e := spider("s1", 4, combat.Aspect{Name: "Web", TrackLength: 2, AbilityCode: "incapacitate"}, combat.Aspect{Name: "Fangs", TrackLength: 3})
	assert.Equal(t, 9, e.MaxHP())
	assert.Equal(t, 9, e.CurrentHP)
}

func TestEnemy_MarkUsed(t *testing.T) {
	e := spider("s1", 4,
		combat.Aspect{Name: "Web", TrackLength: 2, AbilityCode: "incapacitate"},
		combat.Aspect{Name: "Haze", TrackLength: 1, AbilityCode: "violetHaze"},
	)
	require.Len(t, e.AvailableAbilities(), 2)
	assert.True(t, e.MarkUsed("Web"))
	assert.False(t, e.MarkUsed("Web"))
	assert.Equal(t, []string{"Web"}, e.UsedAbilities)
	avail := e.AvailableAbilities()
	require.Len(t, avail, 1)
	assert.Equal(t, "Haze", avail[0].Name)
}

func TestEnemy_DisplayName(t *testing.T) {
	e := combat.NewEnemy("i1", "Spider", "", nil)
	assert.Equal(t, "Spider", e.DisplayName())
	e.UniqueName = "Spider 2"
	assert.Equal(t, "Spider 2", e.DisplayName())
}

func TestParty_Weakest(t *testing.T) {
	p := combat.Party{hero("a", 3), hero("b", 2), hero("c", 2), hero("d", 0)}
	idx, ok := p.Weakest()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{0, 1, 2}, p.Living())
	assert.Equal(t, 2, p.IndexOf("c"))
	assert.Equal(t, -1, p.IndexOf("zz"))

	_, ok = combat.Party{hero("x", 0)}.Weakest()
	assert.False(t, ok)
}

func TestEncounter_CloneIsolatesUsedAbilities(t *testing.T) {
	enc := combat.Encounter{spider("s1", 3)}
	enc[0].MarkUsed("Web")
	cp := enc.Clone()
	cp[0].MarkUsed("Haze")
	cp[0].ApplyDamage(1)
	assert.Equal(t, []string{"Web"}, enc[0].UsedAbilities)
	assert.Equal(t, 3, enc[0].CurrentHP)

	fresh := enc.ResetSession()
	assert.Empty(t, fresh[0].UsedAbilities)
	assert.Equal(t, []string{"Web"}, enc[0].UsedAbilities)
}

func TestEncounter_Defeated(t *testing.T) {
	enc := combat.Encounter{spider("a", 3), spider("b", 3), spider("c", 3)}
	enc[1].CurrentHP = 0
	enc[2].CurrentHP = 0
	assert.Equal(t, 2, enc.Defeated(0))
	assert.Equal(t, 1, enc.Defeated(1))
	assert.Equal(t, 0, enc.IndexOf("a"))
}

func TestCheckWinConditions(t *testing.T) {
	deadEnc := combat.Encounter{spider("a", 3)}
	deadEnc[0].CurrentHP = 0
	st := combat.CheckWinConditions(deadEnc, combat.Party{hero("p", 4)})
	assert.Equal(t, combat.WinStatus{IsOver: true, Result: combat.ResultWin, AliveEnemies: 0, AliveParty: 1}, st)

	st = combat.CheckWinConditions(combat.Encounter{spider("a", 3)}, combat.Party{hero("p", 0)})
	assert.True(t, st.IsOver)
	assert.Equal(t, combat.ResultLose, st.Result)

	st = combat.CheckWinConditions(combat.Encounter{spider("a", 3)}, combat.Party{hero("p", 1)})
	assert.False(t, st.IsOver)
	assert.Equal(t, combat.ResultOngoing, st.Result)
}

func TestCheckWinConditions_BothWipedIsWin(t *testing.T) {
	enc := combat.Encounter{spider("a", 3)}
	enc[0].CurrentHP = 0
	st := combat.CheckWinConditions(enc, combat.Party{hero("p", 0)})
	assert.Equal(t, combat.ResultWin, st.Result)
}

func TestNewEngine_NormalizesSettings(t *testing.T) {
	e := newEngine(always(6), combat.Settings{AttacksPerRound: 9, DamageModel: "nope"})
	s := e.Settings()
	assert.Equal(t, combat.MaxAttacksPerRound, s.AttacksPerRound)
	assert.Equal(t, combat.DefaultDamageModel, s.DamageModel)
	assert.Equal(t, combat.DefaultMaxRounds, s.MaxRounds)
	assert.Equal(t, combat.DefaultSessionBudget, s.SessionBudget)

	e = newEngine(always(6), combat.Settings{})
	assert.Equal(t, combat.MinAttacksPerRound, e.Settings().AttacksPerRound)
}

func TestNewEngine_SafetyValvesOnlyTighten(t *testing.T) {
	s := newEngine(always(6), combat.Settings{MaxRounds: 500, SessionBudget: time.Hour}).Settings()
	assert.Equal(t, combat.DefaultMaxRounds, s.MaxRounds)
	assert.Equal(t, combat.DefaultSessionBudget, s.SessionBudget)

	s = newEngine(always(6), combat.Settings{MaxRounds: 7, SessionBudget: 250 * time.Millisecond}).Settings()
	assert.Equal(t, 7, s.MaxRounds)
	assert.Equal(t, 250*time.Millisecond, s.SessionBudget)
}

package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// seqSource returns faces from a fixed script, cycling when exhausted.
// Faces are given as die values in [1,6].
type seqSource struct {
	faces []int
	i     int
}

func (s *seqSource) Intn(_ int) int {
	v := s.faces[s.i%len(s.faces)]
	s.i++
	return v - 1
}

func TestRollPool_LengthMatchesCount_Property(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(rt, "n")
		res := dice.RollPool(n, 0, 0, src)
		assert.Len(rt, res.Kept, n)
		for _, v := range res.Kept {
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, 6)
		}
	})
}

func TestRollPool_CutKeepsAtLeastOne_Property(t *testing.T) {
	src := dice.NewSeededSource(42)
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		cut := rapid.IntRange(0, 30).Draw(rt, "cut")
		res := dice.RollPool(n, cut, 0, src)
		assert.Len(rt, res.Kept, max(1, n-cut))
		assert.Equal(rt, n, len(res.Kept)+len(res.Dropped))
	})
}

func TestRollPool_AdvantageAddsDice(t *testing.T) {
	res := dice.RollPool(2, 0, 1, &seqSource{faces: []int{3, 4, 5}})
	assert.Equal(t, []int{3, 4, 5}, res.Kept)
}

func TestRollPool_CutRemovesHighest(t *testing.T) {
	res := dice.RollPool(4, 2, 0, &seqSource{faces: []int{2, 6, 1, 5}})
	assert.Equal(t, []int{2, 1}, res.Kept)
	assert.Equal(t, []int{6, 5}, res.Dropped)
}

func TestRollPool_ZeroCountIsEmpty(t *testing.T) {
	res := dice.RollPool(0, 3, 0, dice.NewCryptoSource())
	assert.Empty(t, res.Kept)
	assert.Empty(t, res.Dropped)
	assert.Equal(t, 0, res.Highest())
}

func TestHasDoubles(t *testing.T) {
	assert.False(t, dice.HasDoubles(nil))
	assert.False(t, dice.HasDoubles([]int{1, 2, 3}))
	assert.True(t, dice.HasDoubles([]int{4, 2, 4}))
	assert.True(t, dice.HasDoubles([]int{6, 6}))
}

func TestHighest(t *testing.T) {
	assert.Equal(t, 0, dice.Highest(nil))
	assert.Equal(t, 5, dice.Highest([]int{1, 5, 3}))
}

func TestPoolResult_String(t *testing.T) {
	r := dice.PoolResult{Count: 3, Cut: 1, Advantage: 1, Kept: []int{2, 4, 1}, Dropped: []int{6}}
	assert.Equal(t, "3d6 cut 1 adv 1 → [2 4 1] (dropped [6])", r.String())
	plain := dice.PoolResult{Count: 1, Kept: []int{3}}
	assert.Equal(t, "1d6 → [3]", plain.String())
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(7)
	b := dice.NewSeededSource(7)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(6), b.Intn(6))
	}
}

func TestRoller_LogsEachPool(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(&seqSource{faces: []int{6, 2}}, zap.New(core))
	res := r.Pool(2, 0, 0)
	assert.Equal(t, []int{6, 2}, res.Kept)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "dice pool", entry.Message)
	assert.Equal(t, int64(2), entry.ContextMap()["count"])
}

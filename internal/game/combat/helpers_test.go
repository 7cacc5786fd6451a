package combat_test

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// poolCall records the arguments of one Pool request.
type poolCall struct{ count, cut, advantage int }

// stubRoller returns scripted pools first, then repeats fallback forever.
// Intn always returns choice clamped to [0, n).
type stubRoller struct {
	script   [][]int
	fallback []int
	choice   int
	calls    []poolCall
}

func (s *stubRoller) Pool(count, cut, advantage int) dice.PoolResult {
	s.calls = append(s.calls, poolCall{count, cut, advantage})
	kept := s.fallback
	if count+advantage == 0 {
		kept = nil
	}
	if len(s.script) > 0 {
		kept, s.script = s.script[0], s.script[1:]
	}
	return dice.PoolResult{Count: count, Cut: cut, Advantage: advantage, Kept: append([]int(nil), kept...)}
}

func (s *stubRoller) Intn(n int) int {
	return min(s.choice, n-1)
}

func always(kept ...int) *stubRoller { return &stubRoller{fallback: kept} }

func newEngine(r combat.Roller, s combat.Settings, opts ...combat.Option) *combat.Engine {
	return combat.NewEngine(r, zap.NewNop(), s, opts...)
}

func hero(id string, hp int) combat.Character {
	return combat.Character{
		ID: id, Name: id, HitPoints: hp, CurrentHP: hp,
		AttackScore: 2, AttackSkill: "Shoot",
		DefenseScore: 2, DefenseSkill: "Dodge",
	}
}

func spider(id string, track int, aspects ...combat.Aspect) combat.Enemy {
	all := append([]combat.Aspect{{Name: "Body", TrackLength: track}}, aspects...)
	return combat.NewEnemy(id, "Spider", id, all)
}

func countContaining(log combat.Log, substr string) int {
	n := 0
	for _, e := range log {
		if strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

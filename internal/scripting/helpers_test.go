package scripting_test

import "github.com/cory-johannsen/skirmish/internal/game/dice"

// sixes rolls a single 6 for every pool.
type sixes struct{}

func (sixes) Pool(count, cut, advantage int) dice.PoolResult {
	return dice.PoolResult{Count: count, Kept: []int{6}}
}

func (sixes) Intn(int) int { return 0 }

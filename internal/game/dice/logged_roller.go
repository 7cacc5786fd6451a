package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged pool rolling.
// Every roll is logged at debug level with its modifiers and results.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Pool rolls a d6 pool and logs the result.
//
// Postcondition: see RollPool.
func (r *Roller) Pool(count, cut, advantage int) PoolResult {
	res := RollPool(count, cut, advantage, r.src)
	r.logger.Debug("dice pool",
		zap.Int("count", res.Count),
		zap.Int("cut", res.Cut),
		zap.Int("advantage", res.Advantage),
		zap.Ints("kept", res.Kept),
		zap.Ints("dropped", res.Dropped),
	)
	return res
}

// Intn draws from the underlying source. Used for non-dice choices such as
// picking which ability an enemy uses.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

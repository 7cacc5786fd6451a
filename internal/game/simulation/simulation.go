// Package simulation runs many independent combat sessions from the same
// starting snapshot and aggregates their outcomes.
package simulation

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// Stats aggregates the outcomes of a batch.
type Stats struct {
	Sessions    int
	Wins        int
	Losses      int
	Timeouts    int
	Capped      int
	TotalRounds int
	MinRounds   int
	MaxRounds   int
}

// WinRate returns Wins/Sessions, or 0 for an empty batch.
func (s Stats) WinRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Sessions)
}

// AverageRounds returns TotalRounds/Sessions, or 0 for an empty batch.
func (s Stats) AverageRounds() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Sessions)
}

func (s *Stats) add(res combat.SessionResult, startRound int) {
	rounds := max(res.Round-startRound+1, 0)
	if s.Sessions == 0 || rounds < s.MinRounds {
		s.MinRounds = rounds
	}
	s.MaxRounds = max(s.MaxRounds, rounds)
	s.Sessions++
	s.TotalRounds += rounds
	switch {
	case res.Result == combat.ResultWin:
		s.Wins++
	case res.Result == combat.ResultLose:
		s.Losses++
	case res.TimeoutOccurred:
		s.Timeouts++
	case res.Capped:
		s.Capped++
	}
}

// Runner executes batches on a shared Engine.
type Runner struct {
	engine  *combat.Engine
	logger  *zap.Logger
	workers int
}

// NewRunner creates a Runner. workers below 1 means sequential execution.
// With more than one worker the engine's Roller must be safe for concurrent use.
//
// Precondition: engine and logger must be non-nil.
func NewRunner(engine *combat.Engine, logger *zap.Logger, workers int) *Runner {
	return &Runner{engine: engine, logger: logger, workers: max(workers, 1)}
}

// Run plays sessions independent sessions, each starting from party and enc
// with hit points as given and every enemy's used abilities cleared. It stops
// scheduling new sessions once ctx is done and returns the stats gathered so
// far along with ctx's error.
//
// Postcondition: the inputs are not modified.
func (r *Runner) Run(ctx context.Context, party combat.Party, enc combat.Encounter, sessions int) (Stats, error) {
	var (
		mu    sync.Mutex
		stats Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := 0; i < sessions; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.engine.RunSession(party.Clone(), enc.ResetSession(), combat.SessionOptions{StartRound: 1})
			mu.Lock()
			stats.add(res, 1)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	r.logger.Info("batch finished",
		zap.Int("sessions", stats.Sessions),
		zap.Int("wins", stats.Wins),
		zap.Int("losses", stats.Losses),
		zap.Int("timeouts", stats.Timeouts),
		zap.Int("capped", stats.Capped),
		zap.Float64("avg_rounds", stats.AverageRounds()),
	)
	return stats, err
}

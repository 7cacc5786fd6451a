package combat

import (
	"time"

	"go.uber.org/zap"
)

// SessionOptions controls a single session run.
type SessionOptions struct {
	// StartRound is the number of the first round; zero means 1.
	StartRound int
	// Deadline stops the loop between rounds once passed. The zero value, or
	// any deadline later than now plus the engine's SessionBudget, means now
	// plus SessionBudget.
	Deadline time.Time
}

// SessionResult is the final state of a session.
type SessionResult struct {
	Party     Party
	Encounter Encounter
	// Round is the last round simulated, or StartRound-1 if none ran.
	Round int
	Log   Log
	// Result and ResultText are empty when the session was capped or timed out.
	Result          Result
	ResultText      string
	TimeoutOccurred bool
	Capped          bool
}

// RunSession simulates rounds until one side is defeated, the round cap is
// reached, or the deadline passes. Cap and timeout are soft terminations
// marked in the log.
func (e *Engine) RunSession(party Party, enc Encounter, opts SessionOptions) SessionResult {
	start := opts.StartRound
	if start <= 0 {
		start = 1
	}
	deadline := opts.Deadline
	if limit := e.now().Add(e.settings.SessionBudget); deadline.IsZero() || deadline.After(limit) {
		deadline = limit
	}

	res := SessionResult{Party: party.Clone(), Encounter: enc.Clone(), Round: start - 1}
	if len(party) == 0 || len(enc) == 0 {
		res.Log.neutral("%s", MsgMissingCombatants)
		return res
	}

	e.logger.Debug("session starting",
		zap.Int("party", len(party)),
		zap.Int("enemies", len(enc)),
		zap.Int("start_round", start),
		zap.String("damage_model", string(e.settings.DamageModel)),
	)

	round := start
	for simulated := 0; ; simulated++ {
		if st := CheckWinConditions(res.Encounter, res.Party); st.IsOver {
			res.Result = st.Result
			res.ResultText = ResultText(st.Result, res.Round)
			break
		}
		if simulated >= e.settings.MaxRounds {
			res.Capped = true
			res.Log.neutral("Combat stopped after %d rounds without a decision.", simulated)
			e.logger.Info("session capped", zap.Int("rounds", simulated))
			break
		}
		if e.now().After(deadline) {
			res.TimeoutOccurred = true
			res.Log.neutral("Simulation timed out after %d rounds.", simulated)
			e.logger.Warn("session timed out", zap.Int("rounds", simulated))
			break
		}

		rr := e.SimulateRound(res.Party, res.Encounter, round)
		res.Log = append(res.Log, rr.Log...)
		res.Party, res.Encounter, res.Round = rr.Party, rr.Encounter, round
		if rr.IsOver {
			res.Result, res.ResultText = rr.Result, rr.ResultText
			break
		}
		round++
	}

	e.logger.Debug("session finished",
		zap.Int("round", res.Round),
		zap.String("result", string(res.Result)),
		zap.Bool("timeout", res.TimeoutOccurred),
		zap.Bool("capped", res.Capped),
	)
	return res
}

// Package main provides the simulate binary, which resolves skirmishes
// between a party file and an encounter file: one round, one session, or a
// batch of sessions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/roster"
	"github.com/cory-johannsen/skirmish/internal/game/simulation"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// Run modes.
const (
	modeRound   = "round"
	modeSession = "session"
	modeBatch   = "batch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("simulate: %v", err)
	}
}

// run parses args, wires the engine and writes the outcome to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	start := time.Now()
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	configPath := fs.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	partyPath := fs.String("party", "content/party.yaml", "path to party YAML file")
	encounterPath := fs.String("encounter", "content/encounter.yaml", "path to encounter YAML file")
	mode := fs.String("mode", modeSession, "what to run: round, session or batch")
	round := fs.Int("round", 1, "round number to start from")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mode != modeRound && *mode != modeSession && *mode != modeBatch {
		return fmt.Errorf("unknown mode %q", *mode)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	party, err := roster.LoadParty(*partyPath)
	if err != nil {
		return err
	}
	enc, err := roster.LoadEncounter(*encounterPath)
	if err != nil {
		return err
	}

	var opts []combat.Option
	if cfg.Scripting.Dir != "" {
		narrator := scripting.NewNarrator(logger, cfg.Scripting.InstructionLimit)
		defer narrator.Close()
		if err := narrator.LoadDir(cfg.Scripting.Dir); err != nil {
			return err
		}
		opts = append(opts, combat.WithNarrator(narrator))
	}

	engine := combat.NewEngine(newRoller(cfg.Simulation, logger), logger, engineSettings(cfg.Simulation), opts...)
	logger.Info("simulating",
		zap.String("mode", *mode),
		zap.Int("party", len(party)),
		zap.Int("enemies", len(enc)),
		zap.String("damage_model", string(engine.Settings().DamageModel)),
	)

	switch *mode {
	case modeRound:
		res := engine.SimulateRound(party, enc, *round)
		printLog(out, res.Log)
		printStanding(out, res.Party, res.Encounter)
		if res.ResultText != "" {
			fmt.Fprintln(out, res.ResultText)
		}
	case modeSession:
		res := engine.RunSession(party, enc, combat.SessionOptions{StartRound: *round})
		printLog(out, res.Log)
		printStanding(out, res.Party, res.Encounter)
		fmt.Fprintln(out, sessionOutcome(res))
	case modeBatch:
		stats, err := simulation.NewRunner(engine, logger, cfg.Simulation.Workers).
			Run(ctx, party, enc, cfg.Simulation.Sessions)
		printStats(out, stats)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	logger.Info("simulation complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// newRoller returns a seeded roller when a seed is configured, else a
// crypto-backed one.
func newRoller(sim config.SimulationConfig, logger *zap.Logger) *dice.Roller {
	src := dice.NewCryptoSource()
	if sim.Seed != 0 {
		src = dice.NewSeededSource(sim.Seed)
	}
	return dice.NewLoggedRoller(src, logger)
}

func engineSettings(sim config.SimulationConfig) combat.Settings {
	return combat.Settings{
		DamageModel:      combat.DamageModel(sim.DamageModel),
		AttacksPerRound:  sim.EnemyAttacksPerRound,
		AbilitiesEnabled: sim.AbilitiesEnabled,
		Debug:            sim.Debug,
		MaxRounds:        sim.MaxRounds,
		SessionBudget:    sim.SessionTimeout,
	}
}

func printLog(out io.Writer, l combat.Log) {
	for _, e := range l {
		fmt.Fprintf(out, "[%-7s] %s\n", e.Category, e.Message)
	}
}

func printStanding(out io.Writer, party combat.Party, enc combat.Encounter) {
	fmt.Fprintln(out)
	for _, c := range party {
		fmt.Fprintf(out, "  %-20s %3d/%d HP\n", c.Name, c.CurrentHP, c.HitPoints)
	}
	for _, e := range enc {
		fmt.Fprintf(out, "  %-20s %3d HP\n", e.DisplayName(), e.CurrentHP)
	}
}

func sessionOutcome(res combat.SessionResult) string {
	switch {
	case res.ResultText != "":
		return res.ResultText
	case res.TimeoutOccurred:
		return fmt.Sprintf("Timed out after %d rounds", res.Round)
	case res.Capped:
		return fmt.Sprintf("Undecided after %d rounds", res.Round)
	default:
		return "No result"
	}
}

func printStats(out io.Writer, s simulation.Stats) {
	fmt.Fprintf(out, "sessions: %d\n", s.Sessions)
	fmt.Fprintf(out, "wins:     %d (%.1f%%)\n", s.Wins, 100*s.WinRate())
	fmt.Fprintf(out, "losses:   %d\n", s.Losses)
	fmt.Fprintf(out, "timeouts: %d\n", s.Timeouts)
	fmt.Fprintf(out, "capped:   %d\n", s.Capped)
	fmt.Fprintf(out, "rounds:   min %d, avg %.2f, max %d\n", s.MinRounds, s.AverageRounds(), s.MaxRounds)
}

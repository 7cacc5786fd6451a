package combat

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks -source=engine.go

import (
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// Limits on the configurable number of enemy attacks per round.
const (
	MinAttacksPerRound = 1
	MaxAttacksPerRound = 5
)

// Session loop safety valves. They are upper bounds: Settings can tighten
// them but never raise them.
const (
	DefaultMaxRounds     = 100
	DefaultSessionBudget = time.Second
)

// Roller produces d6 pools and uniform choices. *dice.Roller satisfies it;
// tests substitute scripted implementations.
type Roller interface {
	Pool(count, cut, advantage int) dice.PoolResult
	Intn(n int) int
}

// Narrator supplies optional flavor text. Returned strings are appended as
// neutral log entries; an empty string adds nothing.
type Narrator interface {
	RoundEnd(round, aliveParty, aliveEnemies int) string
	Ability(code, enemy, target string) string
}

// Settings are the per-session knobs supplied by the caller.
type Settings struct {
	DamageModel      DamageModel
	AttacksPerRound  int
	AbilitiesEnabled bool
	// Debug echoes every roll into the combat log.
	Debug bool
	// MaxRounds caps a session at no more than DefaultMaxRounds; zero means
	// DefaultMaxRounds.
	MaxRounds int
	// SessionBudget bounds a session's wall time at no more than
	// DefaultSessionBudget; zero means DefaultSessionBudget.
	SessionBudget time.Duration
}

// normalized returns s with defaults applied and out-of-range values clamped.
func (s Settings) normalized() Settings {
	if !s.DamageModel.Valid() {
		s.DamageModel = DefaultDamageModel
	}
	s.AttacksPerRound = min(max(s.AttacksPerRound, MinAttacksPerRound), MaxAttacksPerRound)
	if s.MaxRounds <= 0 {
		s.MaxRounds = DefaultMaxRounds
	}
	s.MaxRounds = min(s.MaxRounds, DefaultMaxRounds)
	if s.SessionBudget <= 0 {
		s.SessionBudget = DefaultSessionBudget
	}
	s.SessionBudget = min(s.SessionBudget, DefaultSessionBudget)
	return s
}

// Engine resolves rounds and sessions for a fixed set of Settings.
// An Engine holds no combat state and may be shared by concurrent sessions
// when its Roller and Narrator are safe for concurrent use.
type Engine struct {
	roller   Roller
	logger   *zap.Logger
	settings Settings
	now      func() time.Time
	narrator Narrator
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used for session deadlines.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithNarrator installs a flavor-text provider.
func WithNarrator(n Narrator) Option {
	return func(e *Engine) { e.narrator = n }
}

// NewEngine creates an Engine.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Settings() reports the normalized settings.
func NewEngine(roller Roller, logger *zap.Logger, s Settings, opts ...Option) *Engine {
	e := &Engine{
		roller:   roller,
		logger:   logger,
		settings: s.normalized(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settings returns the normalized settings in effect.
func (e *Engine) Settings() Settings { return e.settings }

package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Hook names looked up as Lua globals.
const (
	HookRoundEnd = "on_round_end"
	HookAbility  = "on_ability"
)

// Narrator dispatches combat events to Lua hooks and returns whatever string
// they produce. It satisfies combat.Narrator and is safe for concurrent use;
// calls are serialized on a single VM.
type Narrator struct {
	mu     sync.Mutex
	L      *lua.LState
	limit  int
	logger *zap.Logger
}

// NewNarrator creates a Narrator with an empty sandboxed VM.
// instLimit <= 0 uses DefaultInstructionLimit.
//
// Precondition: logger must be non-nil.
func NewNarrator(logger *zap.Logger, instLimit int) *Narrator {
	if instLimit <= 0 {
		instLimit = DefaultInstructionLimit
	}
	return &Narrator{L: newSandboxedState(logger), limit: instLimit, logger: logger}
}

// LoadString executes src in the VM, typically to define hook functions.
func (n *Narrator) LoadString(src string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := budgeted(n.L, n.limit, func() error { return n.L.DoString(src) }); err != nil {
		return fmt.Errorf("scripting: loading script: %w", err)
	}
	return nil
}

// LoadDir executes every *.lua file in dir in lexicographic order.
func (n *Narrator) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, path := range files {
		if err := budgeted(n.L, n.limit, func() error { return n.L.DoFile(path) }); err != nil {
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}
	return nil
}

// Close releases the VM.
func (n *Narrator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.L.Close()
}

// RoundEnd calls on_round_end(round, alive_party, alive_enemies).
func (n *Narrator) RoundEnd(round, aliveParty, aliveEnemies int) string {
	return n.call(HookRoundEnd, lua.LNumber(round), lua.LNumber(aliveParty), lua.LNumber(aliveEnemies))
}

// Ability calls on_ability(code, enemy, target).
func (n *Narrator) Ability(code, enemy, target string) string {
	return n.call(HookAbility, lua.LString(code), lua.LString(enemy), lua.LString(target))
}

// call invokes hook and returns its first result if it is a string. Missing
// hooks, non-string results and Lua errors all yield "", errors being logged
// at warn level.
func (n *Narrator) call(hook string, args ...lua.LValue) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	fn := n.L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return ""
	}
	err := budgeted(n.L, n.limit, func() error {
		return n.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	})
	if err != nil {
		n.logger.Warn("scripting: Lua runtime error", zap.String("hook", hook), zap.Error(err))
		return ""
	}
	ret := n.L.Get(-1)
	n.L.Pop(1)
	if s, ok := ret.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// Package scripting provides sandboxed GopherLua narration hooks for the
// combat engine. Scripts only ever contribute flavor text; they cannot
// change combat state.
package scripting

import (
	"context"
	"strings"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// hook call or script load when no override is configured.
const DefaultInstructionLimit = 100_000

// opBudget is a context that cancels itself once Done has been polled more
// than its allowance. GopherLua polls Done once per opcode while a context
// is installed.
type opBudget struct {
	context.Context
	stop context.CancelFunc
	left atomic.Int64
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) < 0 {
		b.stop()
	}
	return b.Context.Done()
}

// withOpBudget derives a context from parent allowing ops polls of Done.
//
// Precondition: ops > 0.
func withOpBudget(parent context.Context, ops int) (context.Context, context.CancelFunc) {
	ctx, stop := context.WithCancel(parent)
	b := &opBudget{Context: ctx, stop: stop}
	b.left.Store(int64(ops))
	return b, stop
}

// budgeted runs fn on L with a fresh budget of ops opcodes, removing the
// budget afterwards.
func budgeted(L *lua.LState, ops int, fn func() error) error {
	ctx, stop := withOpBudget(context.Background(), ops)
	defer stop()
	L.SetContext(ctx)
	defer L.RemoveContext()
	return fn()
}

// newSandboxedState returns an LState with only the base, table, string and
// math libraries. Code and file loaders are removed and print is routed to
// logger at debug level, keeping stdout for the combat log.
//
// Postcondition: the caller owns the LState and must Close it.
func newSandboxedState(logger *zap.Logger) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "collectgarbage", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		logger.Debug("lua print", zap.String("text", strings.Join(parts, "\t")))
		return 0
	}))
	return L
}

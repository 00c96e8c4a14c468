package input

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/observability/log"
)

// Lua asks a script for each frame's events. The script defines
//
//	function input(frame) return {"left", "angry"} end
//
// and may keep state in globals between calls.
type Lua struct {
	mu     sync.Mutex
	vm     *lua.LState
	logger log.Log
}

func NewLua(source string, logger log.Log) (*Lua, error) {
	if logger == nil {
		logger = log.NewNop()
	}

	vm := lua.NewState()
	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load lua input script: %w", err)
	}
	if _, ok := vm.GetGlobal("input").(*lua.LFunction); !ok {
		vm.Close()
		return nil, ErrMissingFunction
	}

	return &Lua{vm: vm, logger: logger}, nil
}

func (l *Lua) Poll(frame uint64) ([]models.Input, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.vm.CallByParam(lua.P{
		Fn:      l.vm.GetGlobal("input"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(frame)); err != nil {
		return nil, fmt.Errorf("lua input(%d): %w", frame, err)
	}

	result := l.vm.Get(-1)
	l.vm.Pop(1)

	if result == lua.LNil {
		return nil, nil
	}
	table, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrBadLuaResult, result.Type())
	}

	names := make([]string, 0, table.Len())
	for i := 1; i <= table.Len(); i++ {
		s, ok := table.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: element %d", ErrBadLuaResult, i)
		}
		names = append(names, string(s))
	}

	events, err := parseAll(names)
	if err != nil {
		return nil, fmt.Errorf("lua input(%d): %w", frame, err)
	}
	l.logger.Debug("lua input", log.Uint64("frame", frame), log.Strings("events", names))
	return events, nil
}

func (l *Lua) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vm.Close()
	return nil
}

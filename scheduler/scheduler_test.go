// This file is part of emuscript.
//
// emuscript is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuscript is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuscript.  If not, see <https://www.gnu.org/licenses/>.

package scheduler_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/scheduler"
	"github.com/jetsetilly/emuscript/test"
	lua "github.com/yuin/gopher-lua"
)

// env registers a minimal API for test scripts
type env struct {
	sch      *scheduler.Scheduler
	recorded []string
	callback *lua.LFunction
	prepared int
}

func (e *env) Prepare(L *lua.LState) error {
	e.prepared++
	L.SetGlobal("frameadvance", L.NewFunction(func(L *lua.LState) int {
		return e.sch.FrameBoundary(L)
	}))
	L.SetGlobal("pause", L.NewFunction(func(L *lua.LState) int {
		return e.sch.Suspend(L)
	}))
	L.SetGlobal("record", L.NewFunction(func(L *lua.LState) int {
		e.recorded = append(e.recorded, L.CheckString(1))
		return 0
	}))
	L.SetGlobal("register", L.NewFunction(func(L *lua.LState) int {
		e.callback = L.CheckFunction(1)
		return 0
	}))
	return nil
}

func (e *env) record() string {
	return strings.Join(e.recorded, ",")
}

func newScheduler(opts scheduler.Options) (*scheduler.Scheduler, *env) {
	e := &env{}
	e.sch = scheduler.NewScheduler(e, opts)
	return e.sch, e
}

func TestAdvance(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)
	test.ExpectEquality(t, sch.State(), scheduler.Unloaded)

	// no script
	o, err := sch.Advance()
	test.ExpectEquality(t, o, scheduler.Idle)
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, sch.Load("counter.lua", []byte(`
		local i = 0
		while true do
			i = i + 1
			record(tostring(i))
			frameadvance()
		end
	`)))
	test.ExpectEquality(t, sch.State(), scheduler.Runnable)

	// the script does not run until the first advance
	test.ExpectEquality(t, e.record(), "")

	for range 3 {
		o, err = sch.Advance()
		test.ExpectEquality(t, o, scheduler.Waiting)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, sch.State(), scheduler.Suspended)
	}
	test.ExpectEquality(t, e.record(), "1,2,3")
	test.ExpectEquality(t, sch.String(), "counter.lua (suspended)")
}

func TestEndings(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	// natural end
	test.DemandSuccess(t, sch.Load("finish.lua", []byte(`record("a") frameadvance() record("b")`)))
	o, _ := sch.Advance()
	test.ExpectEquality(t, o, scheduler.Waiting)
	o, _ = sch.Advance()
	test.ExpectEquality(t, o, scheduler.Finished)
	test.ExpectSuccess(t, o.Terminal())
	test.ExpectEquality(t, sch.State(), scheduler.Terminated)
	test.ExpectEquality(t, e.record(), "a,b")

	// terminated is final
	o, _ = sch.Advance()
	test.ExpectEquality(t, o, scheduler.Idle)

	// yielding without asking for a frame boundary
	test.DemandSuccess(t, sch.Load("yield.lua", []byte(`coroutine.yield()`)))
	o, _ = sch.Advance()
	test.ExpectEquality(t, o, scheduler.Abandoned)
	test.ExpectEquality(t, sch.State(), scheduler.Terminated)

	// runtime error
	test.DemandSuccess(t, sch.Load("error.lua", []byte(`error("boom")`)))
	o, err := sch.Advance()
	test.ExpectEquality(t, o, scheduler.Failed)
	test.ExpectSuccess(t, curated.Is(err, scheduler.RuntimeError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "boom"))
	test.ExpectEquality(t, sch.State(), scheduler.Terminated)

	sch.Terminate()
	test.ExpectSuccess(t, sch.Lua() == nil)
}

func TestCompileError(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	test.DemandSuccess(t, sch.Load("good.lua", []byte(`while true do record("good") frameadvance() end`)))
	sch.Advance()

	err := sch.Load("bad.lua", []byte(`this is not lua`))
	test.ExpectSuccess(t, curated.Is(err, scheduler.CompileError))

	// the previous script is still running
	test.ExpectEquality(t, sch.Name(), "good.lua")
	test.ExpectEquality(t, sch.State(), scheduler.Suspended)
	o, _ := sch.Advance()
	test.ExpectEquality(t, o, scheduler.Waiting)
	test.ExpectEquality(t, e.record(), "good,good")

	// compile errors before any script has loaded
	sch, _ = newScheduler(scheduler.DefaultOptions)
	test.ExpectFailure(t, sch.Load("bad.lua", []byte(`x = = 1`)))
	test.ExpectEquality(t, sch.State(), scheduler.Unloaded)
}

func TestReload(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	test.DemandSuccess(t, sch.Load("a.lua", []byte(`while true do record("a") frameadvance() end`)))
	sch.Advance()
	test.ExpectEquality(t, sch.State(), scheduler.Suspended)
	old := sch.Lua()

	// the new script starts from the beginning in a new Lua state
	test.DemandSuccess(t, sch.Load("b.lua", []byte(`while true do record("b") frameadvance() end`)))
	test.ExpectInequality(t, sch.Lua(), old)
	test.ExpectEquality(t, e.prepared, 2)
	sch.Advance()
	test.ExpectEquality(t, e.record(), "a,b")
}

func TestNestedSuspension(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	test.DemandSuccess(t, sch.Load("nested.lua", []byte(`
		register(function()
			pause()
			record("callback")
			frameadvance()
		end)

		local co = coroutine.create(function() frameadvance() end)
		local ok, err = coroutine.resume(co)
		record(tostring(ok))

		while true do
			frameadvance()
		end
	`)))

	o, _ := sch.Advance()
	test.DemandEquality(t, o, scheduler.Waiting)
	test.ExpectEquality(t, e.record(), "false")

	// a frame boundary can not be requested from a callback. pause() returns
	// immediately
	err := sch.Call(e.callback)
	test.ExpectSuccess(t, curated.Is(err, scheduler.RuntimeError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), scheduler.NestedSuspension))
	test.ExpectEquality(t, e.record(), "false,callback")

	// callback errors do not end the script
	test.ExpectEquality(t, sch.State(), scheduler.Suspended)
	o, _ = sch.Advance()
	test.ExpectEquality(t, o, scheduler.Waiting)
}

func TestCall(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	// no script
	test.ExpectSuccess(t, sch.Call(nil))

	test.DemandSuccess(t, sch.Load("call.lua", []byte(`
		local n = 0
		register(function(a, b)
			n = n + 1
			record(a .. b .. n)
		end)
		while true do frameadvance() end
	`)))
	sch.Advance()

	test.DemandSuccess(t, sch.Call(e.callback, lua.LString("x"), lua.LString("y")))
	test.DemandSuccess(t, sch.Call(e.callback, lua.LString("x"), lua.LString("y")))
	test.ExpectEquality(t, e.record(), "xy1,xy2")

	// no calls after termination
	sch.Terminate()
	test.ExpectEquality(t, sch.State(), scheduler.Terminated)
	test.ExpectSuccess(t, sch.Call(e.callback))
	test.ExpectEquality(t, e.record(), "xy1,xy2")
}

func TestCoroutines(t *testing.T) {
	sch, e := newScheduler(scheduler.DefaultOptions)

	// wrap() is replaced but must still work in the usual way
	test.DemandSuccess(t, sch.Load("wrap.lua", []byte(`
		local f = coroutine.wrap(function(a)
			local b = coroutine.yield(a + 1)
			record(tostring(b))
		end)
		record(tostring(f(1)))
		f(5)

		local g = coroutine.wrap(function() error("inner") end)
		local ok, err = pcall(g)
		record(tostring(ok))
	`)))
	o, err := sch.Advance()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o, scheduler.Finished)
	test.ExpectEquality(t, e.record(), "2,5,false")
}

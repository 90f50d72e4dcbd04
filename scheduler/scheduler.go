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

package scheduler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal errors.
const (
	CompileError     = "compile: %v"
	RuntimeError     = "runtime: %v"
	PrepareError     = "prepare: %v"
	NestedSuspension = "cannot request a frame boundary from here"
	WatchdogKill     = "killed by user request"
)

// State of the script.
type State int

// List of valid State values.
const (
	Unloaded State = iota
	Runnable
	Suspended
	Terminated
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Runnable:
		return "runnable"
	case Suspended:
		return "suspended"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Outcome of a call to Advance().
type Outcome int

// List of valid Outcome values.
const (
	// there was no script to advance
	Idle Outcome = iota

	// the script asked for a frame boundary
	Waiting

	// the script returned from its main body
	Finished

	// the script yielded without asking for a frame boundary. this is
	// treated as the end of the script
	Abandoned

	// the script raised an error or was killed by the watchdog
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	case Finished:
		return "finished"
	case Abandoned:
		return "abandoned"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal returns true if the outcome means the script has ended.
func (o Outcome) Terminal() bool {
	return o == Finished || o == Abandoned || o == Failed
}

// Environment prepares a new Lua state before a script is compiled. This is
// where the script API is registered.
type Environment interface {
	Prepare(L *lua.LState) error
}

// Options for the scheduler.
type Options struct {
	// budget given to the script at the start of every frame and callback
	Budget int

	// number of instructions per unit of budget
	Interval int

	// whether the watchdog is active
	Watchdog bool

	// asked whether to kill a script that has run out of budget
	Decide Decider
}

// DefaultOptions are the values used if no others are given.
var DefaultOptions = Options{
	Budget:   1000,
	Interval: 10000,
	Watchdog: true,
}

// Scheduler runs a single script.
type Scheduler struct {
	env  Environment
	opts Options

	name   string
	source []byte

	L  *lua.LState
	co *lua.LState
	fn *lua.LFunction
	wd *watchdog

	state State

	// the script has asked for a frame boundary
	waiting bool

	// Advance() is in progress
	resuming bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(env Environment, opts Options) *Scheduler {
	return &Scheduler{
		env:  env,
		opts: opts,
	}
}

// SetOptions changes the options. The new options take effect the next time
// a script is loaded.
func (s *Scheduler) SetOptions(opts Options) {
	s.opts = opts
}

// State returns the state of the script.
func (s *Scheduler) State() State {
	return s.state
}

// Name returns the name of the script most recently loaded successfully.
func (s *Scheduler) Name() string {
	return s.name
}

// Source returns the source of the script most recently loaded
// successfully.
func (s *Scheduler) Source() []byte {
	return s.source
}

// Active returns true if the script is Runnable or Suspended.
func (s *Scheduler) Active() bool {
	return s.state == Runnable || s.state == Suspended
}

// Resuming returns true while Advance() is running the script.
func (s *Scheduler) Resuming() bool {
	return s.resuming
}

// Killed returns true if the watchdog has killed the script.
func (s *Scheduler) Killed() bool {
	return s.wd != nil && s.wd.killed
}

// Lua returns the main Lua state of the script. Returns nil if no script has
// been loaded or if the script has terminated.
func (s *Scheduler) Lua() *lua.LState {
	return s.L
}

// Load compiles a script and makes it ready to run. The script does not start
// running until the next call to Advance().
//
// Any previous script is abandoned immediately. None of its callbacks are
// run. If the new script can not be compiled the previous script is left
// running and an error is returned.
func (s *Scheduler) Load(name string, source []byte) error {
	if s.resuming {
		return curated.Errorf(NestedSuspension)
	}

	L := lua.NewState()

	if s.env != nil {
		if err := s.env.Prepare(L); err != nil {
			L.Close()
			return curated.Errorf(PrepareError, err)
		}
	}

	fn, err := L.Load(strings.NewReader(string(source)), filepath.Base(name))
	if err != nil {
		L.Close()
		return curated.Errorf(CompileError, err)
	}

	wd := newWatchdog(s.opts.Budget, s.opts.Interval, s.opts.Watchdog, s.opts.Decide)
	if err := guardCoroutines(L, wd); err != nil {
		L.Close()
		return curated.Errorf(PrepareError, err)
	}

	co, _ := L.NewThread()
	L.SetContext(wd)
	co.SetContext(wd)

	s.close()

	s.name = name
	s.source = source
	s.L = L
	s.co = co
	s.fn = fn
	s.wd = wd
	s.state = Runnable
	s.waiting = false

	logger.Logf(logger.Allow, "scheduler", "loaded %s", name)

	return nil
}

// close the Lua state of the current script.
func (s *Scheduler) close() {
	if s.L != nil {
		s.L.Close()
	}
	s.L = nil
	s.co = nil
	s.fn = nil
}

// Terminate the script. The Lua state is closed and no more callbacks can be
// run. Calling Terminate() while Advance() is running has no effect.
func (s *Scheduler) Terminate() {
	if s.resuming || s.state == Unloaded {
		return
	}
	if s.L == nil && s.state == Terminated {
		return
	}
	s.close()
	s.state = Terminated
	logger.Logf(logger.Allow, "scheduler", "terminated %s", s.name)
}

// Advance the script by one frame. This should be called once per frame by
// the host.
//
// The watchdog budget is reset and the script is resumed. The script runs
// until it asks for a frame boundary or until it ends. The returned error is
// only non-nil if the outcome is Failed.
//
// If the outcome is terminal the scheduler moves to the Terminated state. The
// Lua state is not closed until Terminate() is called, so that the caller can
// tidy up first.
func (s *Scheduler) Advance() (Outcome, error) {
	if !s.Active() || s.resuming || s.co == nil {
		return Idle, nil
	}

	s.wd.reset()
	s.waiting = false
	s.state = Runnable
	s.resuming = true

	rs, err, _ := s.L.Resume(s.co, s.fn)

	s.resuming = false

	switch rs {
	case lua.ResumeYield:
		if s.waiting {
			s.state = Suspended
			return Waiting, nil
		}
		s.state = Terminated
		return Abandoned, nil

	case lua.ResumeOK:
		s.state = Terminated
		return Finished, nil
	}

	s.state = Terminated
	if s.wd.killed {
		return Failed, curated.Errorf(RuntimeError, curated.Errorf(WatchdogKill))
	}
	return Failed, curated.Errorf(RuntimeError, err)
}

// CanSuspend returns true if the Lua state is allowed to ask for a frame
// boundary. Only the main body of the script is allowed to do so, and only
// once per frame.
func (s *Scheduler) CanSuspend(L *lua.LState) bool {
	return s.resuming && !s.waiting && L == s.co
}

// FrameBoundary is the body of a Lua function that asks for a frame
// boundary. A Lua error is raised if the request comes from a callback, from
// a coroutine created by the script, or if a frame boundary has already been
// requested.
func (s *Scheduler) FrameBoundary(L *lua.LState) int {
	if !s.CanSuspend(L) {
		L.RaiseError(NestedSuspension)
		return 0
	}
	s.waiting = true
	return L.Yield()
}

// Suspend asks for a frame boundary if one is allowed. If it isn't allowed
// nothing happens and the Lua function returns immediately.
func (s *Scheduler) Suspend(L *lua.LState) int {
	if !s.CanSuspend(L) {
		return 0
	}
	s.waiting = true
	return L.Yield()
}

// Call a Lua function with a fresh watchdog budget. Errors raised by the
// function are returned. Nothing happens if there is no active script.
func (s *Scheduler) Call(fn *lua.LFunction, args ...lua.LValue) error {
	if !s.Active() || s.L == nil || fn == nil {
		return nil
	}

	s.wd.reset()

	err := s.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)

	if s.wd.killed {
		return curated.Errorf(RuntimeError, curated.Errorf(WatchdogKill))
	}
	if err != nil {
		return curated.Errorf(RuntimeError, err)
	}

	return nil
}

// Consume units from the watchdog budget. Used by expensive functions.
func (s *Scheduler) Consume(units int) {
	if s.wd != nil {
		s.wd.consume(units)
	}
}

func (s *Scheduler) String() string {
	if s.name == "" {
		return s.state.String()
	}
	return fmt.Sprintf("%s (%s)", s.name, s.state)
}

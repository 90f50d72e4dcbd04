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
package scripting

import (
	"github.com/jetsetilly/emuscript/callbacks"
	"github.com/jetsetilly/emuscript/host"
	lua "github.com/yuin/gopher-lua"
)

func (s *Session) emuLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"speedmode":      s.emuSpeedMode,
		"frameadvance":   s.emuFrameAdvance,
		"pause":          s.emuPause,
		"unpause":        s.emuUnpause,
		"framecount":     s.movieFrameCount,
		"lagcount":       s.emuLagCount,
		"lagged":         s.emuLagged,
		"registerbefore": s.registerHook(callbacks.BeforeEmulation),
		"registerafter":  s.registerHook(callbacks.AfterEmulation),
		"registerexit":   s.registerHook(callbacks.Exit),
		"message":        s.emuMessage,
	}
}

// emu.speedmode(string mode)
func (s *Session) emuSpeedMode(L *lua.LState) int {
	mode := L.CheckString(1)
	m, ok := host.ParseSpeedMode(mode)
	if !ok {
		L.RaiseError("invalid mode %s to emu.speedmode", mode)
		return 0
	}
	s.speed = m
	return 0
}

// emu.frameadvance()
func (s *Session) emuFrameAdvance(L *lua.LState) int {
	return s.sched.FrameBoundary(L)
}

// emu.pause()
//
// The script waits for the next frame boundary unless it is already waiting
// for one.
func (s *Session) emuPause(L *lua.LState) int {
	s.host.SetPaused(true)
	s.speed = host.SpeedNormal
	return s.sched.Suspend(L)
}

// emu.unpause()
func (s *Session) emuUnpause(L *lua.LState) int {
	s.host.SetPaused(false)
	return s.sched.Suspend(L)
}

// emu.lagcount()
func (s *Session) emuLagCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.LagCount()))
	return 1
}

// emu.lagged()
func (s *Session) emuLagged(L *lua.LState) int {
	L.Push(lua.LBool(s.host.Lagged()))
	return 1
}

// emu.message(string msg)
func (s *Session) emuMessage(L *lua.LState) int {
	s.host.DisplayMessage(L.CheckString(1))
	return 0
}

// registerHook creates the Lua function for registering a lifecycle hook. The
// previously registered function is returned to the script.
func (s *Session) registerHook(h callbacks.Hook) lua.LGFunction {
	return func(L *lua.LState) int {
		pushOptional(L, s.hooks.Register(h, optFunction(L, 1)))
		return 1
	}
}

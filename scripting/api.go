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
	"image/color"

	"github.com/jetsetilly/emuscript/overlay/colour"
	lua "github.com/yuin/gopher-lua"
)

// library creates a table of functions and sets it as a global under each of
// the names.
func library(L *lua.LState, funcs map[string]lua.LGFunction, names ...string) *lua.LTable {
	t := L.NewTable()
	L.SetFuncs(t, funcs)
	for _, n := range names {
		L.SetGlobal(n, t)
	}
	return t
}

// Prepare implements the scheduler.Environment interface. It is called for
// every new Lua state and registers the script API.
func (s *Session) Prepare(L *lua.LState) error {
	library(L, s.emuLibrary(), "emu", "pcsx")
	library(L, s.memoryLibrary(), "memory")
	library(L, s.joypadLibrary(), "joypad")
	library(L, s.savestateLibrary(L), "savestate")
	library(L, s.movieLibrary(), "movie")
	library(L, s.guiLibrary(), "gui")
	library(L, s.inputLibrary(), "input")
	for n, f := range bitFunctions {
		L.SetGlobal(n, L.NewFunction(f))
	}
	return nil
}

// checkAddress returns the argument as an address. Negative numbers wrap.
func checkAddress(L *lua.LState, n int) uint32 {
	return uint32(L.CheckInt64(n))
}

// literal returns the argument as a colour literal.
func literal(L *lua.LState, n int) colour.Literal {
	switch v := L.Get(n).(type) {
	case lua.LString:
		return colour.FromString(string(v))
	case lua.LNumber:
		return colour.FromNumber(uint32(int64(v)))
	}
	return colour.None
}

// checkColour resolves the argument to a colour. A colour that can not be
// resolved raises an error in the script.
func (s *Session) checkColour(L *lua.LState, n int) color.NRGBA {
	c, err := s.colours.Resolve(literal(L, n))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return c
}

// optColour resolves the argument to a colour or uses the default if it can
// not be resolved. The default is in RRGGBBAA order.
func (s *Session) optColour(L *lua.LState, n int, def uint32) color.NRGBA {
	return s.colours.ResolveDefault(literal(L, n), def)
}

// pushOptional pushes the function or nil.
func pushOptional(L *lua.LState, fn *lua.LFunction) {
	if fn == nil {
		L.Push(lua.LNil)
		return
	}
	L.Push(fn)
}

// optFunction returns the function at the argument or nil if the argument is
// nil. Any other type raises an error in the script.
func optFunction(L *lua.LState, n int) *lua.LFunction {
	if L.Get(n) == lua.LNil {
		return nil
	}
	return L.CheckFunction(n)
}

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
	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/joypad"
	lua "github.com/yuin/gopher-lua"
)

func (s *Session) joypadLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"get":   s.joypadGet,
		"set":   s.joypadSet,
		"read":  s.joypadGet,
		"write": s.joypadSet,
	}
}

func checkPort(L *lua.LState, n int) int {
	port := L.CheckInt(n)
	if port < 1 || port > joypad.NumPorts {
		L.RaiseError("%v", curated.Errorf(joypad.InvalidPort, joypad.NumPorts, port))
	}
	return port
}

// joypad.get(int port)
//
// Returns a table of the buttons pressed on the physical controller and the
// buttons set by joypad.set() for the next frame. Pressed buttons have the
// value 1.
func (s *Session) joypadGet(L *lua.LState) int {
	port := checkPort(L, 1)
	mask := s.host.ReadPad(port) | s.pads.Pending(port)

	t := L.NewTable()
	for _, n := range joypad.Names(mask) {
		t.RawSetString(n, lua.LNumber(1))
	}
	L.Push(t)
	return 1
}

// joypad.set(int port, table buttons)
//
// The buttons are pressed for the next frame. Buttons that are missing from
// the table or that have the value nil or false are released.
func (s *Session) joypadSet(L *lua.LState) int {
	port := checkPort(L, 1)
	t := L.CheckTable(2)

	var mask uint16
	for i, n := range joypad.Buttons {
		if lua.LVAsBool(t.RawGetString(n)) {
			mask |= 1 << i
		}
	}

	if err := s.pads.Set(port, mask); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

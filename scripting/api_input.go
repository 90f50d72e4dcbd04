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
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/notifications"
	lua "github.com/yuin/gopher-lua"
)

func (s *Session) inputLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"get":   s.inputGet,
		"read":  s.inputGet,
		"popup": s.inputPopup,
	}
}

// input.get()
//
// Returns a table of the keys held on the host keyboard, each with the value
// true, and the mouse position in the fields xmouse and ymouse. The table is
// empty if the host has no keyboard.
func (s *Session) inputGet(L *lua.LState) int {
	t := L.NewTable()

	if kb, ok := s.host.(host.Keyboard); ok {
		for _, k := range kb.KeysHeld() {
			t.RawSetString(k, lua.LTrue)
		}
		x, y := kb.Mouse()
		t.RawSetString("xmouse", lua.LNumber(x))
		t.RawSetString("ymouse", lua.LNumber(y))
	}

	L.Push(t)
	return 1
}

// input.popup(string msg, string type = "yesno", string icon = "question")
func (s *Session) inputPopup(L *lua.LState) int {
	return s.doPopup(L, notifications.ButtonsYesNo, notifications.IconQuestion)
}

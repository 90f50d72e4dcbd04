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
	"github.com/jetsetilly/emuscript/savestate"
	lua "github.com/yuin/gopher-lua"
)

// the name of the metatable for savestate objects.
const savestateType = "savestate"

// the cost of saving or loading a state in watchdog budget units.
const savestateCost = 1

func (s *Session) savestateLibrary(L *lua.LState) map[string]lua.LGFunction {
	methods := map[string]lua.LGFunction{
		"save":  s.savestateSave,
		"load":  s.savestateLoad,
		"close": s.savestateClose,
	}

	mt := L.NewTypeMetatable(savestateType)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(checkSavestate(L, 1).String()))
		return 1
	}))
	L.SetField(mt, "__metatable", lua.LString(savestateType))

	return map[string]lua.LGFunction{
		"create": s.savestateCreate,
		"save":   s.savestateSave,
		"load":   s.savestateLoad,
		"close":  s.savestateClose,
	}
}

func checkSavestate(L *lua.LState, n int) *savestate.Handle {
	ud := L.CheckUserData(n)
	if h, ok := ud.Value.(*savestate.Handle); ok {
		return h
	}
	L.ArgError(n, "savestate object expected")
	return nil
}

// savestate.create(int slot = nil)
//
// Slots are numbered from 1. If no slot is given the savestate is anonymous
// and exists until it is closed or the script ends.
func (s *Session) savestateCreate(L *lua.LState) int {
	slot := savestate.Anonymous
	if L.Get(1) != lua.LNil {
		slot = L.CheckInt(1)
		if slot < 1 || slot > savestate.Slots {
			L.RaiseError("%v", curated.Errorf(savestate.InvalidSlot, savestate.Slots, slot))
			return 0
		}
	}

	h, err := s.states.Create(slot)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	ud := L.NewUserData()
	ud.Value = h
	L.SetMetatable(ud, L.GetTypeMetatable(savestateType))
	L.Push(ud)
	return 1
}

// savestate.save(object state)
func (s *Session) savestateSave(L *lua.LState) int {
	h := checkSavestate(L, 1)
	s.sched.Consume(savestateCost)
	if err := s.states.Save(h); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// savestate.load(object state)
func (s *Session) savestateLoad(L *lua.LState) int {
	h := checkSavestate(L, 1)
	s.sched.Consume(savestateCost)
	if err := s.states.Load(h); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// savestate.close(object state)
//
// The file of an anonymous savestate is deleted. The object can not be used
// after it is closed.
func (s *Session) savestateClose(L *lua.LState) int {
	s.states.Reclaim(checkSavestate(L, 1))
	return 0
}

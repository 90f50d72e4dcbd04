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
	lua "github.com/yuin/gopher-lua"
)

// coroutine.wrap() written in terms of coroutine.create(), so that the
// watchdog can be given to every coroutine.
const wrap = `
local create, resume, unpack = coroutine.create, coroutine.resume, unpack
coroutine.wrap = function(f)
	local co = create(f)
	return function(...)
		local r = {resume(co, ...)}
		if not r[1] then
			error(r[2], 2)
		end
		return unpack(r, 2, table.maxn(r))
	end
end
`

// guardCoroutines replaces coroutine.create() and coroutine.wrap() so that the
// watchdog counts the instructions of coroutines created by the script.
func guardCoroutines(L *lua.LState, wd *watchdog) error {
	tbl, ok := L.GetGlobal(lua.CoroutineLibName).(*lua.LTable)
	if !ok {
		return nil
	}
	create, ok := L.GetField(tbl, "create").(*lua.LFunction)
	if !ok {
		return nil
	}

	L.SetField(tbl, "create", L.NewFunction(func(L *lua.LState) int {
		L.Push(create)
		L.Push(L.Get(1))
		L.Call(1, 1)
		if th, ok := L.Get(-1).(*lua.LState); ok {
			th.SetContext(wd)
		}
		return 1
	}))

	return L.DoString(wrap)
}

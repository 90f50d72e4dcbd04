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
	lua "github.com/yuin/gopher-lua"
)

func (s *Session) movieLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"framecount":       s.movieFrameCount,
		"mode":             s.movieMode,
		"rerecordcounting": s.movieRerecordCounting,
		"stop":             s.movieStop,
		"close":            s.movieStop,
	}
}

func (s *Session) movieFrameCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.FrameCount()))
	return 1
}

// movie.mode()
//
// Returns "record", "playback" or nil.
func (s *Session) movieMode(L *lua.LState) int {
	m := s.host.MovieMode()
	if m == host.MovieInactive {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(m.String()))
	return 1
}

// movie.rerecordcounting(bool skip)
func (s *Session) movieRerecordCounting(L *lua.LState) int {
	if L.GetTop() == 0 {
		L.RaiseError("no parameters specified")
		return 0
	}
	s.skipRerecords = lua.LVAsBool(L.Get(1))
	return 0
}

// movie.stop()
func (s *Session) movieStop(L *lua.LState) int {
	if s.host.MovieMode() == host.MovieInactive {
		L.RaiseError("no movie")
		return 0
	}
	if err := s.host.StopMovie(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

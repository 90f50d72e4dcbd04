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
	"github.com/jetsetilly/emuscript/memwatch"
	lua "github.com/yuin/gopher-lua"
)

func (s *Session) memoryLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"readbyte":        s.memoryReadByte,
		"readbytesigned":  s.memoryReadByteSigned,
		"readword":        s.memoryReadWord,
		"readwordsigned":  s.memoryReadWordSigned,
		"readdword":       s.memoryReadDWord,
		"readdwordsigned": s.memoryReadDWordSigned,
		"readbyterange":   s.memoryReadByteRange,
		"writebyte":       s.memoryWriteByte,
		"writeword":       s.memoryWriteWord,
		"writedword":      s.memoryWriteDWord,
		"registerwrite":   s.memoryRegisterWrite,

		"readbyteunsigned":  s.memoryReadByte,
		"readwordunsigned":  s.memoryReadWord,
		"readdwordunsigned": s.memoryReadDWord,
		"readshort":         s.memoryReadWord,
		"readshortunsigned": s.memoryReadWord,
		"readshortsigned":   s.memoryReadWordSigned,
		"readlong":          s.memoryReadDWord,
		"readlongunsigned":  s.memoryReadDWord,
		"readlongsigned":    s.memoryReadDWordSigned,
		"writeshort":        s.memoryWriteWord,
		"writelong":         s.memoryWriteDWord,
		"register":          s.memoryRegisterWrite,
	}
}

func (s *Session) memoryReadByte(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.Read8(checkAddress(L, 1))))
	return 1
}

func (s *Session) memoryReadByteSigned(L *lua.LState) int {
	L.Push(lua.LNumber(int8(s.host.Read8(checkAddress(L, 1)))))
	return 1
}

func (s *Session) memoryReadWord(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.Read16(checkAddress(L, 1))))
	return 1
}

func (s *Session) memoryReadWordSigned(L *lua.LState) int {
	L.Push(lua.LNumber(int16(s.host.Read16(checkAddress(L, 1)))))
	return 1
}

func (s *Session) memoryReadDWord(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.Read32(checkAddress(L, 1))))
	return 1
}

func (s *Session) memoryReadDWordSigned(L *lua.LState) int {
	L.Push(lua.LNumber(int32(s.host.Read32(checkAddress(L, 1)))))
	return 1
}

// memory.readbyterange(int address, int length)
//
// A negative length reads the bytes before the address.
func (s *Session) memoryReadByteRange(L *lua.LState) int {
	addr := checkAddress(L, 1)
	length := L.CheckInt(2)
	if length < 0 {
		addr += uint32(length)
		length = -length
	}

	t := L.CreateTable(length, 0)
	for i := range length {
		t.RawSetInt(i+1, lua.LNumber(s.host.Read8(addr+uint32(i))))
	}
	L.Push(t)
	return 1
}

func (s *Session) memoryWriteByte(L *lua.LState) int {
	s.host.Write8(checkAddress(L, 1), uint8(L.CheckInt64(2)))
	return 0
}

func (s *Session) memoryWriteWord(L *lua.LState) int {
	s.host.Write16(checkAddress(L, 1), uint16(L.CheckInt64(2)))
	return 0
}

func (s *Session) memoryWriteDWord(L *lua.LState) int {
	s.host.Write32(checkAddress(L, 1), uint32(L.CheckInt64(2)))
	return 0
}

// memory.registerwrite(int address, function func)
//
// The function is called with no arguments after the byte at the address
// changes. A nil function removes the watch.
func (s *Session) memoryRegisterWrite(L *lua.LState) int {
	addr := checkAddress(L, 1)

	var fn *lua.LFunction
	switch v := L.Get(2).(type) {
	case *lua.LFunction:
		fn = v
	case *lua.LNilType:
	default:
		L.RaiseError("function or nil expected in arg 2 to memory.register")
		return 0
	}

	var cb memwatch.Callback
	if fn != nil {
		cb = func() error {
			return s.sched.Call(fn)
		}
	}

	if err := s.watches.Set(addr, cb); err != nil {
		if curated.Is(err, memwatch.OutOfWindow) {
			L.RaiseError("arg 1 should be between 0x0000 and %#x", s.watches.Window())
			return 0
		}
		L.RaiseError("%v", err)
	}

	return 0
}

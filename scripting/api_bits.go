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

import lua "github.com/yuin/gopher-lua"

// global functions for bit manipulation.
var bitFunctions = map[string]lua.LGFunction{
	"AND":   bitAND,
	"OR":    bitOR,
	"XOR":   bitXOR,
	"SHIFT": bitSHIFT,
	"BIT":   bitBIT,
}

// AND(int a, int b, ...)
func bitAND(L *lua.LState) int {
	r := ^int64(0)
	for i := 1; i <= L.GetTop(); i++ {
		r &= L.CheckInt64(i)
	}
	L.Push(lua.LNumber(r))
	return 1
}

// OR(int a, int b, ...)
func bitOR(L *lua.LState) int {
	var r int64
	for i := 1; i <= L.GetTop(); i++ {
		r |= L.CheckInt64(i)
	}
	L.Push(lua.LNumber(r))
	return 1
}

// XOR(int a, int b, ...)
func bitXOR(L *lua.LState) int {
	var r int64
	for i := 1; i <= L.GetTop(); i++ {
		r ^= L.CheckInt64(i)
	}
	L.Push(lua.LNumber(r))
	return 1
}

// SHIFT(int num, int shift)
//
// Positive shifts are to the right and negative shifts are to the left. The
// number is treated as a signed 32bit value.
func bitSHIFT(L *lua.LState) int {
	num := int32(L.CheckInt64(1))
	shift := L.CheckInt(2)
	if shift < 0 {
		num <<= -shift
	} else {
		num >>= shift
	}
	L.Push(lua.LNumber(num))
	return 1
}

// BIT(int n, ...)
//
// Returns a number with each of the numbered bits set.
func bitBIT(L *lua.LState) int {
	var r int64
	for i := 1; i <= L.GetTop(); i++ {
		b := L.CheckInt(i)
		if b < 0 || b > 63 {
			L.ArgError(i, "bit number should be between 0 and 63")
		}
		r |= 1 << b
	}
	L.Push(lua.LNumber(r))
	return 1
}

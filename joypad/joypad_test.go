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

package joypad_test

import (
	"testing"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/joypad"
	"github.com/jetsetilly/emuscript/test"
)

func TestButtonOrder(t *testing.T) {
	test.ExpectEquality(t, joypad.Select, 1)
	test.ExpectEquality(t, joypad.Up, 1<<4)
	test.ExpectEquality(t, joypad.Cross, 1<<14)
	test.ExpectEquality(t, joypad.Square, 1<<15)

	b, ok := joypad.Lookup("X")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, joypad.Cross)

	_, ok = joypad.Lookup("turbo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, joypad.MaskString(uint16(joypad.Up|joypad.Circle)), "up+circle")
	test.ExpectEquality(t, joypad.MaskString(0), "none")
}

func TestConsume(t *testing.T) {
	var a joypad.Arbiter

	// not owned
	_, ok := a.Consume(1)
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, a.Set(1, uint16(joypad.Up)))
	test.ExpectSuccess(t, a.Owned(1))
	test.ExpectFailure(t, a.Owned(2))
	test.ExpectEquality(t, a.Pending(1), uint16(joypad.Up))

	m, ok := a.Consume(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, uint16(joypad.Up))

	// second consume without a new set is not owned
	_, ok = a.Consume(1)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, a.Owned(1))
}

func TestOverwrite(t *testing.T) {
	var a joypad.Arbiter

	test.DemandSuccess(t, a.Set(2, uint16(joypad.Up|joypad.Left)))
	test.DemandSuccess(t, a.Set(2, uint16(joypad.Start)))

	m, ok := a.Consume(2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, uint16(joypad.Start))

	// an empty mask still owns the port
	test.DemandSuccess(t, a.Set(2, 0))
	test.ExpectEquality(t, a.Poll(2, 0xffff), 0)
	test.ExpectEquality(t, a.Poll(2, 0xffff), 0xffff)
}

func TestInvalidPort(t *testing.T) {
	var a joypad.Arbiter
	err := a.Set(0, 1)
	test.ExpectSuccess(t, curated.Is(err, joypad.InvalidPort))
	test.ExpectSuccess(t, curated.Is(a.Set(3, 1), joypad.InvalidPort))
	test.ExpectFailure(t, a.Owned(3))
	_, ok := a.Consume(-1)
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	var a joypad.Arbiter
	test.DemandSuccess(t, a.Set(1, 1))
	test.DemandSuccess(t, a.Set(2, 2))
	test.ExpectEquality(t, a.String(), "1:select 2:unkn1")
	a.Reset()
	test.ExpectFailure(t, a.Owned(1))
	test.ExpectFailure(t, a.Owned(2))
	test.ExpectEquality(t, a.String(), "1:physical 2:physical")
}

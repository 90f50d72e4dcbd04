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

package random_test

import (
	"testing"

	"github.com/jetsetilly/emuscript/random"
	"github.com/jetsetilly/emuscript/test"
)

type frames struct {
	n int
}

func (f *frames) FrameCount() int {
	return f.n
}

func TestRandom(t *testing.T) {
	fa := &frames{n: 100}
	fb := &frames{n: 100}
	a := random.NewRandom(fa)
	b := random.NewRandom(fb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	// requests in a new frame restart the sequence
	fa.n++
	fb.n++
	test.ExpectEquality(t, a.Uint32(), b.Uint32())
}

func TestRandomSequence(t *testing.T) {
	f := &frames{n: 5}
	a := random.NewRandom(f)
	a.ZeroSeed = true

	// two requests in the same frame should not produce the same sequence
	x := a.Uint32()
	y := a.Uint32()
	test.ExpectInequality(t, x, y)
}

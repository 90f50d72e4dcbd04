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

package overlay_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/overlay"
	"github.com/jetsetilly/emuscript/test"
)

func TestText(t *testing.T) {
	cnv := overlay.NewCanvas(host.VideoStandard)
	cnv.Text(10, 20, "!", red, clear)

	l := lit(cnv)
	test.ExpectEquality(t, len(l), 4)
	for _, y := range []int{1, 2, 3, 5} {
		test.ExpectEquality(t, l[image.Pt(11, 20+y)], red, y)
	}
}

func TestTextOutline(t *testing.T) {
	cnv := overlay.NewCanvas(host.VideoStandard)
	cnv.Text(10, 20, ".", red, blue)

	// the full stop is a single pixel. the outline surrounds it
	l := lit(cnv)
	test.ExpectEquality(t, len(l), 9)
	test.ExpectEquality(t, l[image.Pt(11, 25)], red)
	for y := 24; y <= 26; y++ {
		for x := 10; x <= 12; x++ {
			if x == 11 && y == 25 {
				continue
			}
			test.ExpectEquality(t, l[image.Pt(x, y)], blue, x, y)
		}
	}
}

func TestTextLayout(t *testing.T) {
	cnv := overlay.NewCanvas(host.VideoStandard)

	// tab moves to the next tab stop, which is 8 characters
	cnv.Text(0, 0, "\t.", red, clear)
	test.ExpectEquality(t, cnv.At(33, 5), red)

	// newline returns to the original x position
	cnv.Text(100, 0, "..\n.", red, clear)
	test.ExpectEquality(t, cnv.At(101, 5), red)
	test.ExpectEquality(t, cnv.At(105, 5), red)
	test.ExpectEquality(t, cnv.At(101, 13), red)

	// characters without a glyph do not advance
	cnv = overlay.NewCanvas(host.VideoStandard)
	cnv.Text(0, 0, "\x01.", red, clear)
	test.ExpectEquality(t, cnv.At(1, 5), red)

	// fully transparent text draws nothing
	cnv = overlay.NewCanvas(host.VideoStandard)
	cnv.Text(0, 0, "hello", clear, clear)
	test.ExpectEquality(t, len(lit(cnv)), 0)
}

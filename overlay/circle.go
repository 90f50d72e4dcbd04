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

package overlay

import "image/color"

// the circle functions use the midpoint circle algorithm. the invariant of
// the loop is:
//
//	f == x*x + y*y - r*r + 2*x - y + 1
//
// and no pixel is plotted more than once.

// Circle draws the outline of a circle.
func (cnv *Canvas) Circle(x0, y0, r int, c color.NRGBA) {
	cnv.prepare()

	r = max(r, -r)
	if r == 0 {
		return
	}
	if r == 1 {
		cnv.plot(x0, y0, c)
		return
	}

	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x := 0
	y := r

	cnv.plot(x0, y0+r, c)
	cnv.plot(x0, y0-r, c)
	cnv.plot(x0+r, y0, c)
	cnv.plot(x0-r, y0, c)

	for {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		if x > y {
			return
		}

		cnv.plot(x0+x, y0+y, c)
		cnv.plot(x0-x, y0+y, c)
		cnv.plot(x0+x, y0-y, c)
		cnv.plot(x0-x, y0-y, c)

		// on the diagonal the reflected points are the same points
		if x == y {
			return
		}

		cnv.plot(x0+y, y0+x, c)
		cnv.plot(x0-y, y0+x, c)
		cnv.plot(x0+y, y0-x, c)
		cnv.plot(x0-y, y0-x, c)
	}
}

// FillCircle draws a solid circle.
func (cnv *Canvas) FillCircle(x0, y0, r int, c color.NRGBA) {
	cnv.prepare()

	r = max(r, -r)
	if r == 0 {
		return
	}
	if r == 1 {
		cnv.plot(x0, y0, c)
		return
	}

	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x := 0
	y := r

	cnv.line(x0, y0-r, x0, y0+r, c)

	for {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		if x > y {
			return
		}

		cnv.line(x0+x, y0-y, x0+x, y0+y, c)
		cnv.line(x0-x, y0-y, x0-x, y0+y, c)

		if x == y {
			return
		}

		// the outer spans are drawn only at their widest, which is the
		// step before y decreases
		if f >= 0 {
			cnv.line(x0+y, y0-x, x0+y, y0+x, c)
			cnv.line(x0-y, y0-x, x0-y, y0+x, c)
		}
	}
}

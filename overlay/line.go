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

// line plots a line from x1, y1 to x2, y2. every pixel of the line is plotted
// exactly once and the same pixels are plotted whichever end the line starts
// from. lines are allowed to run outside the overlay.
func (cnv *Canvas) line(x1, y1, x2, y2 int, c color.NRGBA) {
	dx := x1 - x2
	dy := y1 - y2

	if dx == 0 && dy == 0 {
		cnv.plot(x1, y1, c)
		return
	}

	var swappedx, swappedy bool
	if dx < 0 {
		dx = -dx
		swappedx = true
	}
	if dy < 0 {
		dy = -dy
		swappedy = true
	}

	deltaX := dx << 1
	deltaY := dy << 1

	ix := -1
	if x1 > x2 {
		ix = 1
	}
	iy := -1
	if y1 > y2 {
		iy = 1
	}

	cnv.plot(x2, y2, c)

	// the line is traced from the second point towards the first. when the
	// error term is exactly zero an extra pixel is plotted on one side or the
	// other depending on the original direction of the line. this keeps the
	// line four-connected and symmetrical
	if deltaX >= deltaY {
		e := deltaY - (deltaX >> 1)
		for x2 != x1 {
			if e == 0 && !swappedx {
				cnv.plot(x2+ix, y2, c)
			}
			if e > 0 || (e == 0 && ix > 0) {
				y2 += iy
				e -= deltaX
			}
			x2 += ix
			cnv.plot(x2, y2, c)
			if e == 0 && swappedx {
				cnv.plot(x2, y2+iy, c)
			}
			e += deltaY
		}
		return
	}

	e := deltaX - (deltaY >> 1)
	for y2 != y1 {
		if e == 0 && !swappedy {
			cnv.plot(x2, y2+iy, c)
		}
		if e > 0 || (e == 0 && iy > 0) {
			x2 += ix
			e -= deltaY
		}
		y2 += iy
		cnv.plot(x2, y2, c)
		if e == 0 && swappedy {
			cnv.plot(x2+ix, y2, c)
		}
		e += deltaX
	}
}

// Line draws a line between two points, inclusive of both end points.
func (cnv *Canvas) Line(x1, y1, x2, y2 int, c color.NRGBA) {
	cnv.prepare()
	cnv.line(x1, y1, x2, y2, c)
}

// order and clamp the corners of a box. the result may lie one pixel outside
// the overlay on any side so that the edges of a partially visible box are
// not drawn at the overlay boundary.
func (cnv *Canvas) boxCorners(x1, y1, x2, y2 int) (int, int, int, int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1 = max(x1, -1)
	y1 = max(y1, -1)
	x2 = min(x2, cnv.Width())
	y2 = min(y2, cnv.Height())
	return x1, y1, x2, y2
}

// Box draws the outline of a rectangle. The corners are drawn once only.
func (cnv *Canvas) Box(x1, y1, x2, y2 int, c color.NRGBA) {
	cnv.prepare()

	x1, y1, x2, y2 = cnv.boxCorners(x1, y1, x2, y2)

	cnv.line(x1, y1, x2, y1, c)
	if y2 != y1 {
		cnv.line(x1, y2, x2, y2, c)
	}
	if y2-y1 > 1 {
		cnv.line(x1, y1+1, x1, y2-1, c)
		if x2 != x1 {
			cnv.line(x2, y1+1, x2, y2-1, c)
		}
	}
}

// FillBox draws a solid rectangle.
func (cnv *Canvas) FillBox(x1, y1, x2, y2 int, c color.NRGBA) {
	cnv.prepare()

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, cnv.Width()-1)
	y2 = min(y2, cnv.Height()-1)

	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			cnv.plotFast(x, y, c)
		}
	}
}

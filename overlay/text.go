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

// Text draws a string with the built-in 4x7 font. A newline returns to the
// original x position on the next line and a tab advances to the next tab
// stop. Characters without a glyph are skipped.
//
// If the outline colour is not fully transparent, unlit pixels that
// neighbour a lit pixel are drawn in the outline colour. The outline makes
// text legible over any background.
func (cnv *Canvas) Text(x, y int, s string, c color.NRGBA, outline color.NRGBA) {
	cnv.prepare()

	if c.A == 0 && outline.A == 0 {
		return
	}

	origX := x

	for i := 0; i < len(s) && y < cnv.Height(); i++ {
		ch := s[i]

		// text beyond the right edge is skipped until the next newline
		if x > cnv.Width() && ch != '\n' {
			continue
		}

		switch ch {
		case '\n':
			x = origX
			y += lineHeight
			continue
		case '\t':
			x += (tabStop - ((x-origX)/glyphWidth)%tabStop) * glyphWidth
			continue
		}

		g, ok := glyph(ch)
		if !ok {
			continue
		}
		cnv.glyph(x, y, g, c, outline)
		x += glyphWidth
	}
}

// glyph draws a single glyph. the outline region extends one pixel to the
// left and one pixel below the glyph cell.
func (cnv *Canvas) glyph(x, y int, g *[7]uint8, c color.NRGBA, outline color.NRGBA) {
	for gy := 0; gy <= glyphHeight; gy++ {
		for gx := -1; gx < glyphWidth; gx++ {
			if lit(g, gx, gy) {
				cnv.plot(x+gx, y+gy, c)
				continue
			}
			if outline.A == 0 {
				continue
			}
			if neighbour(g, gx, gy) {
				cnv.plot(x+gx, y+gy, outline)
			}
		}
	}
}

// neighbour returns true if any pixel in the 3x3 area around x, y is lit.
func neighbour(g *[7]uint8, x, y int) bool {
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if lit(g, nx, ny) {
				return true
			}
		}
	}
	return false
}

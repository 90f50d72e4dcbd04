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

// font is a 4x7 pixel font for the printable ASCII characters. each entry is
// one glyph, starting with the space character. each row of a glyph is a
// bitmask with the leftmost pixel in bit zero.
var font = [96][7]uint8{
	{0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0}, // space
	{0x0, 0x2, 0x2, 0x2, 0x0, 0x2, 0x0}, // !
	{0x0, 0x5, 0x5, 0x0, 0x0, 0x0, 0x0}, // "
	{0x0, 0x5, 0x7, 0x5, 0x7, 0x5, 0x0}, // #
	{0x0, 0x6, 0x3, 0x2, 0x6, 0x3, 0x0}, // $
	{0x0, 0x1, 0x4, 0x2, 0x1, 0x4, 0x0}, // %
	{0x0, 0x2, 0x5, 0x2, 0x5, 0x6, 0x0}, // &
	{0x0, 0x2, 0x2, 0x0, 0x0, 0x0, 0x0}, // '
	{0x0, 0x2, 0x1, 0x1, 0x1, 0x2, 0x0}, // (
	{0x0, 0x2, 0x4, 0x4, 0x4, 0x2, 0x0}, // )
	{0x0, 0x0, 0x2, 0x7, 0x2, 0x5, 0x0}, // *
	{0x0, 0x0, 0x2, 0x7, 0x2, 0x0, 0x0}, // +
	{0x0, 0x0, 0x0, 0x0, 0x2, 0x2, 0x1}, // ,
	{0x0, 0x0, 0x0, 0x7, 0x0, 0x0, 0x0}, // -
	{0x0, 0x0, 0x0, 0x0, 0x0, 0x2, 0x0}, // .
	{0x4, 0x4, 0x2, 0x2, 0x1, 0x1, 0x0}, // /
	{0x0, 0x2, 0x5, 0x5, 0x5, 0x2, 0x0}, // 0
	{0x0, 0x2, 0x3, 0x2, 0x2, 0x2, 0x0}, // 1
	{0x0, 0x3, 0x4, 0x2, 0x1, 0x7, 0x0}, // 2
	{0x0, 0x3, 0x4, 0x3, 0x4, 0x3, 0x0}, // 3
	{0x0, 0x2, 0x1, 0x5, 0x7, 0x4, 0x0}, // 4
	{0x0, 0x7, 0x1, 0x3, 0x4, 0x3, 0x0}, // 5
	{0x0, 0x2, 0x1, 0x3, 0x5, 0x2, 0x0}, // 6
	{0x0, 0x7, 0x4, 0x2, 0x2, 0x2, 0x0}, // 7
	{0x0, 0x2, 0x5, 0x2, 0x5, 0x2, 0x0}, // 8
	{0x0, 0x2, 0x5, 0x6, 0x4, 0x2, 0x0}, // 9
	{0x0, 0x0, 0x2, 0x0, 0x0, 0x2, 0x0}, // :
	{0x0, 0x0, 0x0, 0x2, 0x0, 0x2, 0x1}, // ;
	{0x0, 0x4, 0x2, 0x1, 0x2, 0x4, 0x0}, // <
	{0x0, 0x0, 0x7, 0x0, 0x7, 0x0, 0x0}, // =
	{0x0, 0x1, 0x2, 0x4, 0x2, 0x1, 0x0}, // >
	{0x0, 0x3, 0x4, 0x2, 0x0, 0x2, 0x0}, // ?
	{0x0, 0x2, 0x6, 0x5, 0x6, 0x0, 0x0}, // @
	{0x0, 0x2, 0x5, 0x7, 0x5, 0x5, 0x0}, // A
	{0x0, 0x3, 0x5, 0x3, 0x5, 0x3, 0x0}, // B
	{0x0, 0x6, 0x1, 0x1, 0x1, 0x6, 0x0}, // C
	{0x0, 0x3, 0x5, 0x5, 0x5, 0x3, 0x0}, // D
	{0x0, 0x7, 0x1, 0x3, 0x1, 0x7, 0x0}, // E
	{0x0, 0x7, 0x1, 0x3, 0x1, 0x1, 0x0}, // F
	{0x0, 0x6, 0x1, 0x5, 0x5, 0x6, 0x0}, // G
	{0x0, 0x5, 0x5, 0x7, 0x5, 0x5, 0x0}, // H
	{0x0, 0x2, 0x2, 0x2, 0x2, 0x2, 0x0}, // I
	{0x0, 0x4, 0x4, 0x4, 0x5, 0x2, 0x0}, // J
	{0x0, 0x5, 0x5, 0x3, 0x5, 0x5, 0x0}, // K
	{0x0, 0x1, 0x1, 0x1, 0x1, 0x7, 0x0}, // L
	{0x0, 0x5, 0x7, 0x5, 0x5, 0x5, 0x0}, // M
	{0x0, 0x3, 0x5, 0x5, 0x5, 0x5, 0x0}, // N
	{0x0, 0x7, 0x5, 0x5, 0x5, 0x7, 0x0}, // O
	{0x0, 0x3, 0x5, 0x3, 0x1, 0x1, 0x0}, // P
	{0x0, 0x7, 0x5, 0x5, 0x5, 0x7, 0x4}, // Q
	{0x0, 0x3, 0x5, 0x3, 0x5, 0x5, 0x0}, // R
	{0x0, 0x6, 0x1, 0x2, 0x4, 0x3, 0x0}, // S
	{0x0, 0x7, 0x2, 0x2, 0x2, 0x2, 0x0}, // T
	{0x0, 0x5, 0x5, 0x5, 0x5, 0x7, 0x0}, // U
	{0x0, 0x5, 0x5, 0x5, 0x2, 0x2, 0x0}, // V
	{0x0, 0x5, 0x5, 0x5, 0x7, 0x5, 0x0}, // W
	{0x0, 0x5, 0x5, 0x2, 0x5, 0x5, 0x0}, // X
	{0x0, 0x5, 0x5, 0x2, 0x2, 0x2, 0x0}, // Y
	{0x0, 0x7, 0x4, 0x2, 0x1, 0x7, 0x0}, // Z
	{0x0, 0x6, 0x2, 0x2, 0x2, 0x6, 0x0}, // [
	{0x0, 0x1, 0x2, 0x2, 0x4, 0x4, 0x0}, // backslash
	{0x0, 0x3, 0x2, 0x2, 0x2, 0x3, 0x0}, // ]
	{0x0, 0x2, 0x5, 0x0, 0x0, 0x0, 0x0}, // ^
	{0x0, 0x0, 0x0, 0x0, 0x0, 0x7, 0x0}, // _
	{0x0, 0x1, 0x2, 0x0, 0x0, 0x0, 0x0}, // `
	{0x0, 0x0, 0x6, 0x5, 0x5, 0x6, 0x0}, // a
	{0x0, 0x1, 0x1, 0x3, 0x5, 0x3, 0x0}, // b
	{0x0, 0x0, 0x6, 0x1, 0x1, 0x6, 0x0}, // c
	{0x0, 0x4, 0x4, 0x6, 0x5, 0x6, 0x0}, // d
	{0x0, 0x0, 0x6, 0x7, 0x1, 0x6, 0x0}, // e
	{0x0, 0x6, 0x1, 0x3, 0x1, 0x1, 0x0}, // f
	{0x0, 0x0, 0x6, 0x5, 0x6, 0x4, 0x3}, // g
	{0x0, 0x1, 0x1, 0x3, 0x5, 0x5, 0x0}, // h
	{0x0, 0x2, 0x0, 0x2, 0x2, 0x2, 0x0}, // i
	{0x0, 0x2, 0x0, 0x2, 0x2, 0x2, 0x1}, // j
	{0x0, 0x1, 0x1, 0x5, 0x3, 0x5, 0x0}, // k
	{0x0, 0x2, 0x2, 0x2, 0x2, 0x4, 0x0}, // l
	{0x0, 0x0, 0x5, 0x7, 0x5, 0x5, 0x0}, // m
	{0x0, 0x0, 0x3, 0x5, 0x5, 0x5, 0x0}, // n
	{0x0, 0x0, 0x2, 0x5, 0x5, 0x2, 0x0}, // o
	{0x0, 0x0, 0x2, 0x5, 0x3, 0x1, 0x1}, // p
	{0x0, 0x0, 0x2, 0x5, 0x6, 0x4, 0x4}, // q
	{0x0, 0x0, 0x5, 0x3, 0x1, 0x1, 0x0}, // r
	{0x0, 0x0, 0x6, 0x1, 0x6, 0x3, 0x0}, // s
	{0x0, 0x2, 0x7, 0x2, 0x2, 0x4, 0x0}, // t
	{0x0, 0x0, 0x5, 0x5, 0x5, 0x6, 0x0}, // u
	{0x0, 0x0, 0x5, 0x5, 0x5, 0x2, 0x0}, // v
	{0x0, 0x0, 0x5, 0x5, 0x7, 0x5, 0x0}, // w
	{0x0, 0x0, 0x5, 0x2, 0x5, 0x5, 0x0}, // x
	{0x0, 0x0, 0x5, 0x5, 0x2, 0x2, 0x1}, // y
	{0x0, 0x0, 0x7, 0x2, 0x1, 0x7, 0x0}, // z
	{0x0, 0x6, 0x2, 0x3, 0x2, 0x6, 0x0}, // {
	{0x0, 0x2, 0x2, 0x0, 0x2, 0x2, 0x0}, // |
	{0x0, 0x3, 0x2, 0x6, 0x2, 0x3, 0x0}, // }
	{0x0, 0x3, 0x4, 0x0, 0x0, 0x0, 0x0}, // ~
	{0x0, 0x0, 0x2, 0x5, 0x7, 0x0, 0x0}, // DEL
}

const (
	glyphWidth  = 4
	glyphHeight = 7

	// vertical distance between lines of text
	lineHeight = 8

	// tab stops are every tabStop characters
	tabStop = 8
)

// glyph returns the glyph for the character. the boolean is false if there is
// no glyph for the character.
func glyph(c byte) (*[7]uint8, bool) {
	if c < 32 || c >= 128 {
		return nil, false
	}
	return &font[c-32], true
}

// lit returns true if the pixel at x, y of the glyph is set. coordinates
// outside the glyph are never lit.
func lit(g *[7]uint8, x, y int) bool {
	if x < 0 || x >= glyphWidth || y < 0 || y >= glyphHeight {
		return false
	}
	return g[y]&(1<<x) != 0
}

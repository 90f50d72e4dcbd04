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
package window

import (
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/emuscript/joypad"
)

// the keyboard controls for the first controller.
var padKeys = map[ebiten.Key]joypad.Button{
	ebiten.KeyArrowUp:    joypad.Up,
	ebiten.KeyArrowDown:  joypad.Down,
	ebiten.KeyArrowLeft:  joypad.Left,
	ebiten.KeyArrowRight: joypad.Right,
	ebiten.KeyZ:          joypad.Cross,
	ebiten.KeyX:          joypad.Circle,
	ebiten.KeyA:          joypad.Square,
	ebiten.KeyS:          joypad.Triangle,
	ebiten.KeyQ:          joypad.L1,
	ebiten.KeyW:          joypad.R1,
	ebiten.KeyEnter:      joypad.Start,
	ebiten.KeyBackspace:  joypad.Select,
}

// padMask returns the button mask for the keys.
func padMask(keys []ebiten.Key) uint16 {
	var m uint16
	for _, k := range keys {
		m |= uint16(padKeys[k])
	}
	return m
}

// keyNames returns the names of the keys as they are given to scripts. The
// names are lower case and sorted.
func keyNames(keys []ebiten.Key) []string {
	n := make([]string, 0, len(keys))
	for _, k := range keys {
		n = append(n, strings.ToLower(k.String()))
	}
	slices.Sort(n)
	return slices.Compact(n)
}

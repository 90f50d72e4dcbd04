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

import (
	"encoding/binary"
	"image"
)

// mix one pixel of the overlay into a framebuffer pixel. the framebuffer
// alpha channel is not used or changed.
func mix(d []uint8, s []uint8) {
	a := int(s[3])
	switch a {
	case 0:
	case 255:
		d[0] = s[0]
		d[1] = s[1]
		d[2] = s[2]
	default:
		d[0] = uint8((int(d[0])*(255-a) + int(s[0])*a + 127) / 255)
		d[1] = uint8((int(d[1])*(255-a) + int(s[1])*a + 127) / 255)
		d[2] = uint8((int(d[2])*(255-a) + int(s[2])*a + 127) / 255)
	}
}

// composite the overlay onto the image. the overlay is not changed.
func (cnv *Canvas) composite(fb *image.RGBA) {
	r := fb.Rect.Intersect(cnv.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := cnv.img.PixOffset(r.Min.X, y)
		do := fb.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			mix(fb.Pix[do:do+4:do+4], cnv.img.Pix[so:so+4:so+4])
			so += 4
			do += 4
		}
	}
}

// Composite the overlay onto the framebuffer. The framebuffer should be the
// image about to be presented.
//
// Nothing happens if the overlay is clear or if compositing is disabled.
// Returns true if the overlay was composited.
func (cnv *Canvas) Composite(fb *image.RGBA) bool {
	if cnv.used == usageClear || !cnv.enabled {
		return false
	}
	cnv.used = usageSinceFrame
	cnv.composite(fb)
	return true
}

// View returns a copy of the framebuffer with any drawing in the overlay
// composited onto it. The usage state of the overlay is not changed.
func (cnv *Canvas) View(fb *image.RGBA) *image.RGBA {
	v := image.NewRGBA(fb.Rect)
	copy(v.Pix, fb.Pix)
	if cnv.used != usageClear && cnv.enabled {
		cnv.composite(v)
	}
	return v
}

// Snapshot returns the composited view of the framebuffer, as returned by
// View(), in the truecolor GD image format. The result can be given to
// OverlayImage().
func (cnv *Canvas) Snapshot(fb *image.RGBA) []byte {
	v := cnv.View(fb)
	w := v.Rect.Dx()
	h := v.Rect.Dy()

	b := make([]byte, 11, 11+w*h*4)
	b[0] = gdMagic
	b[1] = gdTrueColor
	binary.BigEndian.PutUint16(b[2:], uint16(w))
	binary.BigEndian.PutUint16(b[4:], uint16(h))
	b[6] = 1

	// no transparent colour
	binary.BigEndian.PutUint32(b[7:], 0xffffffff)

	for y := v.Rect.Min.Y; y < v.Rect.Max.Y; y++ {
		o := v.PixOffset(v.Rect.Min.X, y)
		for x := 0; x < w; x++ {
			b = append(b, 0, v.Pix[o], v.Pix[o+1], v.Pix[o+2])
			o += 4
		}
	}

	return b
}

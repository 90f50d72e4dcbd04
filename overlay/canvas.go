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
	"image"
	"image/color"

	"github.com/jetsetilly/emuscript/host"
)

// the usage state of the canvas. see package documentation.
type usage int

const (
	usageClear usage = iota
	usageSinceDisplay
	usageSinceFrame
)

// Canvas is the overlay buffer and its drawing primitives.
type Canvas struct {
	img  *image.NRGBA
	mode host.VideoMode

	used    usage
	enabled bool
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(mode host.VideoMode) *Canvas {
	cnv := &Canvas{
		enabled: true,
	}
	cnv.alloc(mode)
	return cnv
}

func (cnv *Canvas) alloc(mode host.VideoMode) {
	w, h := mode.Dimensions()
	cnv.mode = mode
	cnv.img = image.NewNRGBA(image.Rect(0, 0, w, h))
	cnv.used = usageClear
}

// SetMode changes the video mode. The overlay is reallocated if the mode is
// different to the current mode.
func (cnv *Canvas) SetMode(mode host.VideoMode) {
	if mode != cnv.mode {
		cnv.alloc(mode)
	}
}

// Mode returns the current video mode.
func (cnv *Canvas) Mode() host.VideoMode {
	return cnv.mode
}

// Width of the overlay.
func (cnv *Canvas) Width() int {
	return cnv.img.Rect.Dx()
}

// Height of the overlay.
func (cnv *Canvas) Height() int {
	return cnv.img.Rect.Dy()
}

// Image returns the overlay buffer. The returned image should not be
// modified.
func (cnv *Canvas) Image() *image.NRGBA {
	return cnv.img
}

// SetEnabled turns compositing on or off. Drawing still happens when
// compositing is disabled.
func (cnv *Canvas) SetEnabled(enabled bool) {
	cnv.enabled = enabled
}

// Enabled returns true if compositing is enabled.
func (cnv *Canvas) Enabled() bool {
	return cnv.enabled
}

// Used returns true if anything has been drawn since the overlay was last
// cleared.
func (cnv *Canvas) Used() bool {
	return cnv.used != usageClear
}

// Clear marks the overlay as clear. Nothing will be composited until the next
// drawing call, which will erase the existing content.
func (cnv *Canvas) Clear() {
	cnv.used = usageClear
}

// prepare must be called by every drawing primitive before touching the
// overlay.
func (cnv *Canvas) prepare() {
	if cnv.used != usageSinceDisplay {
		for i := 3; i < len(cnv.img.Pix); i += 4 {
			cnv.img.Pix[i] = 0
		}
	}
	cnv.used = usageSinceDisplay
}

// blend colour c into the pixel p.
func blend(p []uint8, c color.NRGBA) {
	switch {
	case c.A == 255 || p[3] == 0:
		p[0] = c.R
		p[1] = c.G
		p[2] = c.B
		p[3] = c.A
	case c.A == 0:
	default:
		a := int(c.A)
		aDst := (255 - a) * int(p[3]) / 255
		aNew := a + aDst
		p[0] = uint8((int(p[0])*aDst + int(c.R)*a + aNew/2) / aNew)
		p[1] = uint8((int(p[1])*aDst + int(c.G)*a + aNew/2) / aNew)
		p[2] = uint8((int(p[2])*aDst + int(c.B)*a + aNew/2) / aNew)
		p[3] = uint8(aNew)
	}
}

// plot a single pixel without bounds checking.
func (cnv *Canvas) plotFast(x, y int, c color.NRGBA) {
	i := y*cnv.img.Stride + x*4
	blend(cnv.img.Pix[i:i+4:i+4], c)
}

// plot a single pixel. pixels outside the overlay are ignored.
func (cnv *Canvas) plot(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= cnv.img.Rect.Dx() || y >= cnv.img.Rect.Dy() {
		return
	}
	cnv.plotFast(x, y, c)
}

// Pixel draws a single pixel.
func (cnv *Canvas) Pixel(x, y int, c color.NRGBA) {
	cnv.prepare()
	cnv.plot(x, y, c)
}

// At returns the overlay colour at x, y. Pixels outside the overlay are
// transparent.
func (cnv *Canvas) At(x, y int) color.NRGBA {
	return cnv.img.NRGBAAt(x, y)
}

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
	"image/color"

	"github.com/jetsetilly/emuscript/curated"
)

// The GD image format is the uncompressed format of the GD graphics library.
// Scripts can create images in this format with the GD bindings for Lua,
// or by building the string by hand. All values are big-endian.
//
//	magic        2 bytes   0xfffe for truecolor, 0xffff for palette
//	width        2 bytes
//	height       2 bytes
//	truecolor    1 byte    must agree with the magic
//	colours      2 bytes   palette images only
//	transparent  4 bytes
//	palette      256 * 4   palette images only. r, g, b, alpha
//	pixels                 row major. 4 bytes (alpha, r, g, b) per pixel for
//	                       truecolor, 1 byte palette index for palette
//
// GD alpha runs from 0 (opaque) to 127 (transparent).

// BadImage is returned when image data can not be decoded.
const BadImage = "bad image data"

const (
	gdMagic     = 0xff
	gdTrueColor = 0xfe
	gdPalette   = 0xff

	gdAlphaMax = 127
)

type gdImage struct {
	trueColor bool
	width     int
	height    int

	// palette is only used by palette images. the alpha channel is the raw
	// gd alpha value
	palette [256]color.NRGBA

	// pixel data only. the header has been consumed
	pix []byte
}

func (img *gdImage) bytesPerPixel() int {
	if img.trueColor {
		return 4
	}
	return 1
}

// decodeGD parses the header of a GD image and checks that the data is long
// enough for the dimensions it claims.
func decodeGD(data []byte) (*gdImage, error) {
	if len(data) < 7 || data[0] != gdMagic || (data[1] != gdTrueColor && data[1] != gdPalette) {
		return nil, curated.Errorf(BadImage)
	}

	img := &gdImage{
		trueColor: data[1] == gdTrueColor,
		width:     int(binary.BigEndian.Uint16(data[2:])),
		height:    int(binary.BigEndian.Uint16(data[4:])),
	}

	if (data[6] != 0) != img.trueColor {
		return nil, curated.Errorf(BadImage)
	}
	data = data[7:]

	if img.trueColor {
		// transparent colour is not used
		if len(data) < 4 {
			return nil, curated.Errorf(BadImage)
		}
		data = data[4:]
	} else {
		// colour count and transparent colour are not used
		if len(data) < 2+4+256*4 {
			return nil, curated.Errorf(BadImage)
		}
		data = data[6:]
		for i := range img.palette {
			img.palette[i] = color.NRGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
			data = data[4:]
		}
	}

	if len(data) < img.width*img.height*img.bytesPerPixel() {
		return nil, curated.Errorf(BadImage)
	}
	img.pix = data

	return img, nil
}

// opacityMap converts gd alpha values to overlay alpha values, scaled by the
// alpha multiplier. values beyond gdAlphaMax are transparent.
func opacityMap(alphaMul int) [256]uint8 {
	var m [256]uint8
	for i := 0; i <= gdAlphaMax; i++ {
		opac := 255 - ((i << 1) | (i & 1))
		opac = opac * alphaMul / 255
		m[i] = uint8(max(0, min(255, opac)))
	}
	return m
}

// OverlayImage draws an entire GD image into the overlay at dx, dy. The alpha
// of every pixel is multiplied by alphaMul/255.
//
// The image is clipped to the overlay. If nothing remains after clipping, or
// alphaMul is zero or less, nothing is drawn. An error is only returned for
// malformed data.
func (cnv *Canvas) OverlayImage(dx, dy int, data []byte, alphaMul int) error {
	img, err := decodeGD(data)
	if err != nil {
		return err
	}
	cnv.overlay(img, dx, dy, 0, 0, img.width, img.height, alphaMul)
	return nil
}

// OverlayImageRegion is like OverlayImage() but draws only the part of the
// image starting at sx, sy with a width and height of sw and sh. The region
// is clipped to the image.
func (cnv *Canvas) OverlayImageRegion(dx, dy int, data []byte, sx, sy, sw, sh int, alphaMul int) error {
	img, err := decodeGD(data)
	if err != nil {
		return err
	}
	cnv.overlay(img, dx, dy, sx, sy, sw, sh, alphaMul)
	return nil
}

func (cnv *Canvas) overlay(img *gdImage, dx, dy int, sx, sy, w, h int, alphaMul int) {
	if alphaMul <= 0 {
		return
	}

	// clip source rectangle to the image
	if sx < 0 {
		w += sx
		dx -= sx
		sx = 0
	}
	if sy < 0 {
		h += sy
		dy -= sy
		sy = 0
	}
	w = min(w, img.width-sx)
	h = min(h, img.height-sy)

	// clip destination to the overlay
	if dx < 0 {
		w += dx
		sx -= dx
		dx = 0
	}
	if dy < 0 {
		h += dy
		sy -= dy
		dy = 0
	}
	w = min(w, cnv.Width()-dx)
	h = min(h, cnv.Height()-dy)

	if w <= 0 || h <= 0 {
		return
	}

	cnv.prepare()

	opac := opacityMap(alphaMul)

	var pal [256]color.NRGBA
	if !img.trueColor {
		for i, c := range img.palette {
			pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: opac[c.A]}
		}
	}

	bpp := img.bytesPerPixel()
	pitch := img.width * bpp

	for y := 0; y < h; y++ {
		row := img.pix[(sy+y)*pitch+sx*bpp:]
		for x := 0; x < w; x++ {
			var c color.NRGBA
			if img.trueColor {
				p := row[x*4 : x*4+4]
				c = color.NRGBA{R: p[1], G: p[2], B: p[3], A: opac[p[0]]}
			} else {
				c = pal[row[x]]
			}
			cnv.plotFast(dx+x, dy+y, c)
		}
	}
}

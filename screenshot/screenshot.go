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
package screenshot

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/emuscript/curated"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Sentinal errors.
const (
	SaveError     = "screenshot: %v"
	UnknownFormat = "unknown image format %s"
)

// Format of the image file.
type Format int

// List of valid Format values.
const (
	PNG Format = iota
	BMP
	JPEG
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case JPEG:
		return "jpeg"
	}
	return "png"
}

// FormatFromFilename returns the format implied by the filename extension. A
// filename without an extension is a PNG file.
func FormatFromFilename(filename string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case "", ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	default:
		return PNG, curated.Errorf(UnknownFormat, ext)
	}
}

// Scale the image by a whole number. The image is returned unchanged if the
// scale is one or less.
func Scale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode the image in the format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case BMP:
		return bmp.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	}
	return png.Encode(w, img)
}

// Save the image to the file after scaling.
func Save(img image.Image, filename string, scale int) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	err = Encode(f, Scale(img, scale), format)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(SaveError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

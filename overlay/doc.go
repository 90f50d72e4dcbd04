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

// Package overlay is the raster and compositing engine for the script drawn
// overlay. The overlay is a straight alpha RGBA buffer the size of the
// current video mode. Scripts draw into it with the primitives of the Canvas
// type and the host composites it onto the emulator's framebuffer once per
// frame with Composite().
//
// Drawing into the overlay blends with the existing overlay content, not
// with the framebuffer. A fully opaque colour replaces the overlay pixel,
// a fully transparent colour leaves it alone and anything else is blended
// with the Porter-Duff "over" operator in straight alpha.
//
// Overlay content is kept between drawing calls until the frame is
// presented. The first drawing call after a presentation clears the overlay.
// If a frame begins and nothing is drawn the old content is still shown and
// is only cleared when drawing starts again. The usage state is tracked
// by the Canvas:
//
//	clear             nothing has been drawn. Composite() does nothing
//	used since display drawing has happened since the last Composite()
//	used since frame   Composite() has happened since the last drawing
//
// Image data for OverlayImage() and the snapshot produced by Snapshot() use
// the GD library's uncompressed image format. See gd.go for details.
package overlay

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
// Package screenshot saves images of the emulated screen to disk.
//
// The format of the file is chosen by the filename extension. PNG, BMP and
// JPEG are supported. Images can be scaled by a whole number before saving.
// Scaling uses nearest neighbour sampling so that pixels stay sharp.
package screenshot

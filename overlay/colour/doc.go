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

// Package colour resolves the colour arguments given to the drawing functions
// of the script API. A colour can be given as a name, as an HTML style hex
// string, as the word "rand" or as a number.
//
// Names are case insensitive:
//
//	white black clear gray grey red orange yellow chartreuse green teal
//	cyan blue purple magenta
//
// Hex strings start with '#' and have up to eight digits in RRGGBBAA order.
// Missing digits are filled from the right with zero. If two or more digits
// are missing the alpha channel is opaque, so "#ff0000" is opaque red and
// "#ff0000cc" is red with an alpha of 0xcc.
//
// Numbers are taken as a raw 0xRRGGBBAA value.
//
// Every resolved colour has its alpha scaled by the opacity modifier of the
// Resolver. The modifier is set with SetOpacity() or SetTransparency().
package colour

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

// Package joypad arbitrates between the physical controllers and a script
// that wants to supply controller input.
//
// A script sets the buttons for a port with Set(). The port is then owned by
// the script until the host consumes the buttons with Consume(), which it
// does once per frame when the emulated machine polls its controllers. If
// the port is not owned by the script the host uses the physical controller
// instead.
//
// Buttons are stored as a 16 bit mask. The bit order is the order of the
// Buttons array.
package joypad

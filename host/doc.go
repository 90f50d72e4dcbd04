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

// Package host defines the interfaces that an emulator implements in order to
// be driven by a scripting session. The scripting core never steps the
// emulation itself. It reads and writes memory, reads the physical pads,
// asks for savestates to be written and read, and queries the movie and
// emulation state through these interfaces.
//
// Addresses are in the emulated address space. It is up to the implementation
// to map mirrors or kernel segments onto physical memory.
package host

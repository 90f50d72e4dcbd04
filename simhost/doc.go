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

// Package simhost is a small simulated console that implements the host
// interfaces. It has no CPU. Instead, a fixed program runs once per frame
// which moves a sprite around the screen according to the state of
// controller one, and counts frames in RAM.
//
// The simulated console is used by the command line front end and by tests.
//
// Memory map of the simulated program (little-endian):
//
//	0x0010  uint32  frame counter
//	0x0020  uint8   seconds counter (increments every 60 frames)
//	0x0030  uint16  sprite x
//	0x0032  uint16  sprite y
//	0x0040  uint8   busy flag. when non-zero input is not polled and the frame lags
//	0x0050  uint16  last pad value read by the program
//
// Savestates are the entire RAM plus the counters, compressed with zstd.
package simhost

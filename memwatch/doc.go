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

// Package memwatch is the registry of memory addresses being watched by a
// script. Each watched address has a callback and the last value seen at that
// address. When the host reports that memory has been written to, Sweep()
// compares every watched address with the value last seen and runs the
// callback of any watch that has changed.
//
// Only one watch exists per address. Setting a watch on an address that is
// already watched replaces the callback.
package memwatch

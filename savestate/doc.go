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

// Package savestate manages the savestate handles given to scripts.
//
// A handle is bound either to one of the numbered slots or to an anonymous
// temporary file. Slots are the player visible savestates of the emulator and
// their files are never deleted. Anonymous files belong to the handle and are
// deleted when the handle is reclaimed.
//
// Handles are reclaimed explicitly with Reclaim(), or all at once with
// ReclaimAll() when the script that created them stops.
package savestate

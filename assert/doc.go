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

// Package assert contains debugging helpers that are only active when the
// "assertions" build tag is used.
//
// The scripting core is single threaded. Every script operation must happen
// on the goroutine that created the session. The Goroutine type records the
// goroutine ID on Bind() and panics in Check() if called from a different
// goroutine. Without the build tag both functions do nothing.
package assert

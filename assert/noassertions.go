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

//go:build !assertions

package assert

// Goroutine remembers the goroutine that owns a resource.
type Goroutine struct{}

// Bind the current goroutine as the owner.
func (g *Goroutine) Bind() {}

// Check panics if the current goroutine is not the owner.
func (g *Goroutine) Check(op string) {}

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

// Package callbacks is the table of lifecycle hooks registered by a script.
//
// There is at most one function per hook. Registering a function replaces the
// previous function, which is returned so that a script can chain hooks if
// it wants to.
package callbacks

import (
	lua "github.com/yuin/gopher-lua"
)

// Hook is a point in the emulation where a script function can be called.
type Hook int

// List of valid Hook values.
const (
	// before each frame is emulated
	BeforeEmulation Hook = iota

	// after each frame is emulated
	AfterEmulation

	// when the script is stopped by the user
	Exit

	// when the overlay is about to be presented
	GUI

	numHooks
)

func (h Hook) String() string {
	switch h {
	case BeforeEmulation:
		return "before"
	case AfterEmulation:
		return "after"
	case Exit:
		return "exit"
	case GUI:
		return "gui"
	}
	return "unknown"
}

// Table of registered functions.
type Table struct {
	fns [numHooks]*lua.LFunction
}

// Register a function for the hook. A nil function removes the hook. The
// previously registered function is returned, or nil if there was none.
func (t *Table) Register(h Hook, fn *lua.LFunction) *lua.LFunction {
	if h < 0 || h >= numHooks {
		return nil
	}
	prev := t.fns[h]
	t.fns[h] = fn
	return prev
}

// Get the function for the hook. Returns nil if no function is registered.
func (t *Table) Get(h Hook) *lua.LFunction {
	if h < 0 || h >= numHooks {
		return nil
	}
	return t.fns[h]
}

// Clear all hooks.
func (t *Table) Clear() {
	t.fns = [numHooks]*lua.LFunction{}
}

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
// Package scripting runs a Lua script alongside an emulator.
//
// The Session type owns the script and everything the script can change: the
// overlay, memory watches, joypad overrides, savestates and lifecycle hooks.
// The emulator creates one Session and calls it at fixed points in its main
// loop:
//
//	BeforeEmulation()   before a frame is emulated
//	WriteInform()       after a write to memory
//	AfterEmulation()    after a frame is emulated
//	FrameBoundary()     once per frame, after emulation
//	Present()           with the framebuffer that is about to be displayed
//
// When it reads a controller the emulator should use Poll() (or UsingJoypad()
// and ReadJoypad()) so that buttons set by the script are seen.
//
// The script API is registered in the Lua globals emu (also called pcsx),
// memory, joypad, savestate, movie, gui and input, and the bit functions AND,
// OR, XOR, SHIFT and BIT.
//
// When a script ends, for whatever reason, the emulator is returned to the
// state it was in before the script started. Joypad overrides are released
// and the overlay is cleared. The speed is returned to normal and the pause
// state is put back to what it was when the script was loaded. Savestates
// created by the script are deleted unless they are in a numbered slot.
//
// A Session is not safe for concurrent use. All calls should be made from the
// goroutine that created the Session.
package scripting

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

// Package scheduler runs a Lua script in step with the frames of an
// emulator.
//
// The main body of the script runs in a Lua coroutine. The host calls
// Advance() once per frame, which resumes the coroutine. The script runs until
// it asks for a frame boundary (usually by calling emu.frameadvance()), at
// which point the coroutine yields and Advance() returns to the host.
//
// Callbacks registered by the script are run with Call(). Callbacks run on the
// main Lua state and can not ask for a frame boundary.
//
// A watchdog counts the instructions executed by the script. Every interval
// instructions the budget is reduced by one and when the budget runs out the
// user is asked whether the script should be killed. The budget is reset at
// the start of every frame and before every callback. If the user chooses not
// to kill the script the watchdog is disabled for the rest of the script's
// life.
//
// The life of a script:
//
//	Unloaded -> Runnable -> Suspended <-> Runnable -> Terminated
//
// A script is Runnable while it is being resumed by Advance() and Suspended
// between frames. Terminated is final. A new script must be loaded to run
// anything again.
package scheduler

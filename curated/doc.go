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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are the errors that the scripting core expects to happen:
// a script that fails to compile, a runtime error inside a callback, a script
// killed by the watchdog. Anything else is uncurated and usually means a bug.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is retained and
// used to identify the error later. For example:
//
//	const CompileError = "compile: %v"
//
//	err := curated.Errorf(CompileError, "unexpected symbol")
//	if curated.Is(err, CompileError) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain. A chain is formed by using another error as one of the
// placeholder values.
//
// The Error() function normalises the message so that duplicate adjacent
// parts are removed. This means a function can wrap an error without knowing
// whether the callee has already added the same prefix.
//
// Curated errors also implement Unwrap() so errors.Is() and errors.As() from
// the standard library work through a chain that contains uncurated errors.
package curated

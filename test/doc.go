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

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and let the test
// continue. The Demand functions are the same but stop the test with
// t.Fatalf(). Demand should be used when later parts of the test depend on
// the value being correct, for example, when a script must have compiled
// before it can be advanced.
//
// Success and failure are decided by the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type being a success is not obvious but is how errors usually work
// in Go. A nil error is no error.
//
// All the functions accept optional tags. These are prepended to the failure
// message and are useful for identifying a failing iteration inside a loop.
//
// The CompareWriter and RingWriter types implement io.Writer and are used to
// capture output from the logger and the notification sinks.
package test

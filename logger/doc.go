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

// Package logger is the central log for the scripting core. Entries are
// tagged and kept in a capped list. Adjacent duplicate entries are collapsed
// into a single entry with a repeat count, which keeps per-frame messages
// from a misbehaving script from flooding the log.
//
// The package level functions write to the central logger. Instances created
// with NewLogger() are independent of the central logger and are useful when
// more than one scripting session exists in the same process (tests mostly).
package logger

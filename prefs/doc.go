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

// Package prefs facilitates the persistence of preferences to disk. The
// scripting core uses it for the watchdog settings, the memory watch window
// and a handful of host preferences.
//
// Preference values are of type Bool, String or Int. They are added to a
// Disk instance with a key. Keys are dotted strings, for example
// "scripting.watchdog.budget". A Disk can be saved and loaded as a whole:
//
//	var budget prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("scripting.watchdog.budget", &budget)
//	dsk.Load()
//
// Each line of the file is "key :: value". Entries in the file that are not
// known to the Disk instance are preserved when the Disk is saved, so more
// than one Disk can share the same file.
//
// Values given on the command line take priority over values loaded from
// disk. See PushCommandLineStack() for the format of the command line group.
package prefs

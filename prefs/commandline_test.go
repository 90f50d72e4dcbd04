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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/emuscript/prefs"
	"github.com/jetsetilly/emuscript/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("scripting.watchdog.budget::500")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.watchdog.budget::500")

	// surrounding space is trimmed from keys and values
	prefs.PushCommandLineStack("   scripting.gui.enabled:: false ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.gui.enabled::false")

	// unused entries are returned sorted by key
	prefs.PushCommandLineStack("scripting.watchdog.interval::20000; scripting.gui.enabled::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.gui.enabled::false; scripting.watchdog.interval::20000")

	// malformed pairs are dropped
	prefs.PushCommandLineStack("scripting.watchdog.budget")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("scripting.watchdog.budget;scripting.gui.enabled::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.gui.enabled::false")

	prefs.PushCommandLineStack("scripting.watchdog.budget::1::2;scripting.gui.enabled::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.gui.enabled::true")
}

func TestCommandLinePref(t *testing.T) {
	prefs.PushCommandLineStack("scripting.watchdog.budget::500; scripting.memory.window::4096")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("scripting.watchdog.budget")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("500"))

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("scripting.watchdog.budget")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("scripting.gui.enabled")
	test.ExpectFailure(t, ok)

	// the entry that was never taken is reported when the group is popped
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.memory.window::4096")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("scripting.watchdog.budget::500")

	// a second group hides the first
	prefs.PushCommandLineStack("scripting.watchdog.budget::750")
	ok, v := prefs.GetCommandLinePref("scripting.watchdog.budget")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("750"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scripting.watchdog.budget::500")
}

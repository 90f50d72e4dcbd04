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

package notifications

// Notice describes events that the host may want to present to the user.
type Notice string

// List of defined notifications.
const (
	// a script has been compiled and started
	NotifyScriptLoaded Notice = "NotifyScriptLoaded"

	// a script has stopped. either because it was stopped by the host or
	// because it terminated. the reason is in the log
	NotifyScriptStopped Notice = "NotifyScriptStopped"

	// a script was killed by the watchdog
	NotifyScriptKilled Notice = "NotifyScriptKilled"

	// a screenshot has been saved
	NotifyScreenshot Notice = "NotifyScreenshot"
)

// Notify is used for communication between the scripting core and the host
// application.
type Notify interface {
	Notify(notice Notice) error
}

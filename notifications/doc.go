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

// Package notifications allow communication from the scripting core to the
// user of the host application.
//
// Notices are events that the host may want to present, for example, that a
// script has stopped or that a screenshot was saved. They are sent through
// the Notify interface.
//
// Popups are questions that need an answer. A script asks them with
// gui.popup() and the watchdog asks one when a script has run for too long
// without yielding. The Sink interface is implemented by the console and
// dialog sub-packages.
package notifications

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

// Package dialog implements the notifications.Sink interface with native
// message boxes. The native message boxes offer fewer buttons than a popup
// can ask for so some popups are reduced to a yes/no question:
//
//	okcancel         -> yes is ok, no is cancel
//	yesnocancel      -> cancel is not available
//	abortretryignore -> yes is retry, no is abort
package dialog

import (
	"errors"

	"github.com/sqweek/dialog"

	"github.com/jetsetilly/emuscript/notifications"
)

// Sink shows popups with native dialogs.
type Sink struct{}

// Popup implements the notifications.Sink interface.
func (Sink) Popup(p notifications.Popup) (notifications.Answer, error) {
	title := p.Title
	if title == "" {
		title = "emuscript"
	}

	// the message is passed as an argument so that it is never interpreted
	// as a format string
	msg := dialog.Message("%s", p.Message).Title(title)

	switch p.Buttons {
	case notifications.ButtonsYesNo, notifications.ButtonsYesNoCancel:
		if msg.YesNo() {
			return notifications.AnswerYes, nil
		}
		return notifications.AnswerNo, nil

	case notifications.ButtonsOKCancel:
		if msg.YesNo() {
			return notifications.AnswerOK, nil
		}
		return notifications.AnswerCancel, nil

	case notifications.ButtonsAbortRetryIgnore:
		if msg.YesNo() {
			return notifications.AnswerRetry, nil
		}
		return notifications.AnswerAbort, nil
	}

	if p.Icon == notifications.IconError || p.Icon == notifications.IconWarning {
		msg.Error()
	} else {
		msg.Info()
	}
	return notifications.AnswerOK, nil
}

// ChooseScript asks the user for a script file. Returns the empty string if
// the user cancels.
func ChooseScript() (string, error) {
	fn, err := dialog.File().Title("Open script").Filter("Lua scripts", "lua").Filter("Script bundles", "zip", "7z", "rar", "gz").Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", nil
		}
		return "", err
	}
	return fn, nil
}

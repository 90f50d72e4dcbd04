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

import "strings"

// Buttons is the set of buttons offered by a popup.
type Buttons int

// List of valid Buttons values.
const (
	ButtonsOK Buttons = iota
	ButtonsYesNo
	ButtonsYesNoCancel
	ButtonsOKCancel
	ButtonsAbortRetryIgnore
)

func (b Buttons) String() string {
	switch b {
	case ButtonsYesNo:
		return "yesno"
	case ButtonsYesNoCancel:
		return "yesnocancel"
	case ButtonsOKCancel:
		return "okcancel"
	case ButtonsAbortRetryIgnore:
		return "abortretryignore"
	}
	return "ok"
}

// ParseButtons returns the Buttons value named by s. Names are case
// insensitive. An unknown name returns the default value.
func ParseButtons(s string, def Buttons) Buttons {
	switch strings.ToLower(s) {
	case "ok":
		return ButtonsOK
	case "yesno":
		return ButtonsYesNo
	case "yesnocancel":
		return ButtonsYesNoCancel
	case "okcancel":
		return ButtonsOKCancel
	case "abortretryignore":
		return ButtonsAbortRetryIgnore
	}
	return def
}

// Answers returns the answers available for the buttons. The first entry is
// the default answer.
func (b Buttons) Answers() []Answer {
	switch b {
	case ButtonsYesNo:
		return []Answer{AnswerYes, AnswerNo}
	case ButtonsYesNoCancel:
		return []Answer{AnswerYes, AnswerNo, AnswerCancel}
	case ButtonsOKCancel:
		return []Answer{AnswerOK, AnswerCancel}
	case ButtonsAbortRetryIgnore:
		return []Answer{AnswerAbort, AnswerRetry, AnswerIgnore}
	}
	return []Answer{AnswerOK}
}

// Icon is the style of a popup.
type Icon int

// List of valid Icon values.
const (
	IconMessage Icon = iota
	IconQuestion
	IconWarning
	IconError
)

func (i Icon) String() string {
	switch i {
	case IconQuestion:
		return "question"
	case IconWarning:
		return "warning"
	case IconError:
		return "error"
	}
	return "message"
}

// ParseIcon returns the Icon value named by s. "notice" is a synonym for
// "message". An unknown name returns the default value.
func ParseIcon(s string, def Icon) Icon {
	switch strings.ToLower(s) {
	case "message", "notice":
		return IconMessage
	case "question":
		return IconQuestion
	case "warning":
		return IconWarning
	case "error":
		return IconError
	}
	return def
}

// Answer is the response to a popup.
type Answer string

// List of valid Answer values.
const (
	AnswerOK     Answer = "ok"
	AnswerCancel Answer = "cancel"
	AnswerAbort  Answer = "abort"
	AnswerRetry  Answer = "retry"
	AnswerIgnore Answer = "ignore"
	AnswerYes    Answer = "yes"
	AnswerNo     Answer = "no"
)

// Popup is a question for the user.
type Popup struct {
	Title   string
	Message string
	Buttons Buttons
	Icon    Icon
}

// Default returns the answer a sink should use when it cannot ask the user.
func (p Popup) Default() Answer {
	return p.Buttons.Answers()[0]
}

// Valid returns true if the answer is one of the answers for the popup's
// buttons.
func (p Popup) Valid(a Answer) bool {
	for _, b := range p.Buttons.Answers() {
		if a == b {
			return true
		}
	}
	return false
}

// Sink implementations show popups to the user and wait for the answer.
type Sink interface {
	Popup(p Popup) (Answer, error)
}

// Fixed is a Sink that always gives the same answer. If the answer is not
// valid for the popup the popup's default answer is used.
type Fixed Answer

// Popup implements the Sink interface.
func (f Fixed) Popup(p Popup) (Answer, error) {
	if p.Valid(Answer(f)) {
		return Answer(f), nil
	}
	return p.Default(), nil
}

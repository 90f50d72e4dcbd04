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

// Package console implements the notifications.Sink interface for a text
// terminal. When standard input is a terminal the user is prompted for an
// answer. Otherwise the popup is printed and the default answer is used.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/emuscript/notifications"
)

// Sink shows popups on the console.
type Sink struct {
	in  *os.File
	out io.Writer

	// forces the non-interactive path even if in is a terminal
	NonInteractive bool
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink(in *os.File, out io.Writer) *Sink {
	return &Sink{
		in:  in,
		out: out,
	}
}

func prompt(p notifications.Popup) string {
	answers := p.Buttons.Answers()
	s := make([]string, len(answers))
	for i, a := range answers {
		s[i] = string(a)
	}
	return fmt.Sprintf("[%s] ", strings.Join(s, "/"))
}

func header(p notifications.Popup) string {
	s := strings.Builder{}
	if p.Title != "" {
		s.WriteString(fmt.Sprintf("*** %s ***\n", p.Title))
	}
	if p.Icon != notifications.IconMessage {
		s.WriteString(fmt.Sprintf("%s: ", p.Icon))
	}
	s.WriteString(p.Message)
	s.WriteString("\n")
	return s.String()
}

// match the user's input to an answer. a unique prefix is enough.
func match(p notifications.Popup, input string) (notifications.Answer, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}
	var found []notifications.Answer
	for _, a := range p.Buttons.Answers() {
		if string(a) == input {
			return a, true
		}
		if strings.HasPrefix(string(a), input) {
			found = append(found, a)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return "", false
}

// Popup implements the notifications.Sink interface.
func (snk *Sink) Popup(p notifications.Popup) (notifications.Answer, error) {
	if snk.NonInteractive || snk.in == nil || !term.IsTerminal(int(snk.in.Fd())) {
		io.WriteString(snk.out, header(p))
		a := p.Default()
		fmt.Fprintf(snk.out, "%s%s\n", prompt(p), a)
		return a, nil
	}

	fd := int(snk.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return p.Default(), fmt.Errorf("console: %w", err)
	}
	defer term.Restore(fd, state)

	rw := struct {
		io.Reader
		io.Writer
	}{snk.in, snk.out}

	t := term.NewTerminal(rw, prompt(p))
	t.Write([]byte(strings.ReplaceAll(header(p), "\n", "\r\n")))

	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return p.Default(), nil
			}
			return p.Default(), fmt.Errorf("console: %w", err)
		}
		if a, ok := match(p, line); ok {
			return a, nil
		}
	}
}

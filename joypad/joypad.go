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

package joypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emuscript/curated"
)

// Button is a single bit in a button mask.
type Button uint16

// List of valid Button values.
const (
	Select Button = 1 << iota
	Unknown1
	Unknown2
	Start
	Up
	Right
	Down
	Left
	L2
	R2
	L1
	R1
	Triangle
	Circle
	Cross
	Square
)

// Buttons are the names of each button. The index of the name is the bit
// number of the button in a mask.
var Buttons = [16]string{
	"select", "unkn1", "unkn2", "start", "up", "right", "down", "left",
	"l2", "r2", "l1", "r1", "triangle", "circle", "x", "square",
}

// Names returns the names of the buttons set in the mask, in bit order.
func Names(mask uint16) []string {
	var n []string
	for i, b := range Buttons {
		if mask&(1<<i) != 0 {
			n = append(n, b)
		}
	}
	return n
}

// Lookup returns the Button with the name. Names are case insensitive.
func Lookup(name string) (Button, bool) {
	name = strings.ToLower(name)
	for i, b := range Buttons {
		if b == name {
			return Button(1 << i), true
		}
	}
	return 0, false
}

// MaskString is a readable version of a button mask.
func MaskString(mask uint16) string {
	if mask == 0 {
		return "none"
	}
	return strings.Join(Names(mask), "+")
}

// NumPorts is the number of controller ports.
const NumPorts = 2

// InvalidPort is returned when a port number is not between 1 and NumPorts.
const InvalidPort = "invalid port (valid range 1-%d, specified %d)"

func checkPort(port int) error {
	if port < 1 || port > NumPorts {
		return curated.Errorf(InvalidPort, NumPorts, port)
	}
	return nil
}

// Arbiter decides whether the script or the physical controller supplies the
// buttons for a port.
type Arbiter struct {
	mask  [NumPorts]uint16
	owned [NumPorts]bool
}

// Set the buttons for the port. The mask replaces any previous mask and the
// port becomes owned by the script.
func (a *Arbiter) Set(port int, mask uint16) error {
	if err := checkPort(port); err != nil {
		return err
	}
	a.mask[port-1] = mask
	a.owned[port-1] = true
	return nil
}

// Owned returns true if the port is owned by the script.
func (a *Arbiter) Owned(port int) bool {
	if checkPort(port) != nil {
		return false
	}
	return a.owned[port-1]
}

// Pending returns the mask set by the script for the port if the port is
// owned. It does not consume the mask.
func (a *Arbiter) Pending(port int) uint16 {
	if !a.Owned(port) {
		return 0
	}
	return a.mask[port-1]
}

// Consume the buttons for a port. Ownership of the port is released. The
// boolean return value is false if the port was not owned by the script, in
// which case the host should use the physical controller.
func (a *Arbiter) Consume(port int) (uint16, bool) {
	if !a.Owned(port) {
		return 0, false
	}
	a.owned[port-1] = false
	return a.mask[port-1], true
}

// Poll is a convenience function for hosts. It returns the buttons supplied
// by the script for the port if the port is owned, otherwise the physical
// buttons are returned.
func (a *Arbiter) Poll(port int, physical uint16) uint16 {
	if m, ok := a.Consume(port); ok {
		return m
	}
	return physical
}

// Reset releases all ports.
func (a *Arbiter) Reset() {
	*a = Arbiter{}
}

func (a *Arbiter) String() string {
	s := strings.Builder{}
	for i := range NumPorts {
		if i > 0 {
			s.WriteString(" ")
		}
		if a.owned[i] {
			s.WriteString(fmt.Sprintf("%d:%s", i+1, MaskString(a.mask[i])))
		} else {
			s.WriteString(fmt.Sprintf("%d:physical", i+1))
		}
	}
	return s.String()
}

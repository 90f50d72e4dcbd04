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

package host

import "strings"

// Memory is the emulated address space. Multi-byte values are in the byte
// order of the emulated machine.
type Memory interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// Pads gives access to the physical controllers. Ports are numbered from 1.
// The returned value has a bit set for every pressed button, in the canonical
// order defined by the joypad package.
type Pads interface {
	ReadPad(port int) uint16
}

// States serialises and deserialises the entire emulation state.
type States interface {
	SaveState(filename string) error
	LoadState(filename string) error

	// the file used for a numbered, player visible, slot
	SlotFilename(slot int) string
}

// MovieMode is the current state of the movie recorder.
type MovieMode int

// List of valid MovieMode values.
const (
	MovieInactive MovieMode = iota
	MovieRecording
	MoviePlayback
)

func (m MovieMode) String() string {
	switch m {
	case MovieRecording:
		return "record"
	case MoviePlayback:
		return "playback"
	}
	return "none"
}

// Movie is the movie recorder and the frame/lag counters that go with it.
type Movie interface {
	FrameCount() int
	LagCount() int
	Lagged() bool
	MovieMode() MovieMode

	// StopMovie stops recording or playback. Returns an error if no movie
	// is active.
	StopMovie() error
}

// Emulation gives access to the running state of the emulator.
type Emulation interface {
	Paused() bool
	SetPaused(paused bool)

	// DisplayMessage shows a short message to the user. Usually in the
	// emulator's on-screen display.
	DisplayMessage(msg string)
}

// Keyboard is optionally implemented by hosts that can report the state of
// the keyboard and mouse to a script.
type Keyboard interface {
	// KeysHeld returns the names of the keys currently held down. Names are
	// lower case.
	KeysHeld() []string

	// Mouse returns the mouse position in overlay coordinates.
	Mouse() (x, y int)
}

// Host is everything a scripting session needs from an emulator.
type Host interface {
	Memory
	Pads
	States
	Movie
	Emulation
}

// SpeedMode is the emulation speed requested by a script.
type SpeedMode int

// List of valid SpeedMode values.
const (
	SpeedNormal SpeedMode = iota
	SpeedNoThrottle
	SpeedTurbo
	SpeedMaximum
)

func (s SpeedMode) String() string {
	switch s {
	case SpeedNoThrottle:
		return "nothrottle"
	case SpeedTurbo:
		return "turbo"
	case SpeedMaximum:
		return "maximum"
	}
	return "normal"
}

// ParseSpeedMode converts the name of a speed mode to a SpeedMode. Names are
// case insensitive.
func ParseSpeedMode(s string) (SpeedMode, bool) {
	switch strings.ToLower(s) {
	case "normal":
		return SpeedNormal, true
	case "nothrottle":
		return SpeedNoThrottle, true
	case "turbo":
		return SpeedTurbo, true
	case "maximum":
		return SpeedMaximum, true
	}
	return SpeedNormal, false
}

// VideoMode is the size of the overlay.
type VideoMode int

// List of valid VideoMode values.
const (
	VideoStandard VideoMode = iota
	VideoHighRes
)

// Dimensions returns the width and height of the overlay for the mode.
func (v VideoMode) Dimensions() (int, int) {
	if v == VideoHighRes {
		return 1024, 1024
	}
	return 640, 512
}

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

package simhost

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"slices"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/joypad"
	"github.com/jetsetilly/emuscript/logger"
)

// Addresses used by the simulated program.
const (
	AddrFrame   = 0x0010
	AddrSeconds = 0x0020
	AddrSpriteX = 0x0030
	AddrSpriteY = 0x0032
	AddrBusy    = 0x0040
	AddrPad     = 0x0050
)

// Size of the simulated screen.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
	spriteSize   = 16
)

// NoMovie is returned by StopMovie() when no movie is active.
const NoMovie = "no movie is active"

// Poller is called by the simulated program when it reads a controller. The
// physical argument is the state of the physical controller and the return
// value is what the program sees.
type Poller func(port int, physical uint16) uint16

// Console is the simulated console. It implements the host.Host and
// host.Keyboard interfaces.
type Console struct {
	*RAM

	stateDir string

	physical [joypad.NumPorts]uint16
	poller   Poller

	frame int
	lag   int

	lagged bool
	paused bool
	movie  host.MovieMode

	messages []string

	keys   []string
	mouseX int
	mouseY int

	fb *image.RGBA
}

// NewConsole is the preferred method of initialisation for the Console type.
// Savestates for numbered slots are kept in stateDir.
func NewConsole(stateDir string) *Console {
	c := &Console{
		RAM:      NewRAM(),
		stateDir: stateDir,
		fb:       image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
	c.Reset()
	return c
}

// Reset the simulated console.
func (c *Console) Reset() {
	clear(c.data)
	c.frame = 0
	c.lag = 0
	c.lagged = false
	c.Write16(AddrSpriteX, (ScreenWidth-spriteSize)/2)
	c.Write16(AddrSpriteY, (ScreenHeight-spriteSize)/2)
	c.render()
}

// SetPoller sets the function that decides what the simulated program sees
// when it reads a controller.
func (c *Console) SetPoller(p Poller) {
	c.poller = p
}

// SetPhysical sets the state of a physical controller.
func (c *Console) SetPhysical(port int, mask uint16) {
	if port < 1 || port > joypad.NumPorts {
		return
	}
	c.physical[port-1] = mask
}

// ReadPad implements the host.Pads interface.
func (c *Console) ReadPad(port int) uint16 {
	if port < 1 || port > joypad.NumPorts {
		return 0
	}
	return c.physical[port-1]
}

func (c *Console) poll(port int) uint16 {
	m := c.ReadPad(port)
	if c.poller != nil {
		m = c.poller(port, m)
	}
	return m
}

// Step runs the simulated program for one frame. Nothing happens if the
// console is paused. Returns true if a frame was run.
func (c *Console) Step() bool {
	if c.paused {
		return false
	}

	c.frame++
	c.Write32(AddrFrame, uint32(c.frame))
	if c.frame%60 == 0 {
		c.Write8(AddrSeconds, c.Read8(AddrSeconds)+1)
	}

	c.lagged = c.Read8(AddrBusy) != 0
	if c.lagged {
		c.lag++
	} else {
		pad := c.poll(1)
		c.Write16(AddrPad, pad)

		x := int(c.Read16(AddrSpriteX))
		y := int(c.Read16(AddrSpriteY))
		if pad&uint16(joypad.Left) != 0 {
			x--
		}
		if pad&uint16(joypad.Right) != 0 {
			x++
		}
		if pad&uint16(joypad.Up) != 0 {
			y--
		}
		if pad&uint16(joypad.Down) != 0 {
			y++
		}
		x = max(0, min(ScreenWidth-spriteSize, x))
		y = max(0, min(ScreenHeight-spriteSize, y))
		c.Write16(AddrSpriteX, uint16(x))
		c.Write16(AddrSpriteY, uint16(y))
	}

	c.render()

	return true
}

func (c *Console) render() {
	for y := range ScreenHeight {
		for x := range ScreenWidth {
			c.fb.SetRGBA(x, y, color.RGBA{R: uint8(x / 2), G: uint8(y), B: 0x40, A: 0xff})
		}
	}

	sx := int(c.Read16(AddrSpriteX))
	sy := int(c.Read16(AddrSpriteY))
	for y := sy; y < sy+spriteSize; y++ {
		for x := sx; x < sx+spriteSize; x++ {
			c.fb.SetRGBA(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		}
	}
}

// Framebuffer returns the image produced by the most recent frame. The image
// is reused by the console.
func (c *Console) Framebuffer() *image.RGBA {
	return c.fb
}

// FrameCount implements the host.Movie interface.
func (c *Console) FrameCount() int {
	return c.frame
}

// LagCount implements the host.Movie interface.
func (c *Console) LagCount() int {
	return c.lag
}

// Lagged implements the host.Movie interface.
func (c *Console) Lagged() bool {
	return c.lagged
}

// MovieMode implements the host.Movie interface.
func (c *Console) MovieMode() host.MovieMode {
	return c.movie
}

// SetMovieMode changes the reported movie mode. The simulated console does
// not record or play back movies.
func (c *Console) SetMovieMode(m host.MovieMode) {
	c.movie = m
}

// StopMovie implements the host.Movie interface.
func (c *Console) StopMovie() error {
	if c.movie == host.MovieInactive {
		return curated.Errorf(NoMovie)
	}
	c.movie = host.MovieInactive
	return nil
}

// Paused implements the host.Emulation interface.
func (c *Console) Paused() bool {
	return c.paused
}

// SetPaused implements the host.Emulation interface.
func (c *Console) SetPaused(paused bool) {
	c.paused = paused
}

// DisplayMessage implements the host.Emulation interface.
func (c *Console) DisplayMessage(msg string) {
	c.messages = append(c.messages, msg)
	logger.Log(logger.Allow, "simhost", msg)
}

// Messages returns every message displayed since the last call to
// Messages().
func (c *Console) Messages() []string {
	m := c.messages
	c.messages = nil
	return m
}

// SetKeys sets the keyboard state reported to scripts.
func (c *Console) SetKeys(keys []string, mouseX, mouseY int) {
	c.keys = slices.Clone(keys)
	c.mouseX = mouseX
	c.mouseY = mouseY
}

// KeysHeld implements the host.Keyboard interface.
func (c *Console) KeysHeld() []string {
	return c.keys
}

// Mouse implements the host.Keyboard interface.
func (c *Console) Mouse() (int, int) {
	return c.mouseX, c.mouseY
}

// SlotFilename implements the host.States interface.
func (c *Console) SlotFilename(slot int) string {
	return filepath.Join(c.stateDir, fmt.Sprintf("slot%02d.state", slot))
}

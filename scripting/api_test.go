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
package scripting_test

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/joypad"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/scheduler"
	"github.com/jetsetilly/emuscript/simhost"
	"github.com/jetsetilly/emuscript/test"
)

func TestMemory(t *testing.T) {
	f := newFixture(t, nil)
	f.finish(`
memory.writedword(0x100, 0x80FF7F01)
assert(memory.readbyte(0x100) == 0x01)
assert(memory.readbyte(0x103) == 0x80)
assert(memory.readbytesigned(0x102) == -1)
assert(memory.readword(0x100) == 0x7F01)
assert(memory.readwordsigned(0x102) == -32513)
assert(memory.readdword(0x100) == 0x80FF7F01)
assert(memory.readdwordsigned(0x100) == -2130739455)
assert(memory.readlong(0x100) == memory.readdword(0x100))
assert(memory.readshortsigned(0x102) == memory.readwordsigned(0x102))

local r = memory.readbyterange(0x100, 4)
assert(#r == 4)
assert(r[1] == 0x01 and r[2] == 0x7F and r[3] == 0xFF and r[4] == 0x80)

r = memory.readbyterange(0x104, -4)
assert(#r == 4)
assert(r[1] == 0x01 and r[4] == 0x80)

memory.writeword(0x200, 0x1234)
memory.writebyte(0x202, 0x156)
`)

	test.ExpectEquality(t, f.con.Read16(0x200), uint16(0x1234))
	test.ExpectEquality(t, f.con.Read8(0x202), uint8(0x56))
}

func TestMemoryRegister(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
local count = 0
memory.register(0x400, function()
	count = count + 1
	memory.writebyte(0x401, count)
end)

-- the script's own writes are watched
memory.writebyte(0x400, 5)
memory.writebyte(0x400, 5)

local ok, err = pcall(memory.register, 0x300000, function() end)
assert(not ok)
assert(string.find(err, "should be between"))

ok, err = pcall(memory.register, 0x400, 5)
assert(not ok)
assert(string.find(err, "function or nil expected"))

emu.frameadvance()
memory.registerwrite(0x400, nil)
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.sink.titles(), "")
	test.ExpectEquality(t, f.con.Read8(0x401), uint8(1))

	// a write by the emulated program
	f.con.Write8(0x400, 9)
	test.ExpectEquality(t, f.con.Read8(0x401), uint8(2))

	// a wide write that covers the address
	f.con.Write32(0x3fe, 0x00ff0000)
	test.ExpectEquality(t, f.con.Read8(0x401), uint8(3))

	// writes that do not change the value
	f.con.Write8(0x400, 0xff)
	test.ExpectEquality(t, f.con.Read8(0x401), uint8(3))

	// watch removed
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	f.con.Write8(0x400, 1)
	test.ExpectEquality(t, f.con.Read8(0x401), uint8(3))
}

func TestMemoryRegisterError(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
memory.register(0x400, function() error("watch") end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)

	f.con.Write8(0x400, 1)
	test.DemandEquality(t, f.sink.titles(), "Lua callback error")
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[0].Message, "watch"))
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[0].Message, "memory 0x400"))

	// the watch is not removed
	f.con.Write8(0x400, 2)
	test.ExpectEquality(t, f.sink.titles(), "Lua callback error,Lua callback error")
	test.ExpectSuccess(t, f.ses.Running())

	// watches are removed when the script ends
	f.ses.Stop()
	f.con.Write8(0x400, 3)
	test.ExpectEquality(t, len(f.sink.popups), 2)
}

func TestJoypad(t *testing.T) {
	f := newFixture(t, nil)
	f.con.SetPhysical(1, uint16(joypad.Select))

	f.load(`
joypad.set(1, {x=true, up=1, start=false})
local t = joypad.get(1)
assert(t.x == 1)
assert(t.up == 1)
assert(t.select == 1)
assert(t.start == nil)

assert(not pcall(joypad.set, 3, {}))
assert(not pcall(joypad.get, 0))

emu.frameadvance()
joypad.write(2, {right=true})
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.sink.titles(), "")
	test.ExpectSuccess(t, f.ses.UsingJoypad(1))
	test.ExpectFailure(t, f.ses.UsingJoypad(2))

	// the override replaces the physical controller and is used once
	test.ExpectEquality(t, f.ses.Poll(1, uint16(joypad.Select)), uint16(joypad.Cross|joypad.Up))
	test.ExpectFailure(t, f.ses.UsingJoypad(1))
	test.ExpectEquality(t, f.ses.Poll(1, uint16(joypad.Select)), uint16(joypad.Select))

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectSuccess(t, f.ses.UsingJoypad(2))
	test.ExpectEquality(t, f.ses.ReadJoypad(2), uint16(joypad.Right))
	test.ExpectFailure(t, f.ses.UsingJoypad(2))
}

func TestJoypadStep(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
while true do
	joypad.set(1, {left=true})
	emu.frameadvance()
end`)

	// the first frame is emulated before the script has run
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	x := f.con.Read16(simhost.AddrSpriteX)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	test.ExpectEquality(t, f.con.Read16(simhost.AddrSpriteX), x-1)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	test.ExpectEquality(t, f.con.Read16(simhost.AddrSpriteX), x-2)
}

func TestSavestate(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
local s = savestate.create()
assert(tostring(s) ~= "")
assert(getmetatable(s) == "savestate")

memory.writebyte(0x100, 11)
savestate.save(s)
memory.writebyte(0x100, 22)
s:load()
memory.writebyte(0x101, memory.readbyte(0x100))

local slot = savestate.create(3)
slot:save()

assert(not pcall(savestate.create, 11))
assert(not pcall(savestate.create, 0))
assert(not pcall(savestate.save, 5))

s:close()
assert(not pcall(savestate.load, s))

local t = savestate.create()
t:save()
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.sink.titles(), "")
	test.ExpectEquality(t, f.con.Read8(0x101), uint8(11))

	_, err := os.Stat(f.con.SlotFilename(3))
	test.ExpectSuccess(t, err)

	anon := filepath.Join(f.dir, "anon")
	entries, err := os.ReadDir(anon)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)

	// anonymous savestates are deleted when the script ends. numbered slots
	// are kept
	f.ses.Stop()
	entries, err = os.ReadDir(anon)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)

	_, err = os.Stat(f.con.SlotFilename(3))
	test.ExpectSuccess(t, err)
}

func TestMovie(t *testing.T) {
	f := newFixture(t, nil)
	f.con.SetMovieMode(host.MovieRecording)
	f.finish(`
assert(movie.mode() == "record")
assert(movie.framecount() == emu.framecount())
movie.stop()
assert(movie.mode() == nil)

local ok, err = pcall(movie.stop)
assert(not ok)
assert(string.find(err, "no movie"))

ok, err = pcall(movie.rerecordcounting)
assert(not ok)
assert(string.find(err, "no parameters specified"))
`)
	test.ExpectEquality(t, f.con.MovieMode(), host.MovieInactive)
}

func TestEmu(t *testing.T) {
	f := newFixture(t, nil)
	f.con.Step()
	f.con.Step()

	f.finish(`
assert(emu.framecount() == 2)
assert(emu.lagcount() == 0)
assert(emu.lagged() == false)
emu.message("hello")
`)

	msgs := f.con.Messages()
	test.DemandEquality(t, len(msgs), 2)
	test.ExpectEquality(t, msgs[0], "hello")
}

func TestPause(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
emu.speedmode("turbo")
emu.pause()
memory.writebyte(0x100, 1)
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectSuccess(t, f.con.Paused())
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(0))
	sp, _ := f.ses.Speed()
	test.ExpectEquality(t, sp, host.SpeedNormal)

	// a paused console does not step
	test.ExpectFailure(t, f.con.Step())

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(1))

	// pause state is restored when the script ends
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectFailure(t, f.con.Paused())
}

func TestGUI(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
gui.register(function() gui.pixel(1, 1, "red") end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)

	fb := image.NewRGBA(image.Rect(0, 0, 32, 32))
	test.ExpectSuccess(t, f.ses.Present(fb))
	c := fb.RGBAAt(1, 1)
	test.ExpectEquality(t, c.R, uint8(0xff))
	test.ExpectEquality(t, c.G, uint8(0))
	test.ExpectEquality(t, c.B, uint8(0))

	// pixels not drawn to are unchanged
	test.ExpectEquality(t, fb.RGBAAt(2, 2), color.RGBA{})

	// compositing can be turned off
	f.ses.EnableGUI(false)
	fb = image.NewRGBA(image.Rect(0, 0, 32, 32))
	test.ExpectFailure(t, f.ses.Present(fb))
	test.ExpectEquality(t, fb.RGBAAt(1, 1), color.RGBA{})
	f.ses.EnableGUI(true)

	// nothing is drawn after the script ends
	f.ses.Stop()
	fb = image.NewRGBA(image.Rect(0, 0, 32, 32))
	test.ExpectFailure(t, f.ses.Present(fb))
}

func TestGUIError(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
gui.register(function() error("bad gui") end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	f.ses.Present(f.con.Framebuffer())
	test.DemandEquality(t, f.sink.titles(), "Lua callback error")
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[0].Message, "bad gui"))

	// the function is removed after an error
	f.ses.Present(f.con.Framebuffer())
	test.ExpectEquality(t, len(f.sink.popups), 1)
	test.ExpectSuccess(t, f.ses.Running())
}

func TestGUIDrawing(t *testing.T) {
	f := newFixture(t, nil)
	f.finish(`
gui.text(0, 0, "hello")
gui.text(0, 10, "hello", "red")
gui.text(0, 20, "hello", 0x00ff00ff, "#000000")
assert(not pcall(gui.text, 0, 0, "x", "nocolour"))
assert(not pcall(gui.text, 0, 0, "x", "white", "nocolour"))

gui.box(0, 0, 10, 10, "red")
gui.drawrect(0, 0, 10, 10, "blue")
gui.fillbox(20, 20, 30, 30, "#ff000080")
gui.line(0, 0, 100, 50, "white")
gui.circle(50, 50, 10, "yellow")
gui.fillcircle(50, 50, 5, "green")
assert(not pcall(gui.box, 0, 0, 1, 1))

gui.opacity(0.5)
gui.transparency(2)
gui.clearuncommitted()
`)
	test.ExpectFailure(t, f.ses.Canvas().Used())
}

func TestGUIGD(t *testing.T) {
	f := newFixture(t, nil)
	f.finish(`
local shot = gui.gdscreenshot()
assert(#shot == 11 + 640 * 512 * 4)

gui.gdoverlay(shot)
gui.gdoverlay(10, 10, shot)
gui.gdoverlay(10, 10, shot, 0, 0, 5, 5)
gui.gdoverlay(10, 10, shot, 0, 0, 5, 5, 0.5)
gui.drawimage(shot, 0)
assert(not pcall(gui.gdoverlay, "junk"))
`)
}

func TestGetPixel(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
emu.frameadvance()
local r, g, b = gui.getpixel(2, 3)
memory.writebyte(0x100, r)
memory.writebyte(0x101, g)
memory.writebyte(0x102, b)
r, g, b = gui.readpixel(1000, 1000)
assert(r == 0 and g == 0 and b == 0)
`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)

	fb := image.NewRGBA(image.Rect(0, 0, 32, 32))
	fb.SetRGBA(2, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	f.ses.Present(fb)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.sink.titles(), "")
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(10))
	test.ExpectEquality(t, f.con.Read8(0x101), uint8(20))
	test.ExpectEquality(t, f.con.Read8(0x102), uint8(30))
}

func TestSaveScreenshot(t *testing.T) {
	f := newFixture(t, nil)
	fn := filepath.Join(f.dir, "shot.png")

	f.finish(fmt.Sprintf(`
gui.box(0, 0, 10, 10, "red")
assert(gui.savescreenshot(%q) == %q)
assert(not pcall(gui.savescreenshot, "shot.xyz"))
`, fn, fn))

	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(f.notices.String(), string(notifications.NotifyScreenshot)))
}

func TestPopup(t *testing.T) {
	f := newFixture(t, nil)
	f.sink.answer = notifications.AnswerNo
	f.load(`
assert(input.popup("q") == "no")
assert(gui.popup("m") == "ok")
assert(gui.popup("w", "yesnocancel", "warning") == "no")
assert(gui.popup("x", "bogus", "bogus") == "ok")
`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.DemandEquality(t, f.sink.titles(), "Question,Notice,Warning,Notice")
	test.ExpectEquality(t, f.sink.popups[0].Buttons, notifications.ButtonsYesNo)
	test.ExpectEquality(t, f.sink.popups[0].Message, "q")
	test.ExpectEquality(t, f.sink.popups[1].Buttons, notifications.ButtonsOK)
	test.ExpectEquality(t, f.sink.popups[2].Buttons, notifications.ButtonsYesNoCancel)
	test.ExpectEquality(t, f.sink.popups[2].Icon, notifications.IconWarning)
	test.ExpectEquality(t, f.sink.popups[3].Icon, notifications.IconMessage)
}

func TestInput(t *testing.T) {
	f := newFixture(t, nil)
	f.con.SetKeys([]string{"a", "space"}, 12, 34)
	f.finish(`
local t = input.get()
assert(t.a == true)
assert(t.space == true)
assert(t.b == nil)
assert(t.xmouse == 12)
assert(t.ymouse == 34)
assert(input.read().a == true)
`)
}

func TestBits(t *testing.T) {
	f := newFixture(t, nil)
	f.finish(`
assert(AND(0xff, 0x0f) == 0x0f)
assert(AND(0xff, 0x0f, 0x03) == 0x03)
assert(OR(1, 2, 4) == 7)
assert(XOR(3, 1) == 2)
assert(SHIFT(256, 4) == 16)
assert(SHIFT(1, -4) == 16)
assert(BIT(0, 3) == 9)
assert(not pcall(BIT, 64))
`)
}

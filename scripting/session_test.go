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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/scheduler"
	"github.com/jetsetilly/emuscript/scripting"
	"github.com/jetsetilly/emuscript/simhost"
	"github.com/jetsetilly/emuscript/test"
)

// sink records every popup and gives the same answer to all of them.
type sink struct {
	answer notifications.Answer
	popups []notifications.Popup
}

func (k *sink) Popup(p notifications.Popup) (notifications.Answer, error) {
	k.popups = append(k.popups, p)
	if p.Valid(k.answer) {
		return k.answer, nil
	}
	return p.Default(), nil
}

func (k *sink) titles() string {
	var s []string
	for _, p := range k.popups {
		s = append(s, p.Title)
	}
	return strings.Join(s, ",")
}

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice) error {
	*n = append(*n, notice)
	return nil
}

func (n notices) String() string {
	var s []string
	for _, v := range n {
		s = append(s, string(v))
	}
	return strings.Join(s, ",")
}

type fixture struct {
	t       *testing.T
	dir     string
	con     *simhost.Console
	ses     *scripting.Session
	sink    *sink
	notices *notices
}

// newFixture creates a session attached to a simulated console. the
// preferences can be changed by the prep function before the session is
// created.
func newFixture(t *testing.T, prep func(*scripting.Preferences)) *fixture {
	t.Helper()

	dir := t.TempDir()
	slots := filepath.Join(dir, "slots")
	test.DemandSuccess(t, os.MkdirAll(slots, 0700))

	prf, err := scripting.NewPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prf.SavestateDir.Set(filepath.Join(dir, "anon")))
	if prep != nil {
		prep(prf)
	}

	f := &fixture{
		t:       t,
		dir:     dir,
		con:     simhost.NewConsole(slots),
		sink:    &sink{answer: notifications.AnswerOK},
		notices: &notices{},
	}
	f.ses = scripting.NewSession(f.con, f.sink, prf)
	f.ses.SetNotify(f.notices)
	f.con.SetPoller(f.ses.Poll)
	f.con.SetWriteHook(f.ses.WriteInform)

	return f
}

func (f *fixture) load(src string) {
	f.t.Helper()
	test.DemandSuccess(f.t, f.ses.LoadSource("test.lua", []byte(src)))
}

// frame runs one frame in the order a host is expected to.
func (f *fixture) frame() scheduler.Outcome {
	f.ses.BeforeEmulation()
	f.con.Step()
	f.ses.AfterEmulation()
	o := f.ses.FrameBoundary()
	f.ses.Present(f.con.Framebuffer())
	return o
}

// finish runs the script for one frame and expects it to end without errors.
func (f *fixture) finish(src string) {
	f.t.Helper()
	f.load(src)
	test.ExpectEquality(f.t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(f.t, f.sink.titles(), "")
	for _, p := range f.sink.popups {
		f.t.Log(p.Message)
	}
}

func TestFrameAdvance(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
local n = 0
while true do
	n = n + 1
	memory.writebyte(0x100, n)
	emu.frameadvance()
end`)

	for range 3 {
		test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	}
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(3))
	test.ExpectSuccess(t, f.ses.Running())
	test.ExpectEquality(t, f.notices.String(), "NotifyScriptLoaded")

	f.ses.Stop()
	test.ExpectFailure(t, f.ses.Running())
	test.ExpectEquality(t, f.frame(), scheduler.Idle)
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(3))
}

func TestNaturalEnd(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`memory.writebyte(0x100, 1)`)

	test.ExpectEquality(t, f.frame(), scheduler.Finished)
	test.ExpectFailure(t, f.ses.Running())
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(1))

	msgs := f.con.Messages()
	test.DemandEquality(t, len(msgs), 1)
	test.ExpectEquality(t, msgs[0], "Script died of natural causes.")

	test.ExpectEquality(t, len(*f.notices), 2)
	test.ExpectEquality(t, (*f.notices)[1], notifications.NotifyScriptStopped)
}

func TestRuntimeError(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`error("boom")`)

	test.ExpectEquality(t, f.frame(), scheduler.Failed)
	test.ExpectFailure(t, f.ses.Running())
	test.DemandEquality(t, f.sink.titles(), "Lua run error")
	test.ExpectEquality(t, f.sink.popups[0].Icon, notifications.IconError)
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[0].Message, "boom"))
	test.ExpectEquality(t, len(f.con.Messages()), 0)
}

func TestCompileError(t *testing.T) {
	f := newFixture(t, nil)

	err := f.ses.LoadSource("bad.lua", []byte(`this is not lua`))
	test.ExpectSuccess(t, curated.Is(err, scheduler.CompileError))
	test.ExpectFailure(t, f.ses.Running())
	test.ExpectEquality(t, f.sink.titles(), "Lua load error")

	// a failed load leaves the current script running
	f.load(`while true do emu.frameadvance() end`)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	test.ExpectFailure(t, f.ses.LoadSource("bad.lua", []byte(`end`)))
	test.ExpectSuccess(t, f.ses.Running())
	test.ExpectEquality(t, f.ses.Scheduler().Name(), "test.lua")
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
}

func TestStopRunsExit(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
emu.registerexit(function() memory.writebyte(0x200, 1) end)
while true do emu.frameadvance() end`)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)

	// loading another script abandons the first without calling its exit
	// function
	f.load(`
emu.registerexit(function() memory.writebyte(0x201, 7) end)
while true do emu.frameadvance() end`)
	test.ExpectEquality(t, f.con.Read8(0x200), uint8(0))
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)

	f.ses.Stop()
	test.ExpectEquality(t, f.con.Read8(0x200), uint8(0))
	test.ExpectEquality(t, f.con.Read8(0x201), uint8(7))
	test.ExpectFailure(t, f.ses.Running())

	test.ExpectEquality(t, f.notices.String(), "NotifyScriptLoaded,NotifyScriptLoaded,NotifyScriptStopped")

	// stopping again does nothing
	f.ses.Stop()
	test.ExpectEquality(t, len(*f.notices), 3)
}

func TestReload(t *testing.T) {
	f := newFixture(t, nil)

	test.ExpectFailure(t, f.ses.Reload())

	fn := filepath.Join(f.dir, "reload.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`memory.writebyte(0x100, 1)`), 0600))
	test.DemandSuccess(t, f.ses.Load(fn))
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(1))

	// reload reads the file again
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`memory.writebyte(0x100, 2)`), 0600))
	test.DemandSuccess(t, f.ses.Reload())
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(2))

	// scripts loaded from source are reloaded from the same source
	f.load(`memory.writebyte(0x101, memory.readbyte(0x101) + 1)`)
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.DemandSuccess(t, f.ses.Reload())
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.con.Read8(0x101), uint8(2))

	// a missing file
	test.ExpectFailure(t, f.ses.Load(filepath.Join(f.dir, "missing.lua")))
}

func TestTeardown(t *testing.T) {
	f := newFixture(t, nil)
	f.con.SetPaused(true)

	f.load(`
emu.unpause()
joypad.set(1, {x=true})
gui.box(0, 0, 10, 10, "red")
emu.speedmode("maximum")
movie.rerecordcounting(true)
emu.frameadvance()`)

	// unpause asks for a frame boundary
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectFailure(t, f.con.Paused())
	test.ExpectEquality(t, f.ses.FrameSkip(), 0)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectSuccess(t, f.ses.UsingJoypad(1))
	test.ExpectEquality(t, f.ses.FrameSkip(), 1)
	test.ExpectSuccess(t, f.ses.Canvas().Used())
	test.ExpectSuccess(t, f.ses.RerecordCountSkip())

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectFailure(t, f.ses.UsingJoypad(1))
	test.ExpectEquality(t, f.ses.FrameSkip(), 0)
	test.ExpectFailure(t, f.ses.Canvas().Used())
	test.ExpectFailure(t, f.ses.RerecordCountSkip())
	test.ExpectSuccess(t, f.con.Paused())
}

func TestVideoMode(t *testing.T) {
	f := newFixture(t, nil)

	f.load(`
gui.box(0, 0, 10, 10, "red")
emu.frameadvance()
gui.box(0, 0, 10, 10, "red")
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.DemandSuccess(t, f.ses.Canvas().Used())

	// same mode leaves the overlay alone
	f.ses.SetVideoMode(host.VideoStandard)
	test.ExpectEquality(t, f.ses.Canvas().Width(), 640)
	test.ExpectEquality(t, f.ses.Canvas().Height(), 512)
	test.ExpectSuccess(t, f.ses.Canvas().Used())

	f.ses.SetVideoMode(host.VideoHighRes)
	test.ExpectEquality(t, f.ses.Canvas().Width(), 1024)
	test.ExpectEquality(t, f.ses.Canvas().Height(), 1024)
	test.ExpectFailure(t, f.ses.Canvas().Used())

	// the script draws into the new overlay
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectSuccess(t, f.ses.Canvas().Used())
	test.ExpectEquality(t, f.ses.Canvas().Width(), 1024)
}

func TestSpeedMode(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
emu.speedmode("nothrottle")
emu.frameadvance()
local ok, err = pcall(emu.speedmode, "warp")
assert(not ok)
assert(string.find(err, "invalid mode warp"))
emu.frameadvance()`)

	test.ExpectEquality(t, f.ses.FrameSkip(), 0)
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.ses.FrameSkip(), -1)
	_, ok := f.ses.Speed()
	test.ExpectSuccess(t, ok)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	test.ExpectEquality(t, f.ses.FrameSkip(), -1)
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.sink.titles(), "")
}

func TestHooks(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
local f = function() end
assert(emu.registerbefore(f) == nil)
assert(emu.registerbefore(nil) == f)

emu.registerbefore(function() memory.writebyte(0x100, memory.readbyte(0x100) + 1) end)
emu.registerafter(function() memory.writebyte(0x101, memory.readbyte(0x101) + 2) end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)
	test.ExpectEquality(t, f.frame(), scheduler.Waiting)

	// the hooks are registered at the end of the first frame
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(2))
	test.ExpectEquality(t, f.con.Read8(0x101), uint8(4))
	test.ExpectEquality(t, f.sink.titles(), "")
}

func TestCallbackError(t *testing.T) {
	f := newFixture(t, nil)
	f.load(`
emu.registerbefore(function() emu.frameadvance() end)
emu.registerafter(function() error("after") end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)

	// callbacks cannot ask for a frame boundary
	f.ses.BeforeEmulation()
	test.DemandEquality(t, f.sink.titles(), "Lua callback error")
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[0].Message, scheduler.NestedSuspension))

	f.ses.AfterEmulation()
	test.DemandEquality(t, f.sink.titles(), "Lua callback error,Lua callback error")
	test.ExpectSuccess(t, strings.Contains(f.sink.popups[1].Message, "after"))

	// the script carries on
	test.ExpectSuccess(t, f.ses.Running())
	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
}

func TestWatchdogKill(t *testing.T) {
	f := newFixture(t, func(prf *scripting.Preferences) {
		test.DemandSuccess(t, prf.Budget.Set(2))
		test.DemandSuccess(t, prf.Interval.Set(100))
	})
	f.sink.answer = notifications.AnswerYes
	f.load(`while true do end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Failed)
	test.ExpectFailure(t, f.ses.Running())
	test.DemandEquality(t, f.sink.titles(), "Lua Script Stuck,Lua run error")
	test.ExpectEquality(t, f.sink.popups[0].Buttons, notifications.ButtonsYesNo)
	test.ExpectEquality(t, f.notices.String(), "NotifyScriptLoaded,NotifyScriptStopped,NotifyScriptKilled")
}

func TestWatchdogKillInCallback(t *testing.T) {
	f := newFixture(t, func(prf *scripting.Preferences) {
		test.DemandSuccess(t, prf.Budget.Set(2))
		test.DemandSuccess(t, prf.Interval.Set(100))
	})
	f.sink.answer = notifications.AnswerYes
	f.load(`
emu.registerbefore(function() while true do end end)
while true do emu.frameadvance() end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Waiting)
	f.ses.BeforeEmulation()
	test.ExpectFailure(t, f.ses.Running())
	test.ExpectEquality(t, f.sink.titles(), "Lua Script Stuck,Lua run error")
	test.ExpectEquality(t, (*f.notices)[len(*f.notices)-1], notifications.NotifyScriptKilled)
}

func TestWatchdogDeclined(t *testing.T) {
	f := newFixture(t, func(prf *scripting.Preferences) {
		test.DemandSuccess(t, prf.Budget.Set(2))
		test.DemandSuccess(t, prf.Interval.Set(100))
	})
	f.sink.answer = notifications.AnswerNo
	f.load(`
local i = 0
while i < 10000 do i = i + 1 end
memory.writebyte(0x100, 1)`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.con.Read8(0x100), uint8(1))

	// the question is only asked once
	test.ExpectEquality(t, f.sink.titles(), "Lua Script Stuck")
}

func TestWatchdogDisabled(t *testing.T) {
	f := newFixture(t, func(prf *scripting.Preferences) {
		test.DemandSuccess(t, prf.Budget.Set(2))
		test.DemandSuccess(t, prf.Interval.Set(100))
		test.DemandSuccess(t, prf.Watchdog.Set(false))
	})
	f.load(`
local i = 0
while i < 10000 do i = i + 1 end`)

	test.ExpectEquality(t, f.ses.FrameBoundary(), scheduler.Finished)
	test.ExpectEquality(t, f.sink.titles(), "")
}

func TestNoSink(t *testing.T) {
	dir := t.TempDir()
	prf, err := scripting.NewPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	con := simhost.NewConsole(dir)
	ses := scripting.NewSession(con, nil, prf)
	test.DemandSuccess(t, ses.LoadSource("nosink.lua", []byte(`
assert(input.popup("question") == "yes")
assert(gui.popup("message") == "ok")
error("unseen")`)))

	test.ExpectEquality(t, ses.FrameBoundary(), scheduler.Failed)
}

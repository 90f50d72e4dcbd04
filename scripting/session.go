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
package scripting

import (
	"fmt"
	"image"

	"github.com/jetsetilly/emuscript/assert"
	"github.com/jetsetilly/emuscript/callbacks"
	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/joypad"
	"github.com/jetsetilly/emuscript/logger"
	"github.com/jetsetilly/emuscript/memwatch"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/overlay"
	"github.com/jetsetilly/emuscript/overlay/colour"
	"github.com/jetsetilly/emuscript/random"
	"github.com/jetsetilly/emuscript/savestate"
	"github.com/jetsetilly/emuscript/scheduler"
	"github.com/jetsetilly/emuscript/scriptsrc"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal errors.
const (
	CallbackError = "callback (%s): %v"
	UsageError    = "%s: %v"
	NoScript      = "no script has been loaded"
)

// the message given to the host when a script finishes by itself.
const naturalCauses = "Script died of natural causes."

// the question asked when the watchdog budget has been used.
const watchdogQuestion = "The Lua script running has been running a long time. It may have gone crazy. Kill it?\n\n(No = don't check anymore either)"

// Session is the scripting session. It owns the script and everything the
// script can change and is the point of contact between the emulator and the
// script.
//
// All functions must be called from the same goroutine.
type Session struct {
	goroutine assert.Goroutine

	host   host.Host
	sink   notifications.Sink
	notify notifications.Notify
	prefs  *Preferences

	sched   *scheduler.Scheduler
	canvas  *overlay.Canvas
	colours *colour.Resolver
	watches *memwatch.Registry
	pads    joypad.Arbiter
	states  *savestate.Manager
	hooks   callbacks.Table

	speed         host.SpeedMode
	skipRerecords bool

	// whether the host was paused when the script was loaded
	wasPaused bool

	// the framebuffer most recently given to Present()
	fb *image.RGBA

	// the file the current script was loaded from. empty if the script was
	// loaded with LoadSource()
	filename string
}

// NewSession is the preferred method of initialisation for the Session type.
//
// The sink is used for popups and for reporting errors. If the sink is nil
// then errors are only logged and popups receive the default answer.
func NewSession(h host.Host, sink notifications.Sink, prefs *Preferences) *Session {
	s := &Session{
		host:  h,
		sink:  sink,
		prefs: prefs,
	}
	s.goroutine.Bind()

	s.sched = scheduler.NewScheduler(s, prefs.options(s.decide))
	s.canvas = overlay.NewCanvas(host.VideoStandard)
	s.canvas.SetEnabled(prefs.GUI.Get().(bool))
	s.colours = colour.NewResolver(random.NewRandom(h))
	s.states = savestate.NewManager(h, prefs.SavestateDir.Get().(string))
	s.newRegistry()

	return s
}

func (s *Session) newRegistry() {
	s.watches = memwatch.NewRegistry(s.host, uint32(s.prefs.Window.Get().(int)))
	s.watches.SetReporter(func(addr uint32, err error) {
		s.callbackError(fmt.Sprintf("memory %#x", addr), err)
	})
}

// SetNotify sets the receiver of session notices. Can be nil.
func (s *Session) SetNotify(n notifications.Notify) {
	s.notify = n
}

func (s *Session) notice(n notifications.Notice) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Notify(n); err != nil {
		logger.Log(logger.Allow, "scripting", err)
	}
}

// popup asks the sink to display the popup. The default answer is returned if
// there is no sink or if the sink fails.
func (s *Session) popup(p notifications.Popup) notifications.Answer {
	if s.sink == nil {
		return p.Default()
	}
	a, err := s.sink.Popup(p)
	if err != nil {
		logger.Log(logger.Allow, "scripting", err)
		return p.Default()
	}
	if !p.Valid(a) {
		return p.Default()
	}
	return a
}

// report an error to the log and to the user.
func (s *Session) report(title string, err error) {
	logger.Log(logger.Allow, "scripting", err)
	if s.sink == nil {
		return
	}
	_, perr := s.sink.Popup(notifications.Popup{
		Title:   title,
		Message: err.Error(),
		Buttons: notifications.ButtonsOK,
		Icon:    notifications.IconError,
	})
	if perr != nil {
		logger.Log(logger.Allow, "scripting", perr)
	}
}

// decide is the watchdog's decider.
func (s *Session) decide() bool {
	a := s.popup(notifications.Popup{
		Title:   "Lua Script Stuck",
		Message: watchdogQuestion,
		Buttons: notifications.ButtonsYesNo,
		Icon:    notifications.IconQuestion,
	})
	return a == notifications.AnswerYes
}

// Canvas returns the overlay used by the script.
func (s *Session) Canvas() *overlay.Canvas {
	return s.canvas
}

// Scheduler returns the scheduler running the script.
func (s *Session) Scheduler() *scheduler.Scheduler {
	return s.sched
}

// Load the script in the named file. The file can be a Lua source file or an
// archive containing Lua source.
//
// A script that fails to compile does not replace the current script.
func (s *Session) Load(filename string) error {
	s.goroutine.Check("Load")

	scr, err := scriptsrc.Load(filename)
	if err != nil {
		s.report("Lua load error", err)
		return err
	}

	if err := s.loadSource(scr.Name, scr.Source); err != nil {
		return err
	}
	s.filename = filename

	return nil
}

// LoadSource is like Load() except that the source is supplied directly. The
// name is used in error messages.
func (s *Session) LoadSource(name string, source []byte) error {
	s.goroutine.Check("LoadSource")

	if err := s.loadSource(name, source); err != nil {
		return err
	}
	s.filename = ""

	return nil
}

func (s *Session) loadSource(name string, source []byte) error {
	wasActive := s.sched.Active()

	s.sched.SetOptions(s.prefs.options(s.decide))
	if err := s.sched.Load(name, source); err != nil {
		s.report("Lua load error", err)
		return err
	}

	// the previous script is abandoned without running its exit hook
	if wasActive {
		s.release()
	}
	s.newRegistry()
	s.states = savestate.NewManager(s.host, s.prefs.SavestateDir.Get().(string))
	s.canvas.SetEnabled(s.prefs.GUI.Get().(bool))
	s.wasPaused = s.host.Paused()

	logger.Logf(logger.Allow, "scripting", "running %s", name)
	s.notice(notifications.NotifyScriptLoaded)

	return nil
}

// Reload the current script. Scripts loaded from a file are read from the
// file again.
func (s *Session) Reload() error {
	s.goroutine.Check("Reload")

	if s.filename != "" {
		return s.Load(s.filename)
	}
	if s.sched.Name() == "" {
		return curated.Errorf(NoScript)
	}
	return s.LoadSource(s.sched.Name(), s.sched.Source())
}

// Running returns true if a script is loaded and has not terminated.
func (s *Session) Running() bool {
	return s.sched.Active()
}

// Stop the script. The script's exit function is called if one has been
// registered.
func (s *Session) Stop() {
	s.goroutine.Check("Stop")

	if !s.sched.Active() {
		return
	}

	if s.sched.Resuming() {
		logger.Log(logger.Allow, "scripting", "cannot stop a script while it is running")
		return
	}

	s.call(callbacks.Exit)
	if s.sched.Active() {
		s.teardown()
	}
}

// release everything owned by the script and restore the host to the state
// it was in before the script started.
func (s *Session) release() {
	s.pads.Reset()
	s.canvas.Clear()
	s.colours.Reset()
	s.speed = host.SpeedNormal
	s.skipRerecords = false

	if s.host.Paused() != s.wasPaused {
		s.host.SetPaused(s.wasPaused)
	}

	s.states.ReclaimAll()
	s.watches.Clear()
	s.hooks.Clear()
}

func (s *Session) teardown() {
	s.release()
	s.sched.Terminate()
	s.notice(notifications.NotifyScriptStopped)
}

// FrameBoundary should be called by the host once per frame, at the point
// where emulation of a frame has completed. The script runs until it asks
// for the next frame boundary.
func (s *Session) FrameBoundary() scheduler.Outcome {
	s.goroutine.Check("FrameBoundary")

	outcome, err := s.sched.Advance()

	switch outcome {
	case scheduler.Finished:
		s.host.DisplayMessage(naturalCauses)
		s.teardown()
	case scheduler.Abandoned:
		s.teardown()
	case scheduler.Failed:
		s.report("Lua run error", err)
		s.teardown()
		if curated.Has(err, scheduler.WatchdogKill) {
			s.notice(notifications.NotifyScriptKilled)
		}
	}

	return outcome
}

// call the function registered for the hook.
func (s *Session) call(h callbacks.Hook, args ...lua.LValue) error {
	fn := s.hooks.Get(h)
	if fn == nil {
		return nil
	}
	err := s.sched.Call(fn, args...)
	if err != nil {
		s.callbackError(h.String(), err)
	}
	return err
}

// callbackError reports an error from a callback. Callback errors do not end
// the script unless the watchdog killed it.
func (s *Session) callbackError(name string, err error) {
	if s.sched.Killed() {
		// the main body of the script is still running. the error will be
		// seen by FrameBoundary()
		if s.sched.Resuming() {
			return
		}
		s.report("Lua run error", err)
		if s.sched.Active() {
			s.teardown()
		}
		s.notice(notifications.NotifyScriptKilled)
		return
	}
	s.report("Lua callback error", curated.Errorf(CallbackError, name, err))
}

// BeforeEmulation should be called by the host before each frame is
// emulated.
func (s *Session) BeforeEmulation() {
	s.goroutine.Check("BeforeEmulation")
	s.call(callbacks.BeforeEmulation)
}

// AfterEmulation should be called by the host after each frame is emulated.
func (s *Session) AfterEmulation() {
	s.goroutine.Check("AfterEmulation")
	s.call(callbacks.AfterEmulation)
}

// WriteInform should be called by the host after every write to memory.
// Watched addresses that have changed have their callbacks run.
func (s *Session) WriteInform(addr uint32) {
	s.goroutine.Check("WriteInform")

	if !s.sched.Active() || s.watches.Len() == 0 {
		return
	}

	// a write to any address can change a watched address if the write is
	// wider than one byte
	if addr > s.watches.Window()+3 {
		return
	}

	s.watches.Sweep()
}

// SetVideoMode changes the size of the overlay.
func (s *Session) SetVideoMode(mode host.VideoMode) {
	s.canvas.SetMode(mode)
}

// Present should be called by the host with the framebuffer that is about to
// be displayed. The script's GUI function is run and the overlay is
// composited onto the framebuffer. Returns true if the framebuffer was
// changed.
func (s *Session) Present(fb *image.RGBA) bool {
	s.goroutine.Check("Present")

	s.fb = fb

	if s.sched.Active() {
		if err := s.call(callbacks.GUI); err != nil {
			s.hooks.Register(callbacks.GUI, nil)
		}
	}

	return s.canvas.Composite(fb)
}

// ClearGUI discards any drawing that has not been presented.
func (s *Session) ClearGUI() {
	s.canvas.Clear()
}

// EnableGUI turns the compositing of the overlay on or off.
func (s *Session) EnableGUI(enabled bool) {
	s.canvas.SetEnabled(enabled)
}

// UsingJoypad returns true if the script has set the buttons for the port.
func (s *Session) UsingJoypad(port int) bool {
	return s.pads.Owned(port)
}

// ReadJoypad returns the buttons set by the script for the port. The script
// releases the port.
func (s *Session) ReadJoypad(port int) uint16 {
	m, _ := s.pads.Consume(port)
	return m
}

// Poll returns the buttons for the port. If the script has set buttons for
// the port then they are returned instead of the physical buttons. Suitable
// for use as a simhost.Poller.
func (s *Session) Poll(port int, physical uint16) uint16 {
	return s.pads.Poll(port, physical)
}

// Speed returns the speed mode requested by the script and whether the
// script is in control of the emulation speed.
func (s *Session) Speed() (host.SpeedMode, bool) {
	return s.speed, s.sched.Active()
}

// FrameSkip returns -1 if the host should never skip frames, 1 if the host
// should skip frames and 0 if the host should decide for itself.
func (s *Session) FrameSkip() int {
	if !s.sched.Active() {
		return 0
	}
	switch s.speed {
	case host.SpeedNoThrottle:
		return -1
	case host.SpeedMaximum:
		return 1
	}
	return 0
}

// RerecordCountSkip returns true if the script has asked for rerecords not to
// be counted.
func (s *Session) RerecordCountSkip() bool {
	return s.sched.Active() && s.skipRerecords
}

func (s *Session) String() string {
	return s.sched.String()
}

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
// Package window presents the simulated console in a window and runs the
// scripting session alongside it.
//
// Keyboard controls for the first controller are the arrow keys, Z, X, A, S,
// Q, W, Enter and Backspace. The function keys control the application:
//
//	F5   reload the script
//	F6   stop the script
//	F8   pause or resume the emulation
//	F9   show or hide the script overlay
//	F10  copy the screen to the clipboard
//	F11  toggle fullscreen
//	F12  save a screenshot
//	Esc  quit
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/gui"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/logger"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/paths"
	"github.com/jetsetilly/emuscript/screenshot"
	"github.com/jetsetilly/emuscript/scripting"
	"github.com/jetsetilly/emuscript/simhost"
	"github.com/jetsetilly/emuscript/version"
)

// number of ticks a message is shown for.
const messageTicks = 180

// Window implements the gui.GUI interface and the ebiten.Game interface.
//
// The scripting session is created by the first call to Update() and is
// only ever used from Update(). The session is stopped when the window is
// closed.
type Window struct {
	con    *simhost.Console
	prefs  *scripting.Preferences
	sink   notifications.Sink
	script string

	ses *scripting.Session

	// the framebuffer with the script overlay composited onto it
	present *image.RGBA

	state   gui.EmulationState
	scale   int
	title   string
	overlay bool

	// the most recent message from the console or from the session
	message      string
	messageTicks int

	clipboardOnce sync.Once
	clipboardOK   bool

	// set by Close()
	quit bool

	// guards the feature values that can be set from other goroutines
	crit sync.Mutex
}

// NewWindow is the preferred method of initialisation for the Window type.
// The script is loaded when the window opens. An empty script means that the
// console runs without a script.
func NewWindow(con *simhost.Console, prefs *scripting.Preferences, sink notifications.Sink, script string) *Window {
	return &Window{
		con:     con,
		prefs:   prefs,
		sink:    sink,
		script:  script,
		present: image.NewRGBA(image.Rect(0, 0, simhost.ScreenWidth, simhost.ScreenHeight)),
		scale:   2,
		title:   version.ApplicationName,
		overlay: prefs.GUI.Get().(bool),
	}
}

func featureArg[T any](request gui.FeatureReq, args []gui.FeatureReqData) (T, error) {
	var v T
	if len(args) != 1 {
		return v, curated.Errorf(gui.FeatureArguments, request)
	}
	v, ok := args[0].(T)
	if !ok {
		return v, curated.Errorf(gui.FeatureArguments, request)
	}
	return v, nil
}

// SetFeature implements the gui.GUI interface.
func (w *Window) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	w.crit.Lock()
	defer w.crit.Unlock()

	switch request {
	case gui.ReqFullScreen:
		v, err := featureArg[bool](request, args)
		if err != nil {
			return err
		}
		ebiten.SetFullscreen(v)

	case gui.ReqScale:
		v, err := featureArg[int](request, args)
		if err != nil {
			return err
		}
		w.scale = max(1, v)
		ebiten.SetWindowSize(simhost.ScreenWidth*w.scale, simhost.ScreenHeight*w.scale)

	case gui.ReqOverlay:
		v, err := featureArg[bool](request, args)
		if err != nil {
			return err
		}
		w.overlay = v

	case gui.ReqTitle:
		v, err := featureArg[string](request, args)
		if err != nil {
			return err
		}
		w.title = v
		ebiten.SetWindowTitle(v)

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// GetFeature implements the gui.GUI interface.
func (w *Window) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	w.crit.Lock()
	defer w.crit.Unlock()

	switch request {
	case gui.ReqState:
		return w.state, nil
	case gui.ReqFullScreen:
		return ebiten.IsFullscreen(), nil
	case gui.ReqScale:
		return w.scale, nil
	case gui.ReqOverlay:
		return w.overlay, nil
	case gui.ReqTitle:
		return w.title, nil
	}

	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}

// Run the window. Must be called from the main thread. Returns when the
// window has been closed.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(simhost.ScreenWidth*w.scale, simhost.ScreenHeight*w.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Close asks the window to close. The window closes at the next tick.
func (w *Window) Close() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.quit = true
}

// Notify implements the notifications.Notify interface.
func (w *Window) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyScriptLoaded:
		w.show(fmt.Sprintf("running %s", w.ses.Scheduler().Name()))
	case notifications.NotifyScriptStopped:
		w.show("script stopped")
	case notifications.NotifyScriptKilled:
		w.show("script killed")
	case notifications.NotifyScreenshot:
		w.show("screenshot saved")
	}
	return nil
}

func (w *Window) show(msg string) {
	w.message = msg
	w.messageTicks = messageTicks
}

func (w *Window) open() {
	w.ses = scripting.NewSession(w.con, w.sink, w.prefs)
	w.ses.SetNotify(w)
	w.con.SetPoller(w.ses.Poll)
	w.con.SetWriteHook(w.ses.WriteInform)

	if w.script != "" {
		// errors have been reported by the session
		_ = w.ses.Load(w.script)
	}

	w.state = stateOf(w.con)
}

// stateOf returns the emulation state of the console.
func stateOf(con *simhost.Console) gui.EmulationState {
	if con.Paused() {
		return gui.StatePaused
	}
	return gui.StateRunning
}

// the number of frames to emulate every tick for a speed mode.
func framesPerTick(speed host.SpeedMode) int {
	switch speed {
	case host.SpeedTurbo:
		return 2
	case host.SpeedMaximum:
		return 4
	case host.SpeedNoThrottle:
		return 8
	}
	return 1
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.crit.Lock()
	defer w.crit.Unlock()

	if w.ses == nil {
		w.open()
	}

	if w.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.state = gui.StateEnding
		w.ses.Stop()
		return ebiten.Termination
	}

	w.hotkeys()
	w.ses.EnableGUI(w.overlay)

	keys := ebiten.AppendPressedKeys(nil)
	w.con.SetPhysical(1, padMask(keys))
	mx, my := ebiten.CursorPosition()
	w.con.SetKeys(keyNames(keys), mx, my)

	frames := 1
	if speed, ok := w.ses.Speed(); ok {
		frames = framesPerTick(speed)
	}

	for range frames {
		if w.con.Paused() {
			break
		}
		w.ses.BeforeEmulation()
		w.con.Step()
		w.ses.AfterEmulation()
		w.ses.FrameBoundary()
	}

	w.present.Pix = append(w.present.Pix[:0], w.con.Framebuffer().Pix...)
	w.ses.Present(w.present)

	for _, m := range w.con.Messages() {
		w.show(m)
	}
	if w.messageTicks > 0 {
		w.messageTicks--
	}

	w.state = stateOf(w.con)

	return nil
}

func (w *Window) hotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := w.ses.Reload(); err != nil {
			w.show(err.Error())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		w.ses.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		w.con.SetPaused(!w.con.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		w.overlay = !w.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		w.copyScreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		w.saveScreen()
	}
}

func (w *Window) saveScreen() {
	fn := paths.UniqueFilename("screenshot", w.ses.Scheduler().Name()) + ".png"
	if err := screenshot.Save(w.present, fn, w.scale); err != nil {
		logger.Log(logger.Allow, "window", err)
		w.show(err.Error())
		return
	}
	logger.Logf(logger.Allow, "window", "screenshot saved to %s", fn)
	w.show(fmt.Sprintf("saved %s", fn))
}

func (w *Window) copyScreen() {
	w.clipboardOnce.Do(func() {
		w.clipboardOK = clipboard.Init() == nil
	})
	if !w.clipboardOK {
		w.show("clipboard not available")
		return
	}

	var b bytes.Buffer
	if err := screenshot.Encode(&b, w.present, screenshot.PNG); err != nil {
		logger.Log(logger.Allow, "window", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, b.Bytes())
	w.show("screen copied to clipboard")
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.present.Pix)
	if w.messageTicks > 0 {
		ebitenutil.DebugPrintAt(screen, w.message, 4, simhost.ScreenHeight-20)
	}
	if w.con.Paused() {
		ebitenutil.DebugPrintAt(screen, "paused", 4, 4)
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return simhost.ScreenWidth, simhost.ScreenHeight
}

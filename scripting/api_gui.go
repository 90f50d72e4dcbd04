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
	"image"

	"github.com/jetsetilly/emuscript/callbacks"
	"github.com/jetsetilly/emuscript/logger"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/paths"
	"github.com/jetsetilly/emuscript/screenshot"
	lua "github.com/yuin/gopher-lua"
)

// default colours for gui.text()
const (
	textColour    = 0xffffffff
	outlineColour = 0x000000ff
)

func (s *Session) guiLibrary() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"register":         s.guiRegister,
		"text":             s.guiText,
		"box":              s.guiBox,
		"line":             s.guiLine,
		"pixel":            s.guiPixel,
		"circle":           s.guiCircle,
		"opacity":          s.guiOpacity,
		"fillbox":          s.guiFillBox,
		"fillcircle":       s.guiFillCircle,
		"transparency":     s.guiTransparency,
		"popup":            s.guiPopup,
		"gdscreenshot":     s.guiGDScreenshot,
		"gdoverlay":        s.guiGDOverlay,
		"getpixel":         s.guiGetPixel,
		"clearuncommitted": s.guiClearUncommitted,
		"savescreenshot":   s.guiSaveScreenshot,

		"drawtext":   s.guiText,
		"drawbox":    s.guiBox,
		"drawline":   s.guiLine,
		"drawpixel":  s.guiPixel,
		"setpixel":   s.guiPixel,
		"writepixel": s.guiPixel,
		"drawcircle": s.guiCircle,
		"rect":       s.guiBox,
		"drawrect":   s.guiBox,
		"drawimage":  s.guiGDOverlay,
		"image":      s.guiGDOverlay,
		"readpixel":  s.guiGetPixel,
	}
}

// gui.register(function func)
//
// The function is called every time the host presents a frame. Returns the
// previously registered function.
func (s *Session) guiRegister(L *lua.LState) int {
	pushOptional(L, s.hooks.Register(callbacks.GUI, optFunction(L, 1)))
	return 1
}

// gui.text(int x, int y, string msg, colour = "white", outline = "black")
func (s *Session) guiText(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	msg := L.CheckString(3)

	c := s.optColour(L, 4, textColour)
	if L.GetTop() >= 4 {
		c = s.checkColour(L, 4)
	}
	o := s.optColour(L, 5, outlineColour)
	if L.GetTop() >= 5 {
		o = s.checkColour(L, 5)
	}

	s.canvas.Text(x, y, msg, c, o)
	return 0
}

// gui.box(int x1, int y1, int x2, int y2, colour)
func (s *Session) guiBox(L *lua.LState) int {
	x1 := L.CheckInt(1)
	y1 := L.CheckInt(2)
	x2 := L.CheckInt(3)
	y2 := L.CheckInt(4)
	s.canvas.Box(x1, y1, x2, y2, s.checkColour(L, 5))
	return 0
}

// gui.fillbox(int x1, int y1, int x2, int y2, colour)
func (s *Session) guiFillBox(L *lua.LState) int {
	x1 := L.CheckInt(1)
	y1 := L.CheckInt(2)
	x2 := L.CheckInt(3)
	y2 := L.CheckInt(4)
	s.canvas.FillBox(x1, y1, x2, y2, s.checkColour(L, 5))
	return 0
}

// gui.line(int x1, int y1, int x2, int y2, colour)
func (s *Session) guiLine(L *lua.LState) int {
	x1 := L.CheckInt(1)
	y1 := L.CheckInt(2)
	x2 := L.CheckInt(3)
	y2 := L.CheckInt(4)
	s.canvas.Line(x1, y1, x2, y2, s.checkColour(L, 5))
	return 0
}

// gui.pixel(int x, int y, colour)
func (s *Session) guiPixel(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	s.canvas.Pixel(x, y, s.checkColour(L, 3))
	return 0
}

// gui.circle(int x, int y, int radius, colour)
func (s *Session) guiCircle(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	r := L.CheckInt(3)
	s.canvas.Circle(x, y, r, s.checkColour(L, 4))
	return 0
}

// gui.fillcircle(int x, int y, int radius, colour)
func (s *Session) guiFillCircle(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	r := L.CheckInt(3)
	s.canvas.FillCircle(x, y, r, s.checkColour(L, 4))
	return 0
}

// gui.opacity(number alpha)
//
// 0.0 is transparent and 1.0 is opaque. Values above 1.0 increase the
// opacity of translucent colours.
func (s *Session) guiOpacity(L *lua.LState) int {
	s.colours.SetOpacity(float64(L.CheckNumber(1)))
	return 0
}

// gui.transparency(number strength)
//
// 0.0 is opaque and 4.0 is transparent.
func (s *Session) guiTransparency(L *lua.LState) int {
	s.colours.SetTransparency(float64(L.CheckNumber(1)))
	return 0
}

// gui.clearuncommitted()
func (s *Session) guiClearUncommitted(L *lua.LState) int {
	s.canvas.Clear()
	return 0
}

// framebuffer returns the most recently presented framebuffer. A black image
// the size of the overlay is used if nothing has been presented.
func (s *Session) framebuffer() *image.RGBA {
	if s.fb == nil {
		return image.NewRGBA(image.Rect(0, 0, s.canvas.Width(), s.canvas.Height()))
	}
	return s.fb
}

// gui.gdscreenshot()
//
// Returns the screen, with any drawing composited onto it, as a string in the
// GD image format.
func (s *Session) guiGDScreenshot(L *lua.LState) int {
	L.Push(lua.LString(s.canvas.Snapshot(s.framebuffer())))
	return 1
}

// gui.gdoverlay(int dx = 0, int dy = 0, string image, int sx, int sy, int sw,
// int sh, number alpha = 1.0)
//
// The source rectangle is optional.
func (s *Session) guiGDOverlay(L *lua.LState) int {
	var dx, dy int

	n := 1
	if v, ok := L.Get(n).(lua.LNumber); ok {
		dx = int(v)
		n++
		if v, ok := L.Get(n).(lua.LNumber); ok {
			dy = int(v)
			n++
		}
	}

	data := L.CheckString(n)
	n++

	region := L.GetTop()-n+1 >= 4
	var sx, sy, sw, sh int
	if region {
		sx = L.CheckInt(n)
		sy = L.CheckInt(n + 1)
		sw = L.CheckInt(n + 2)
		sh = L.CheckInt(n + 3)
		n += 4
	}

	alphaMul := s.colours.Modifier()
	if v, ok := L.Get(n).(lua.LNumber); ok {
		alphaMul = int(float64(alphaMul) * float64(v))
	}
	if alphaMul <= 0 {
		return 0
	}

	var err error
	if region {
		err = s.canvas.OverlayImageRegion(dx, dy, []byte(data), sx, sy, sw, sh, alphaMul)
	} else {
		err = s.canvas.OverlayImage(dx, dy, []byte(data), alphaMul)
	}
	if err != nil {
		L.RaiseError("%v", err)
	}

	return 0
}

// gui.getpixel(int x, int y)
//
// Returns the red, green and blue values of the pixel in the most recently
// presented frame. The overlay is not included. Pixels outside the frame are
// black.
func (s *Session) guiGetPixel(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)

	var r, g, b uint8
	if s.fb != nil && image.Pt(x, y).In(s.fb.Rect) {
		c := s.fb.RGBAAt(x, y)
		r, g, b = c.R, c.G, c.B
	}

	L.Push(lua.LNumber(r))
	L.Push(lua.LNumber(g))
	L.Push(lua.LNumber(b))
	return 3
}

// gui.savescreenshot(string filename = nil)
//
// Saves the screen, with any drawing composited onto it, to a file. The
// format is chosen by the filename extension. A filename is chosen if none is
// given. Returns the filename.
func (s *Session) guiSaveScreenshot(L *lua.LState) int {
	filename := L.OptString(1, "")
	if filename == "" {
		filename = paths.UniqueFilename("screenshot", s.sched.Name()) + ".png"
	}

	if err := screenshot.Save(s.canvas.View(s.framebuffer()), filename, 1); err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	logger.Logf(logger.Allow, "scripting", "screenshot saved to %s", filename)
	s.notice(notifications.NotifyScreenshot)

	L.Push(lua.LString(filename))
	return 1
}

// gui.popup(string msg, string type = "ok", string icon = "message")
func (s *Session) guiPopup(L *lua.LState) int {
	return s.doPopup(L, notifications.ButtonsOK, notifications.IconMessage)
}

// popup titles indexed by icon.
var popupTitles = map[notifications.Icon]string{
	notifications.IconMessage:  "Notice",
	notifications.IconQuestion: "Question",
	notifications.IconWarning:  "Warning",
	notifications.IconError:    "Error",
}

// doPopup shows a popup with the message in argument 1. Unrecognised types
// and icons are replaced by the defaults. The answer is returned to the
// script as a string.
func (s *Session) doPopup(L *lua.LState, defButtons notifications.Buttons, defIcon notifications.Icon) int {
	msg := L.CheckString(1)

	buttons := defButtons
	if v, ok := L.Get(2).(lua.LString); ok {
		buttons = notifications.ParseButtons(string(v), defButtons)
	}

	icon := defIcon
	if v, ok := L.Get(3).(lua.LString); ok {
		icon = notifications.ParseIcon(string(v), defIcon)
	}

	a := s.popup(notifications.Popup{
		Title:   popupTitles[icon],
		Message: msg,
		Buttons: buttons,
		Icon:    icon,
	})

	L.Push(lua.LString(a))
	return 1
}

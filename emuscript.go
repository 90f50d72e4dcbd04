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
package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/emuscript/gui"
	"github.com/jetsetilly/emuscript/gui/window"
	"github.com/jetsetilly/emuscript/logger"
	"github.com/jetsetilly/emuscript/modalflag"
	"github.com/jetsetilly/emuscript/notifications"
	"github.com/jetsetilly/emuscript/notifications/console"
	"github.com/jetsetilly/emuscript/notifications/dialog"
	"github.com/jetsetilly/emuscript/paths"
	"github.com/jetsetilly/emuscript/performance"
	"github.com/jetsetilly/emuscript/prefs"
	"github.com/jetsetilly/emuscript/screenshot"
	"github.com/jetsetilly/emuscript/scripting"
	"github.com/jetsetilly/emuscript/simhost"
	"github.com/jetsetilly/emuscript/statsview"
	"github.com/jetsetilly/emuscript/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation and running of GUIs that need to be
// run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// Run the gui. Returns when the gui has been closed.
	Run() error
}

// communication between the main() function and the launch() function. this is
// required because the window must be created and serviced on the main
// thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error

	// the result of Run() for the created gui
	finished chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
		finished:      make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			g, err := creator()
			if err != nil {
				sync.creationError <- err
				continue
			}
			sync.creation <- g

			// the gui runs on the main thread until it is closed
			err = g.Run()
			sync.finished <- err

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAY":
		err = play(md, sync)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to all modes.
type common struct {
	prefs     *string
	setPrefs  *string
	slots     *string
	log       *bool
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		prefs:    md.AddString("prefs", "", "preferences file"),
		setPrefs: md.AddString("setprefs", "", "override preferences for this run. eg. \"scripting.watchdog.budget::500\""),
		slots:    md.AddString("slots", "", "directory for numbered savestates"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// apply the common options and create the console and the preferences.
func (c common) prepare(output io.Writer) (*simhost.Console, *scripting.Preferences, error) {
	if *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(output)
	}

	if *c.setPrefs != "" {
		prefs.PushCommandLineStack(*c.setPrefs)
	}
	prf, err := scripting.NewPreferences(*c.prefs)
	if *c.setPrefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "! unused preferences: %s\n", unused)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	slots := *c.slots
	if slots == "" {
		slots, err = paths.MkResourceDir("slots")
	} else {
		err = os.MkdirAll(slots, 0o700)
	}
	if err != nil {
		return nil, nil, err
	}

	return simhost.NewConsole(slots), prf, nil
}

// noticePrinter implements the notifications.Notify interface by printing
// the notice.
type noticePrinter struct {
	output io.Writer
}

func (n noticePrinter) Notify(notice notifications.Notice) error {
	_, err := fmt.Fprintf(n.output, "! %s\n", notice)
	return err
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	opts := addCommon(md)
	frames := md.AddInt("frames", 0, "number of frames to run for. zero runs until the script ends")
	shot := md.AddString("screenshot", "", "save the final screen to a file")
	scale := md.AddInt("scale", 1, "scale of the screenshot")
	answer := md.AddString("answer", "", "answer every popup with this answer")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	fps := md.AddBool("fps", false, "report the speed of the emulation")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	con, prf, err := opts.prepare(os.Stdout)
	if err != nil {
		return err
	}

	var sink notifications.Sink
	if *answer != "" {
		sink = notifications.Fixed(*answer)
	} else {
		sink = console.NewSink(os.Stdin, os.Stdout)
	}

	ses := scripting.NewSession(con, sink, prf)
	ses.SetNotify(noticePrinter{output: os.Stdout})
	con.SetPoller(ses.Poll)
	con.SetWriteHook(ses.WriteInform)

	err = ses.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fb := image.NewRGBA(con.Framebuffer().Rect)
	var count int

	loop := func() error {
		for ; *frames == 0 || count < *frames; count++ {
			ses.BeforeEmulation()
			con.Step()
			ses.AfterEmulation()
			o := ses.FrameBoundary()

			copy(fb.Pix, con.Framebuffer().Pix)
			ses.Present(fb)

			for _, m := range con.Messages() {
				fmt.Println(m)
			}

			if o.Terminal() || !ses.Running() {
				count++
				break
			}
		}
		return nil
	}

	startTime := time.Now()

	if *profile {
		err = performance.ProfileCPU("cpu.profile", loop)
		if err != nil {
			return err
		}
		err = performance.ProfileMem("mem.profile")
		if err != nil {
			return err
		}
	} else {
		// loop() never fails
		_ = loop()
	}

	if *fps {
		f, acc := performance.CalcFPS(count, time.Since(startTime).Seconds())
		fmt.Printf("%d frames: %.2f fps (%.1f%%)\n", count, f, acc)
	}

	ses.Stop()

	if *shot != "" {
		err = screenshot.Save(fb, *shot, *scale)
		if err != nil {
			return err
		}
		fmt.Printf("! screenshot saved to %s\n", *shot)
	}

	return nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addCommon(md)
	scale := md.AddInt("scale", 2, "window scaling")
	fullscreen := md.AddBool("fullscreen", false, "start in fullscreen")
	overlay := md.AddBool("overlay", true, "show the script overlay")
	dialogs := md.AddBool("dialogs", true, "use native dialogs for popups")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var script string
	switch len(md.RemainingArgs()) {
	case 0:
		if *dialogs {
			script, err = dialog.ChooseScript()
			if err != nil {
				return err
			}
		}
	case 1:
		script = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	con, prf, err := opts.prepare(os.Stdout)
	if err != nil {
		return err
	}

	var sink notifications.Sink
	if *dialogs {
		sink = dialog.Sink{}
	} else {
		sink = console.NewSink(os.Stdin, os.Stdout)
	}

	// the fallback ctrl-c handling is replaced by closing the window. this
	// gives the script the chance to run its exit function
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		w := window.NewWindow(con, prf, sink, script)
		for _, f := range []struct {
			req gui.FeatureReq
			arg gui.FeatureReqData
		}{
			{gui.ReqScale, *scale},
			{gui.ReqFullScreen, *fullscreen},
			{gui.ReqOverlay, *overlay},
		} {
			if err := w.SetFeature(f.req, f.arg); err != nil {
				return nil, err
			}
		}
		return w, nil
	}

	// wait for creator result
	var scr *window.Window
	select {
	case g := <-sync.creation:
		scr = g.(*window.Window)
	case err := <-sync.creationError:
		return err
	}

	go func() {
		<-intChan
		scr.Close()
	}()

	err = <-sync.finished
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return prf.Save()
}

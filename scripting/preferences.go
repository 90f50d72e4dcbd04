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
	"github.com/jetsetilly/emuscript/paths"
	"github.com/jetsetilly/emuscript/prefs"
	"github.com/jetsetilly/emuscript/scheduler"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// the highest address that can be given to memory.register() by default.
const defaultWindow = 0x200000

// Preferences for the scripting session.
type Preferences struct {
	dsk *prefs.Disk

	// the watchdog budget given to the script at the start of every frame
	// and the number of instructions per unit of budget
	Budget   prefs.Int
	Interval prefs.Int

	// whether the watchdog is active for newly loaded scripts
	Watchdog prefs.Bool

	// the highest address that can be watched with memory.register()
	Window prefs.Int

	// whether the overlay is composited onto the framebuffer
	GUI prefs.Bool

	// the directory used for anonymous savestates
	SavestateDir prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty then the default preferences file in the resource
// directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		path = paths.ResourcePath(DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("scripting.watchdog.budget", &p.Budget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.watchdog.interval", &p.Interval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.watchdog.enabled", &p.Watchdog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.memory.window", &p.Window)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.gui.enabled", &p.GUI)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scripting.savestate.dir", &p.SavestateDir)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Budget.Set(scheduler.DefaultOptions.Budget)
	p.Interval.Set(scheduler.DefaultOptions.Interval)
	p.Watchdog.Set(scheduler.DefaultOptions.Watchdog)
	p.Window.Set(defaultWindow)
	p.GUI.Set(true)
	p.SavestateDir.Set(paths.ResourcePath("savestates"))
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// options for the scheduler. the decider is supplied by the session.
func (p *Preferences) options(decide scheduler.Decider) scheduler.Options {
	return scheduler.Options{
		Budget:   p.Budget.Get().(int),
		Interval: p.Interval.Get().(int),
		Watchdog: p.Watchdog.Get().(bool),
		Decide:   decide,
	}
}

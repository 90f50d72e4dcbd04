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

package savestate

import (
	"fmt"
	"os"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/logger"
)

// Sentinal errors.
const (
	InvalidSlot  = "slot must be between 1 and %d (specified %d)"
	HandleClosed = "savestate handle has been closed"
	CreateError  = "savestate create: %v"
	SaveError    = "savestate save: %v"
	LoadError    = "savestate load: %v"
)

// Slots is the number of player visible slots.
const Slots = 10

// Anonymous is the slot value that requests an anonymous savestate.
const Anonymous = 0

// Handle is a savestate created by a script.
type Handle struct {
	id       int
	filename string
	slot     int
	closed   bool
}

// Filename of the file backing the savestate.
func (h *Handle) Filename() string {
	return h.filename
}

// Slot returns the slot number or Anonymous.
func (h *Handle) Slot() int {
	return h.slot
}

// Closed returns true if the handle has been reclaimed.
func (h *Handle) Closed() bool {
	return h.closed
}

func (h *Handle) String() string {
	if h.slot == Anonymous {
		return fmt.Sprintf("savestate #%d (anonymous)", h.id)
	}
	return fmt.Sprintf("savestate #%d (slot %d)", h.id, h.slot)
}

// Manager creates and reclaims savestate handles.
type Manager struct {
	states host.States

	// directory for anonymous savestates. empty string for the system
	// temporary directory
	tempDir string

	handles []*Handle
	nextID  int
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(states host.States, tempDir string) *Manager {
	return &Manager{
		states:  states,
		tempDir: tempDir,
	}
}

// Create a new handle. The slot should be between 1 and Slots, or Anonymous.
//
// The file for an anonymous handle is created immediately, empty, and exists
// until the handle is reclaimed.
func (m *Manager) Create(slot int) (*Handle, error) {
	if slot < Anonymous || slot > Slots {
		return nil, curated.Errorf(InvalidSlot, Slots, slot)
	}

	m.nextID++
	h := &Handle{
		id:   m.nextID,
		slot: slot,
	}

	if slot == Anonymous {
		if m.tempDir != "" {
			if err := os.MkdirAll(m.tempDir, 0o700); err != nil {
				return nil, curated.Errorf(CreateError, err)
			}
		}
		f, err := os.CreateTemp(m.tempDir, "emuscript_*.state")
		if err != nil {
			return nil, curated.Errorf(CreateError, err)
		}
		h.filename = f.Name()
		if err := f.Close(); err != nil {
			return nil, curated.Errorf(CreateError, err)
		}
	} else {
		h.filename = m.states.SlotFilename(slot)
	}

	m.handles = append(m.handles, h)

	return h, nil
}

// Save the emulation state to the handle.
func (m *Manager) Save(h *Handle) error {
	if h.closed {
		return curated.Errorf(HandleClosed)
	}
	if err := m.states.SaveState(h.filename); err != nil {
		return curated.Errorf(SaveError, err)
	}
	return nil
}

// Load the emulation state from the handle.
func (m *Manager) Load(h *Handle) error {
	if h.closed {
		return curated.Errorf(HandleClosed)
	}
	if err := m.states.LoadState(h.filename); err != nil {
		return curated.Errorf(LoadError, err)
	}
	return nil
}

// Reclaim a handle. The file of an anonymous handle is deleted. Reclaiming a
// closed handle does nothing.
func (m *Manager) Reclaim(h *Handle) {
	if h.closed {
		return
	}
	h.closed = true

	for i, o := range m.handles {
		if o == h {
			m.handles = append(m.handles[:i], m.handles[i+1:]...)
			break
		}
	}

	if h.slot == Anonymous {
		if err := os.Remove(h.filename); err != nil && !os.IsNotExist(err) {
			logger.Logf(logger.Allow, "savestate", "%s: %v", h, err)
		}
	}
}

// ReclaimAll reclaims every outstanding handle.
func (m *Manager) ReclaimAll() {
	for len(m.handles) > 0 {
		m.Reclaim(m.handles[0])
	}
}

// Outstanding returns the number of handles not yet reclaimed.
func (m *Manager) Outstanding() int {
	return len(m.handles)
}

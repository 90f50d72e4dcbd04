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

package memwatch

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/logger"
)

// OutOfWindow is returned by Set() when the address is outside the range
// allowed by the registry.
const OutOfWindow = "address should be between 0x0000 and %#x"

// Callback is run when the value at a watched address changes. A nil Callback
// removes a watch.
type Callback func() error

// Reporter is told about errors returned by callbacks.
type Reporter func(addr uint32, err error)

type watch struct {
	callback Callback
	value    uint8
}

// Registry of watched addresses.
type Registry struct {
	mem    host.Memory
	window uint32

	watches map[uint32]*watch

	// sorted list of watched addresses. callbacks are run in address order
	order []uint32

	// if report is nil then errors are logged
	report Reporter

	// sweeping is true while callbacks are being run by Sweep()
	sweeping bool
}

// NewRegistry is the preferred method of initialisation for the Registry type.
// The window is the highest address that can be watched.
func NewRegistry(mem host.Memory, window uint32) *Registry {
	return &Registry{
		mem:     mem,
		window:  window,
		watches: make(map[uint32]*watch),
	}
}

// SetReporter changes how callback errors are reported.
func (r *Registry) SetReporter(report Reporter) {
	r.report = report
}

// Window returns the highest address that can be watched.
func (r *Registry) Window() uint32 {
	return r.window
}

// Set the callback for an address. The current value at the address becomes
// the value against which changes are detected. A nil callback removes the
// watch.
func (r *Registry) Set(addr uint32, cb Callback) error {
	if addr > r.window {
		return curated.Errorf(OutOfWindow, r.window)
	}

	idx, found := slices.BinarySearch(r.order, addr)

	if cb == nil {
		if found {
			delete(r.watches, addr)
			r.order = slices.Delete(r.order, idx, idx+1)
		}
		return nil
	}

	if !found {
		r.order = slices.Insert(r.order, idx, addr)
	}
	r.watches[addr] = &watch{
		callback: cb,
		value:    r.mem.Read8(addr),
	}

	return nil
}

// Watched returns true if the address has a watch.
func (r *Registry) Watched(addr uint32) bool {
	_, ok := r.watches[addr]
	return ok
}

// Len returns the number of watched addresses.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clear removes all watches.
func (r *Registry) Clear() {
	clear(r.watches)
	r.order = r.order[:0]
}

// Sweep compares every watched address with the last value seen. Callbacks
// for changed addresses are run. Errors from callbacks are reported but do
// not remove the watch.
//
// Callbacks may add or remove watches. Sweep() called from inside a callback
// does nothing.
//
// Returns the number of callbacks run.
func (r *Registry) Sweep() int {
	if r.sweeping {
		return 0
	}
	r.sweeping = true
	defer func() {
		r.sweeping = false
	}()

	var n int

	// a copy of the order is made because callbacks can change the registry
	for _, addr := range slices.Clone(r.order) {
		w, ok := r.watches[addr]
		if !ok {
			continue
		}

		v := r.mem.Read8(addr)
		if v == w.value {
			continue
		}
		w.value = v

		n++
		if err := w.callback(); err != nil {
			if r.report != nil {
				r.report(addr, err)
			} else {
				logger.Logf(logger.Allow, "memwatch", "%#04x: %v", addr, err)
			}
		}
	}

	return n
}

func (r *Registry) String() string {
	if len(r.order) == 0 {
		return "no watches"
	}
	s := make([]byte, 0, len(r.order)*16)
	for _, addr := range r.order {
		s = fmt.Appendf(s, "%#04x=%#x\n", addr, r.watches[addr].value)
	}
	return string(s)
}

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

package scheduler

import (
	"context"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/logger"
)

// Decider is asked whether a script that has used all of its watchdog budget
// should be killed. It should return true if the script is to be killed.
type Decider func() bool

// watchdog is a context.Context given to the Lua states of a script.
//
// The Lua VM calls Done() before every instruction when a context is set. The
// watchdog counts these calls and the channel it returns is closed when the
// script is to be killed.
type watchdog struct {
	context.Context

	open   chan struct{}
	closed chan struct{}

	interval int
	steps    int

	limit  int
	budget int

	enabled bool
	killed  bool

	decide Decider
}

func newWatchdog(limit int, interval int, enabled bool, decide Decider) *watchdog {
	wd := &watchdog{
		Context:  context.Background(),
		open:     make(chan struct{}),
		closed:   make(chan struct{}),
		interval: max(1, interval),
		limit:    limit,
		budget:   limit,
		enabled:  enabled,
		decide:   decide,
	}
	close(wd.closed)
	return wd
}

// Done implements the context.Context interface.
func (wd *watchdog) Done() <-chan struct{} {
	if wd.killed {
		return wd.closed
	}
	if !wd.enabled {
		return wd.open
	}

	wd.steps++
	if wd.steps >= wd.interval {
		wd.steps = 0
		wd.budget--
		wd.check()
	}

	if wd.killed {
		return wd.closed
	}
	return wd.open
}

func (wd *watchdog) check() {
	if wd.budget > 0 || !wd.enabled || wd.killed {
		return
	}

	if wd.decide != nil && wd.decide() {
		logger.Log(logger.Allow, "watchdog", "script killed")
		wd.killed = true
		return
	}

	logger.Log(logger.Allow, "watchdog", "disabled for the rest of the script")
	wd.enabled = false
}

// Err implements the context.Context interface.
func (wd *watchdog) Err() error {
	if wd.killed {
		return curated.Errorf(WatchdogKill)
	}
	return nil
}

// AfterFunc is used by the context package when a child context is created.
// The Lua states created for coroutines are given the watchdog directly so
// there is never anything to do.
func (wd *watchdog) AfterFunc(func()) func() bool {
	return func() bool { return false }
}

// reset the budget to the limit.
func (wd *watchdog) reset() {
	wd.budget = wd.limit
	wd.steps = 0
}

// consume units from the budget. the decider is asked immediately if the
// budget runs out.
func (wd *watchdog) consume(units int) {
	if !wd.enabled || wd.killed {
		return
	}
	wd.budget -= units
	wd.check()
}

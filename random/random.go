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

package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// the base seed for all random numbers.
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// FrameCounter is the source of the frame number used in seeding.
type FrameCounter interface {
	FrameCount() int
}

// Random is a random number generator that is sensitive to the current frame.
type Random struct {
	crit   sync.Mutex
	frames FrameCounter

	// the frame of the most recent request and the number of requests
	// made during that frame
	frame int
	count uint64

	// use zero seed rather than the random base seed. useful when random
	// numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frames FrameCounter) *Random {
	return &Random{
		frames: frames,
		frame:  -1,
	}
}

func (rnd *Random) rand() *rand.Rand {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()

	fn := rnd.frames.FrameCount()
	if fn != rnd.frame {
		rnd.frame = fn
		rnd.count = 0
	}
	rnd.count++

	seed := uint64(fn)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewPCG(seed, rnd.count))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Uint32 returns a 32 bit random number.
func (rnd *Random) Uint32() uint32 {
	return rnd.rand().Uint32()
}

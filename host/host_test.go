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

package host_test

import (
	"testing"

	"github.com/jetsetilly/emuscript/host"
	"github.com/jetsetilly/emuscript/test"
)

func TestSpeedMode(t *testing.T) {
	for _, s := range []host.SpeedMode{host.SpeedNormal, host.SpeedNoThrottle, host.SpeedTurbo, host.SpeedMaximum} {
		p, ok := host.ParseSpeedMode(s.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, s)
	}

	p, ok := host.ParseSpeedMode("TURBO")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, host.SpeedTurbo)

	_, ok = host.ParseSpeedMode("warp")
	test.ExpectFailure(t, ok)
}

func TestVideoMode(t *testing.T) {
	w, h := host.VideoStandard.Dimensions()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 512)

	w, h = host.VideoHighRes.Dimensions()
	test.ExpectEquality(t, w, 1024)
	test.ExpectEquality(t, h, 1024)
}

func TestMovieMode(t *testing.T) {
	test.ExpectEquality(t, host.MovieInactive.String(), "none")
	test.ExpectEquality(t, host.MovieRecording.String(), "record")
	test.ExpectEquality(t, host.MoviePlayback.String(), "playback")
}

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
package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/performance"
	"github.com/jetsetilly/emuscript/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(120, 2.0)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, acc, 100.0, 0.001)

	fps, acc = performance.CalcFPS(120, 4.0)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, acc, 50.0, 0.001)

	fps, acc = performance.CalcFPS(120, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()

	var ran bool
	err := performance.ProfileCPU(filepath.Join(dir, "cpu.profile"), func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	fn := filepath.Join(dir, "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(fn))
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	err = performance.ProfileMem(filepath.Join(dir, "missing", "mem.profile"))
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

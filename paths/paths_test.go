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

package paths_test

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/emuscript/paths"
	"github.com/jetsetilly/emuscript/test"
)

func TestResourcePath(t *testing.T) {
	base := paths.ResourcePath()

	pth := paths.ResourcePath("foo/bar", "baz")
	test.ExpectEquality(t, pth, filepath.Join(base, "foo", "bar", "baz"))

	pth = paths.ResourcePath("foo/bar", "")
	test.ExpectEquality(t, pth, filepath.Join(base, "foo", "bar"))

	pth = paths.ResourcePath("", "baz")
	test.ExpectEquality(t, pth, filepath.Join(base, "baz"))

	pth = paths.ResourcePath("", "")
	test.ExpectEquality(t, pth, base)

	test.ExpectSuccess(t, strings.HasSuffix(base, "emuscript"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "/scripts/hud.lua")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_hud_\d{8}_\d{6}$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("screenshot", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_\d{8}_\d{6}$`).MatchString(fn), fn)
}

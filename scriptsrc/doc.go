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
// Package scriptsrc loads the source of Lua scripts.
//
// A script can be a plain Lua source file or it can be inside an archive.
// ZIP, 7z, RAR and gzip archives are recognised by their content, not by the
// filename extension.
//
// Scripts in an archive are chosen in the following way: if the filename
// continues past the archive, as though the archive were a directory, then
// the remainder of the filename names the script in the archive. For example:
//
//	scripts/hud.zip/tools/hud.lua
//
// Otherwise the script is the file "main.lua" in the archive. If there is no
// main.lua, the first file with the ".lua" extension is chosen. A gzip file
// contains only the script.
package scriptsrc

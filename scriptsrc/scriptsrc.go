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
package scriptsrc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/emuscript/curated"
)

// Sentinal errors.
const (
	NoScript     = "no Lua script in %s"
	TooLarge     = "%s is too large to be a script"
	NotAnArchive = "%s is not an archive"
	LoadError    = "scriptsrc: %v"
)

// the largest script that will be loaded.
const maxScriptSize = 4 * 1024 * 1024

// Ext is the filename extension of Lua scripts.
const Ext = ".lua"

// the name of the script chosen by default in an archive.
const mainScript = "main.lua"

// magic bytes for each of the supported archive types.
var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// Format of a script file.
type Format int

// List of valid Format values.
const (
	FormatPlain Format = iota
	FormatZIP
	Format7z
	FormatRAR
	FormatGzip
)

func (f Format) String() string {
	switch f {
	case FormatZIP:
		return "zip"
	case Format7z:
		return "7z"
	case FormatRAR:
		return "rar"
	case FormatGzip:
		return "gzip"
	}
	return "plain"
}

// Detect the format of the data from the first few bytes.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEmpty):
		return FormatZIP
	case bytes.HasPrefix(header, magic7z):
		return Format7z
	case bytes.HasPrefix(header, magicRAR):
		return FormatRAR
	case bytes.HasPrefix(header, magicGzip):
		return FormatGzip
	}
	return FormatPlain
}

// Script is the source of a Lua script.
type Script struct {
	// the filename given to Load()
	Filename string

	// the name of the script. for a script in an archive the name is the
	// archive filename joined with the path of the script in the archive
	Name string

	// the format of the file the script was found in
	Format Format

	Source []byte
}

func (scr Script) String() string {
	return scr.Name
}

// Load the script in the file.
func Load(filename string) (Script, error) {
	archive, member, err := split(filename)
	if err != nil {
		return Script{}, curated.Errorf(LoadError, err)
	}

	f, err := os.Open(archive)
	if err != nil {
		return Script{}, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Script{}, curated.Errorf(LoadError, err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Script{}, curated.Errorf(LoadError, err)
	}

	scr := Script{
		Filename: filename,
		Format:   Detect(header),
	}

	var name string
	switch scr.Format {
	case FormatPlain:
		if member != "" {
			return Script{}, curated.Errorf(LoadError, curated.Errorf(NotAnArchive, archive))
		}
		scr.Source, err = limitedRead(f, archive)
	case FormatZIP:
		scr.Source, name, err = fromZIP(archive, member)
	case Format7z:
		scr.Source, name, err = from7z(archive, member)
	case FormatRAR:
		scr.Source, name, err = fromRAR(archive, member)
	case FormatGzip:
		scr.Source, err = fromGzip(f, archive)
	}
	if err != nil {
		return Script{}, curated.Errorf(LoadError, err)
	}

	if name == "" {
		scr.Name = archive
	} else {
		scr.Name = filepath.Join(archive, filepath.FromSlash(name))
	}

	return scr, nil
}

// split the filename into the path to a file that exists and the remainder of
// the filename. the remainder is the path of a file inside an archive and is
// empty if the filename exists in its entirety.
func split(filename string) (string, string, error) {
	filename = filepath.Clean(filename)

	if _, err := os.Stat(filename); err == nil {
		return filename, "", nil
	}

	// walk back through the path until a part of it exists
	dir := filename
	var member []string
	for {
		parent := filepath.Dir(dir)
		member = append([]string{filepath.Base(dir)}, member...)
		if parent == dir {
			break
		}
		dir = parent

		fi, err := os.Stat(dir)
		if err != nil {
			continue
		}
		if fi.IsDir() {
			break
		}
		return dir, strings.Join(member, "/"), nil
	}

	// report the error for the complete filename
	_, err := os.Stat(filename)
	return "", "", err
}

// choose the script from a list of names in an archive. the member is the
// name requested by the caller and can be empty.
func choose(names []string, member string) (int, bool) {
	if member != "" {
		for i, n := range names {
			if strings.Trim(filepath.ToSlash(n), "/") == member {
				return i, true
			}
		}
		return -1, false
	}

	// main.lua nearest the root of the archive
	best := -1
	depth := 0
	for i, n := range names {
		n = strings.Trim(filepath.ToSlash(n), "/")
		if strings.EqualFold(pathBase(n), mainScript) {
			d := strings.Count(n, "/")
			if best == -1 || d < depth {
				best = i
				depth = d
			}
		}
	}
	if best >= 0 {
		return best, true
	}

	for i, n := range names {
		if IsScript(n) {
			return i, true
		}
	}

	return -1, false
}

func pathBase(n string) string {
	if i := strings.LastIndex(n, "/"); i >= 0 {
		return n[i+1:]
	}
	return n
}

// IsScript returns true if the filename has the Lua extension. The test is
// case insensitive.
func IsScript(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), Ext)
}

// limitedRead reads all of r unless there is more than maxScriptSize bytes.
func limitedRead(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxScriptSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxScriptSize {
		return nil, curated.Errorf(TooLarge, name)
	}
	return data, nil
}

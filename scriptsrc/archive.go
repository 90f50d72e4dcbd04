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
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/emuscript/curated"
	"github.com/klauspost/compress/zip"
	"github.com/nwaples/rardecode/v2"
)

func fromZIP(archive string, member string) ([]byte, string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	var names []string
	var files []*zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
		files = append(files, f)
	}

	i, ok := choose(names, member)
	if !ok {
		return nil, "", curated.Errorf(NoScript, archive)
	}

	rc, err := files[i].Open()
	if err != nil {
		return nil, "", err
	}
	defer rc.Close()

	data, err := limitedRead(rc, names[i])
	if err != nil {
		return nil, "", err
	}
	return data, names[i], nil
}

func from7z(archive string, member string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(archive)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	var names []string
	var files []*sevenzip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
		files = append(files, f)
	}

	i, ok := choose(names, member)
	if !ok {
		return nil, "", curated.Errorf(NoScript, archive)
	}

	rc, err := files[i].Open()
	if err != nil {
		return nil, "", err
	}
	defer rc.Close()

	data, err := limitedRead(rc, names[i])
	if err != nil {
		return nil, "", err
	}
	return data, names[i], nil
}

// RAR archives can only be read in order so the list of names is collected
// before the archive is opened a second time to read the script.
func fromRAR(archive string, member string) ([]byte, string, error) {
	names, err := rarNames(archive)
	if err != nil {
		return nil, "", err
	}

	i, ok := choose(names, member)
	if !ok {
		return nil, "", curated.Errorf(NoScript, archive)
	}

	r, err := rardecode.OpenReader(archive)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	for {
		h, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", err
		}
		if h.IsDir || h.Name != names[i] {
			continue
		}
		data, err := limitedRead(r, h.Name)
		if err != nil {
			return nil, "", err
		}
		return data, h.Name, nil
	}

	return nil, "", curated.Errorf(NoScript, archive)
}

func rarNames(archive string) ([]string, error) {
	r, err := rardecode.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for {
		h, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if h.IsDir {
			continue
		}
		names = append(names, h.Name)
	}
	return names, nil
}

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

package simhost

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/emuscript/curated"
	"github.com/jetsetilly/emuscript/logger"
	"github.com/klauspost/compress/zstd"
)

// Sentinal errors for savestates.
const (
	StateError    = "state: %v"
	StateNotValid = "not a valid state file"
)

var stateMagic = []byte("EMUSCRIPTSTATE01")

type stateHeader struct {
	Frame  int64
	Lag    int64
	Lagged bool
	Pads   [2]uint16
}

// SaveState implements the host.States interface. The file is created or
// truncated.
func (c *Console) SaveState(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(StateError, err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	hdr := stateHeader{
		Frame:  int64(c.frame),
		Lag:    int64(c.lag),
		Lagged: c.lagged,
		Pads:   c.physical,
	}

	if _, err := enc.Write(stateMagic); err != nil {
		enc.Close()
		return curated.Errorf(StateError, err)
	}
	if err := binary.Write(enc, binary.LittleEndian, hdr); err != nil {
		enc.Close()
		return curated.Errorf(StateError, err)
	}
	if _, err := enc.Write(c.data); err != nil {
		enc.Close()
		return curated.Errorf(StateError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(StateError, err)
	}

	logger.Logf(logger.Allow, "simhost", "state saved to %s", filename)

	return nil
}

// LoadState implements the host.States interface. The state of the console
// is not changed if the file can not be loaded.
func (c *Console) LoadState(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(StateError, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return curated.Errorf(StateError, err)
	}
	defer dec.Close()

	d, err := io.ReadAll(dec)
	if err != nil {
		return curated.Errorf(StateError, err)
	}

	if !bytes.HasPrefix(d, stateMagic) {
		return curated.Errorf(StateError, curated.Errorf(StateNotValid))
	}
	d = d[len(stateMagic):]

	var hdr stateHeader
	r := bytes.NewReader(d)
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf(StateError, curated.Errorf(StateNotValid))
	}
	if r.Len() != RAMSize {
		return curated.Errorf(StateError, curated.Errorf(StateNotValid))
	}

	c.frame = int(hdr.Frame)
	c.lag = int(hdr.Lag)
	c.lagged = hdr.Lagged
	c.physical = hdr.Pads
	copy(c.data, d[len(d)-RAMSize:])
	c.render()

	logger.Logf(logger.Allow, "simhost", "state loaded from %s", filename)

	return nil
}

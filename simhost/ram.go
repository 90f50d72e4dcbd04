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

import "encoding/binary"

// Size of simulated RAM. Addresses are masked to this size.
const (
	RAMSize = 0x200000
	RAMMask = RAMSize - 1
)

// RAM implements the host.Memory interface.
type RAM struct {
	data []byte

	// called after every write
	onWrite func(addr uint32)
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		data: make([]byte, RAMSize),
	}
}

// SetWriteHook sets the function to call after every write.
func (r *RAM) SetWriteHook(f func(addr uint32)) {
	r.onWrite = f
}

func (r *RAM) written(addr uint32) {
	if r.onWrite != nil {
		r.onWrite(addr & RAMMask)
	}
}

// Read8 implements the host.Memory interface.
func (r *RAM) Read8(addr uint32) uint8 {
	return r.data[addr&RAMMask]
}

// Read16 implements the host.Memory interface.
func (r *RAM) Read16(addr uint32) uint16 {
	return uint16(r.Read8(addr)) | uint16(r.Read8(addr+1))<<8
}

// Read32 implements the host.Memory interface.
func (r *RAM) Read32(addr uint32) uint32 {
	return uint32(r.Read16(addr)) | uint32(r.Read16(addr+2))<<16
}

// Write8 implements the host.Memory interface.
func (r *RAM) Write8(addr uint32, v uint8) {
	r.data[addr&RAMMask] = v
	r.written(addr)
}

// Write16 implements the host.Memory interface.
func (r *RAM) Write16(addr uint32, v uint16) {
	r.data[addr&RAMMask] = uint8(v)
	r.data[(addr+1)&RAMMask] = uint8(v >> 8)
	r.written(addr)
}

// Write32 implements the host.Memory interface.
func (r *RAM) Write32(addr uint32, v uint32) {
	if addr&RAMMask <= RAMSize-4 {
		binary.LittleEndian.PutUint32(r.data[addr&RAMMask:], v)
	} else {
		r.data[addr&RAMMask] = uint8(v)
		r.data[(addr+1)&RAMMask] = uint8(v >> 8)
		r.data[(addr+2)&RAMMask] = uint8(v >> 16)
		r.data[(addr+3)&RAMMask] = uint8(v >> 24)
	}
	r.written(addr)
}

// Poke changes memory without calling the write hook.
func (r *RAM) Poke(addr uint32, v uint8) {
	r.data[addr&RAMMask] = v
}

// This file is part of Periphery.
//
// Periphery is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphery is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphery.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Store is the register store shared by the fast path and the slow path.
//
// Each byte is stored in its own atomic value. The slow path is the only
// writer. The fast path only ever reads, through a View.
type Store struct {
	data [Size]atomic.Uint32
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) String() string {
	b := strings.Builder{}
	for a := uint16(0); a < PassThrough; a++ {
		if n, ok := Names[a]; ok {
			b.WriteString(fmt.Sprintf("%s=%02x ", n, s.Read(a)))
		}
	}
	return strings.TrimSpace(b.String())
}

// Read the value at address. Addresses outside the store read as zero.
func (s *Store) Read(address uint16) uint8 {
	if address >= Size {
		return 0
	}
	return uint8(s.data[address].Load())
}

// Write value to address. Addresses outside the store are ignored.
func (s *Store) Write(address uint16, value uint8) {
	if address >= Size {
		return
	}
	s.data[address].Store(uint32(value))
}

// SetFlag sets the bits in mask.
func (s *Store) SetFlag(address uint16, mask uint8) {
	if address >= Size {
		return
	}
	s.data[address].Or(uint32(mask))
}

// ClearFlag clears the bits in mask.
func (s *Store) ClearFlag(address uint16, mask uint8) {
	if address >= Size {
		return
	}
	s.data[address].And(^uint32(mask))
}

// SetMasked replaces the bits in mask with the same bits in value. Bits
// outside the mask are unchanged.
func (s *Store) SetMasked(address uint16, mask uint8, value uint8) {
	if address >= Size {
		return
	}
	v := s.data[address].Load()
	v = (v &^ uint32(mask)) | uint32(value&mask)
	s.data[address].Store(v)
}

// IsSet returns true if all the bits in mask are set.
func (s *Store) IsSet(address uint16, mask uint8) bool {
	return s.Read(address)&mask == mask
}

// NotSet returns true if none of the bits in mask are set.
func (s *Store) NotSet(address uint16, mask uint8) bool {
	return s.Read(address)&mask == 0
}

// Copy data into the store starting at origin. Data that would extend past
// the end of the store is not copied. Returns the number of bytes copied.
func (s *Store) Copy(origin uint16, data []uint8) int {
	n := 0
	for i, v := range data {
		a := int(origin) + i
		if a >= Size {
			break
		}
		s.data[a].Store(uint32(v))
		n++
	}
	return n
}

// Clear sets every byte in the store to zero.
func (s *Store) Clear() {
	for i := range s.data {
		s.data[i].Store(0)
	}
}

// Snapshot returns a copy of the store.
func (s *Store) Snapshot() [Size]uint8 {
	var c [Size]uint8
	for i := range s.data {
		c[i] = uint8(s.data[i].Load())
	}
	return c
}

// View returns a read-only handle to the store.
func (s *Store) View() View {
	return View{s: s}
}

// View is a read-only handle to a Store.
type View struct {
	s *Store
}

// Read the value at address. Addresses outside the store read as zero.
func (v View) Read(address uint16) uint8 {
	return v.s.Read(address)
}

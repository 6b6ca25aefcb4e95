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

package bus

import "fmt"

// Word is the raw value produced by the bus decoder for every host bus cycle
// that targets the control path.
//
//	bit 31       is read
//	bits 23-30   data
//	bits 9-22    address
//
// The other bits are unused and are zero in a packed word.
type Word uint32

const (
	readBit      = 31
	addressShift = 9
	addressMask  = 0x3fff
	dataShift    = 23
	dataMask     = 0xff
)

// MaxAddress is the largest address that can be carried by a Word.
const MaxAddress = addressMask

// Pack the address, direction and data into a Word. Bits of address above
// MaxAddress are discarded.
func Pack(address uint16, isRead bool, data uint8) Word {
	w := Word(address&addressMask)<<addressShift | Word(data)<<dataShift
	if isRead {
		w |= 1 << readBit
	}
	return w
}

// IsRead returns true if the host was reading.
func (w Word) IsRead() bool {
	return w>>readBit&0x01 == 0x01
}

// Address of the bus cycle.
func (w Word) Address() uint16 {
	return uint16(w >> addressShift & addressMask)
}

// Data on the bus. For a read this is the value that was returned to the host.
func (w Word) Data() uint8 {
	return uint8(w >> dataShift & dataMask)
}

// Event decodes the Word into an Event.
func (w Word) Event() Event {
	return Event{
		Address: w.Address(),
		Read:    w.IsRead(),
		Data:    w.Data(),
	}
}

func (w Word) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}

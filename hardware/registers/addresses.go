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

// Size of the register store in bytes. Addresses outside the store are
// ignored.
const Size = 128

// List of register addresses. The address map is fixed and shared with the
// software running on the host.
const (
	SCR  uint16 = 0x00 // status and control
	RCR  uint16 = 0x01 // reserved
	RBA  uint16 = 0x02 // ROM address bits 16 to 23
	RALO uint16 = 0x03 // ROM address bits 0 to 7
	RAHI uint16 = 0x04 // ROM address bits 8 to 15
	RDR  uint16 = 0x05 // ROM data
	ISR  uint16 = 0x06 // interrupt status
	ICR  uint16 = 0x07 // interrupt control
	CDR  uint16 = 0x08 // console data
	SDR  uint16 = 0x09 // auxiliary serial data
	CLK  uint16 = 0x0a // host clock select
)

// Writes at or above the pass-through boundary are written directly to the
// register store.
const PassThrough uint16 = 0x10

// Regions of the store that are free for the host to write to.
const (
	BootloaderOrigin uint16 = 0x10
	BootloaderMemtop uint16 = 0x5f
	VectorsOrigin    uint16 = 0x60
	VectorsMemtop    uint16 = 0x7f
)

// Bits in the SCR register. The host clock speed and the LED state are read
// back in the low bits. The ROM bits are in the high bits.
//
// A write to SCR is decoded rather than stored. The value masked with
// SCRLEDSelect selects the LED state and SCRROMReset restarts the ROM loader.
const (
	SCRClockMask     uint8 = 0x07
	SCRLEDShift            = 3
	SCRLEDMask       uint8 = 0x03 << SCRLEDShift
	SCRLEDSelect     uint8 = 0x03
	SCRROMReset      uint8 = 0x20
	SCRROMDataReady  uint8 = 0x40
	SCRROMComplete   uint8 = 0x80
)

// Bits in the ISR and ICR registers. Only the source bits can be enabled in
// the ICR register.
const (
	ISRConsoleTX  uint8 = 0x01
	ISRConsoleRX  uint8 = 0x02
	ISRAuxTX      uint8 = 0x04
	ISRAuxRX      uint8 = 0x08
	ISRSourceMask uint8 = 0x0f
	ISRIRQ        uint8 = 0x80
)

// Bits in the CLK register.
const CLKMask uint8 = 0x07

// Names of the named registers, indexed by address.
var Names = map[uint16]string{
	SCR:  "SCR",
	RCR:  "RCR",
	RBA:  "RBA",
	RALO: "RALO",
	RAHI: "RAHI",
	RDR:  "RDR",
	ISR:  "ISR",
	ICR:  "ICR",
	CDR:  "CDR",
	SDR:  "SDR",
	CLK:  "CLK",
}

// Notify lists the addresses for which a host read produces a bus event.
// Reads of all other addresses are answered without involving the slow path.
var Notify = []uint16{RDR, CDR, SDR}

// IsPassThrough returns true if the address is at or above the pass-through
// boundary and inside the store.
func IsPassThrough(address uint16) bool {
	return address >= PassThrough && address < Size
}

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

import (
	"runtime"
	"sync/atomic"

	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/hardware/ringbuffer"
)

// DefaultPortDepth is the depth of the FIFO between the port and the engine.
const DefaultPortDepth = 8

// Port is the host side of the bus. The host reads and writes through the
// Port as though it was driving the address and data lines.
//
// Reads are answered immediately from the register store. Reads of addresses
// that need attention from the slow path and all writes are reported to the
// Engine through a FIFO. A full FIFO stalls the host until the engine has
// made room.
//
// Port implements the Decoder interface. Only one goroutine should act as the
// host.
type Port struct {
	view   registers.View
	notify [registers.Size]bool
	fifo   *ringbuffer.Ring[Word]

	// number of words pushed into the FIFO
	words atomic.Uint64
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort(view registers.View, depth int) *Port {
	p := &Port{
		view: view,
		fifo: ringbuffer.New[Word](depth),
	}
	for _, a := range registers.Notify {
		p.notify[a] = true
	}
	return p
}

// Read returns the value at address. Addresses outside the register store
// read as zero. Addresses above MaxAddress are not on the bus and never
// produce a word.
func (p *Port) Read(address uint16) uint8 {
	if address > MaxAddress {
		return 0
	}
	v := p.view.Read(address)
	if address < registers.Size && p.notify[address] {
		p.push(Pack(address, true, v))
	}
	return v
}

// Write value to address. The value is not visible to subsequent reads until
// the slow path has dispatched the write. Writes to addresses above
// MaxAddress are ignored.
func (p *Port) Write(address uint16, value uint8) {
	if address > MaxAddress {
		return
	}
	p.push(Pack(address, false, value))
}

func (p *Port) push(w Word) {
	for !p.fifo.Put(w) {
		runtime.Gosched()
	}
	p.words.Add(1)
}

// Words returns the number of words that have been pushed into the FIFO.
func (p *Port) Words() uint64 {
	return p.words.Load()
}

// Pending returns the number of words waiting to be collected by the engine.
func (p *Port) Pending() int {
	return p.fifo.Len()
}

// NextWord implements the Decoder interface.
func (p *Port) NextWord() (Word, bool) {
	return p.fifo.Get()
}

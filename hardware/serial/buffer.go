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

package serial

import (
	"bytes"
	"sync"
)

// Buffer implements the Transport interface with memory buffers. Bytes for
// the bridge to receive are added with Feed(). Bytes transmitted by the bridge
// are collected and returned by Output().
//
// Buffer is safe to use from more than one goroutine.
type Buffer struct {
	crit   sync.Mutex
	input  []uint8
	output bytes.Buffer
	closed bool
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Feed adds bytes to be received by the bridge.
func (b *Buffer) Feed(p []uint8) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.input = append(b.input, p...)
}

// Output returns all bytes transmitted by the bridge since the previous call
// to Output().
func (b *Buffer) Output() []uint8 {
	b.crit.Lock()
	defer b.crit.Unlock()
	o := bytes.Clone(b.output.Bytes())
	b.output.Reset()
	return o
}

// Receive implements the Transport interface.
func (b *Buffer) Receive() (uint8, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.closed || len(b.input) == 0 {
		return 0, false
	}
	v := b.input[0]
	b.input = b.input[1:]
	return v, true
}

// Transmit implements the Transport interface.
func (b *Buffer) Transmit(v uint8) bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.closed {
		return true
	}
	b.output.WriteByte(v)
	return true
}

// Close implements the Transport interface.
func (b *Buffer) Close() error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.closed = true
	return nil
}

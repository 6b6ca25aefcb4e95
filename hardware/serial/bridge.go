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
	"fmt"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/hardware/ringbuffer"
	"github.com/jetsetilly/periphery/logger"
	"github.com/jetsetilly/periphery/notifications"
)

const logTag = "serial"

// Config describes where in the register store a bridge is mapped.
type Config struct {
	Name string

	// the data register and the ready bits in the ISR register
	Data    uint16
	TxReady uint8
	RxReady uint8
}

// Console and Aux are the configurations of the two bridges.
var (
	ConsoleConfig = Config{
		Name:    "console",
		Data:    registers.CDR,
		TxReady: registers.ISRConsoleTX,
		RxReady: registers.ISRConsoleRX,
	}
	AuxConfig = Config{
		Name:    "aux",
		Data:    registers.SDR,
		TxReady: registers.ISRAuxTX,
		RxReady: registers.ISRAuxRX,
	}
)

// the errors returned by a transport
type errorer interface {
	Err() error
}

// Bridge connects a data register in the register store to a Transport.
//
// Bytes written by the host are queued in the outgoing ring and sent to the
// transport. Bytes from the transport are queued in the incoming ring and
// presented to the host one at a time in the data register.
//
// Nothing blocks. A byte that doesn't fit in a ring is dropped.
type Bridge struct {
	env   *environment.Environment
	store *registers.Store
	cfg   Config

	transport Transport

	tx *ringbuffer.Ring[uint8]
	rx *ringbuffer.Ring[uint8]

	// the transport has failed and is no longer used
	failed bool

	// number of bytes dropped since the last Step()
	dropped int
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The size is the size of each ring buffer.
func NewBridge(env *environment.Environment, store *registers.Store, cfg Config, transport Transport, size int) *Bridge {
	if transport == nil {
		transport = Null{}
	}
	b := &Bridge{
		env:       env,
		store:     store,
		cfg:       cfg,
		transport: transport,
		tx:        ringbuffer.New[uint8](size),
		rx:        ringbuffer.New[uint8](size),
	}
	b.Reset()
	return b
}

func (b *Bridge) String() string {
	return fmt.Sprintf("%s: tx %d/%d: rx %d/%d", b.cfg.Name, b.tx.Len(), b.tx.Cap(), b.rx.Len(), b.rx.Cap())
}

// Reset empties both rings and clears the data register. The bridge is ready
// to transmit.
func (b *Bridge) Reset() {
	b.tx.Reset()
	b.rx.Reset()
	b.dropped = 0
	b.store.Write(b.cfg.Data, 0)
	b.store.ClearFlag(registers.ISR, b.cfg.RxReady)
	b.store.SetFlag(registers.ISR, b.cfg.TxReady)
}

// Transmit queues a byte written by the host. The transmit ready flag is
// cleared if the outgoing ring is full after the byte has been queued.
func (b *Bridge) Transmit(v uint8) {
	if !b.tx.Put(v) {
		b.dropped++
	}
	if b.tx.IsFull() {
		b.store.ClearFlag(registers.ISR, b.cfg.TxReady)
	}
}

// NextByte notifies the bridge that the host has read the data register. The
// next byte in the incoming ring, if there is one, is moved into the data
// register immediately.
func (b *Bridge) NextByte() {
	b.store.ClearFlag(registers.ISR, b.cfg.RxReady)
	b.present()
}

// move the oldest incoming byte into the data register if the host has
// consumed the previous byte
func (b *Bridge) present() {
	if b.store.IsSet(registers.ISR, b.cfg.RxReady) {
		return
	}
	if v, ok := b.rx.Get(); ok {
		b.store.Write(b.cfg.Data, v)
		b.store.SetFlag(registers.ISR, b.cfg.RxReady)
	}
}

// Step services the transport. At most one byte is sent to the transport and
// at most the free space in the incoming ring is taken from it.
func (b *Bridge) Step() {
	if b.dropped > 0 {
		logger.Logf(b.env, logTag, "%s: dropped %d bytes", b.cfg.Name, b.dropped)
		b.dropped = 0
	}

	if !b.failed {
		if e, ok := b.transport.(errorer); ok {
			if err := e.Err(); err != nil {
				b.failed = true
				logger.Logf(b.env, logTag, "%s: %v", b.cfg.Name, err)
				b.env.Notify.Notify(notifications.NotifySerialClosed, b.cfg.Name)
			}
		}
	}

	if !b.failed {
		if v, ok := b.tx.Peek(); ok {
			if b.transport.Transmit(v) {
				b.tx.Get()
			}
		}

		for !b.rx.IsFull() {
			v, ok := b.transport.Receive()
			if !ok {
				break
			}
			b.rx.Put(v)
		}
	} else {
		// a failed transport discards everything so that the host never
		// waits for transmit ready forever
		b.tx.Drain()
	}

	if !b.tx.IsFull() {
		b.store.SetFlag(registers.ISR, b.cfg.TxReady)
	}

	b.present()
}

// Close the transport.
func (b *Bridge) Close() error {
	return b.transport.Close()
}

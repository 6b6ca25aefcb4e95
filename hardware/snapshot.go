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

package hardware

import (
	"github.com/jetsetilly/periphery/hardware/dispatch"
	"github.com/jetsetilly/periphery/hardware/hostclock"
	"github.com/jetsetilly/periphery/hardware/led"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/hardware/rom"
)

// Snapshot is a copy of the state of the device.
type Snapshot struct {
	Registers [registers.Size]uint8

	ROM struct {
		State  rom.State
		Cursor rom.Cursor
		Images int
	}

	LED struct {
		State led.State
		Dirty bool
		Lit   bool
	}

	Console string
	Aux     string

	IRQ       bool
	HostClock hostclock.Speed
	ResetHeld bool

	// events waiting in the queue
	Queue int

	Dispatch dispatch.Stats
}

// Snapshot the state of the device. The slow path must not be running in
// another goroutine.
func (dev *Device) Snapshot() *Snapshot {
	s := &Snapshot{
		Registers: dev.Store.Snapshot(),
		Console:   dev.Console.String(),
		Aux:       dev.Aux.String(),
		IRQ:       dev.IRQ.Asserted(),
		HostClock: dev.HostClock.Speed(),
		ResetHeld: dev.Reset.Held(),
		Queue:     dev.events.Len(),
		Dispatch:  dev.Dispatcher.Stats,
	}
	s.ROM.State = dev.ROM.State()
	s.ROM.Cursor = dev.ROM.Cursor()
	s.ROM.Images = dev.ROM.Images()
	s.LED.State = dev.LED.State()
	s.LED.Dirty = dev.LED.Dirty()
	s.LED.Lit = dev.LED.Lit()
	return s
}

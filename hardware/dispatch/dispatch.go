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

package dispatch

import (
	"github.com/jetsetilly/periphery/hardware/bus"
	"github.com/jetsetilly/periphery/hardware/registers"
)

// Handler is called with the data of the event.
type Handler func(data uint8)

// Route is the pair of handlers for an address. Either handler can be nil.
type Route struct {
	Name  string
	Read  Handler
	Write Handler
}

// Table maps addresses below the pass-through boundary to routes. The table
// is the only place where the behaviour of a register is attached to its
// address.
type Table [registers.PassThrough]Route

// Dispatcher routes events from the event queue to the components of the
// device.
type Dispatcher struct {
	store *registers.Store
	table Table

	// count of events dispatched, by kind. these are for diagnostics only
	Stats Stats
}

// Stats counts the events seen by the Dispatcher.
type Stats struct {
	Reads       int
	Writes      int
	PassThrough int
	Ignored     int
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(store *registers.Store, table Table) *Dispatcher {
	return &Dispatcher{
		store: store,
		table: table,
	}
}

// Dispatch a single event. Exactly one of the following happens:
//
//   - a read of an address with a read handler calls the handler
//   - a write at or above the pass-through boundary is written to the store
//   - a write of an address with a write handler calls the handler
//   - nothing, for all other events
func (d *Dispatcher) Dispatch(ev bus.Event) {
	if ev.Read {
		if ev.Address < registers.PassThrough {
			if h := d.table[ev.Address].Read; h != nil {
				d.Stats.Reads++
				h(ev.Data)
				return
			}
		}
		d.Stats.Ignored++
		return
	}

	if registers.IsPassThrough(ev.Address) {
		d.Stats.PassThrough++
		d.store.Write(ev.Address, ev.Data)
		return
	}

	if ev.Address < registers.PassThrough {
		if h := d.table[ev.Address].Write; h != nil {
			d.Stats.Writes++
			h(ev.Data)
			return
		}
	}

	d.Stats.Ignored++
}

// Drain dispatches events from the queue until the queue is empty or limit
// events have been dispatched. Returns the number of events dispatched.
func (d *Dispatcher) Drain(events *bus.Consumer, limit int) int {
	n := 0
	for n < limit {
		ev, ok := events.Pop()
		if !ok {
			break
		}
		d.Dispatch(ev)
		n++
	}
	return n
}

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

package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/periphery/hardware/bus"
	"github.com/jetsetilly/periphery/hardware/dispatch"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/test"
)

type calls struct {
	reads  []uint8
	writes []uint8
}

func TestRouting(t *testing.T) {
	st := registers.NewStore()

	var rdr, scr calls
	var table dispatch.Table
	table[registers.RDR] = dispatch.Route{
		Name: "RDR",
		Read: func(d uint8) { rdr.reads = append(rdr.reads, d) },
	}
	table[registers.SCR] = dispatch.Route{
		Name:  "SCR",
		Write: func(d uint8) { scr.writes = append(scr.writes, d) },
	}

	d := dispatch.NewDispatcher(st, table)

	d.Dispatch(bus.Event{Address: registers.RDR, Read: true, Data: 0x11})
	test.ExpectEquality(t, len(rdr.reads), 1)
	test.ExpectEquality(t, rdr.reads[0], uint8(0x11))

	// a write to a register with only a read handler is ignored
	d.Dispatch(bus.Event{Address: registers.RDR, Data: 0x22})
	test.ExpectEquality(t, len(rdr.reads), 1)
	test.ExpectEquality(t, st.Read(registers.RDR), uint8(0))

	d.Dispatch(bus.Event{Address: registers.SCR, Data: 0x02})
	test.ExpectEquality(t, len(scr.writes), 1)

	// reads without a handler are ignored
	d.Dispatch(bus.Event{Address: registers.SCR, Read: true})
	test.ExpectEquality(t, len(scr.writes), 1)

	// pass-through
	d.Dispatch(bus.Event{Address: registers.BootloaderOrigin, Data: 0x33})
	test.ExpectEquality(t, st.Read(registers.BootloaderOrigin), uint8(0x33))
	d.Dispatch(bus.Event{Address: registers.VectorsMemtop, Data: 0x44})
	test.ExpectEquality(t, st.Read(registers.VectorsMemtop), uint8(0x44))

	// unmatched writes below the boundary and writes outside the store
	d.Dispatch(bus.Event{Address: 0x0f, Data: 0x55})
	test.ExpectEquality(t, st.Read(0x0f), uint8(0))
	d.Dispatch(bus.Event{Address: registers.Size, Data: 0x55})
	d.Dispatch(bus.Event{Address: registers.VectorsOrigin, Read: true})

	test.ExpectEquality(t, d.Stats, dispatch.Stats{Reads: 1, Writes: 1, PassThrough: 2, Ignored: 5})
}

func TestDrain(t *testing.T) {
	st := registers.NewStore()
	d := dispatch.NewDispatcher(st, dispatch.Table{})

	prod, cons := bus.NewQueue(16)
	for i := range 10 {
		prod.Push(bus.Event{Address: registers.VectorsOrigin + uint16(i), Data: uint8(i)})
	}

	test.ExpectEquality(t, d.Drain(cons, 4), 4)
	test.ExpectEquality(t, cons.Len(), 6)
	test.ExpectEquality(t, d.Drain(cons, 100), 6)
	test.ExpectEquality(t, st.Read(registers.VectorsOrigin+9), uint8(9))
}

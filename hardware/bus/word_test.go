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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/periphery/hardware/bus"
	"github.com/jetsetilly/periphery/test"
)

func TestWordRoundTrip(t *testing.T) {
	for a := range bus.MaxAddress + 1 {
		for d := range 256 {
			for _, r := range []bool{false, true} {
				w := bus.Pack(uint16(a), r, uint8(d))
				if w.Address() != uint16(a) || w.Data() != uint8(d) || w.IsRead() != r {
					t.Fatalf("round trip failed for %04x %02x %v: %s", a, d, r, w)
				}
				ev := w.Event()
				if ev.Word() != w {
					t.Fatalf("event round trip failed for %s", w)
				}
			}
		}
	}
}

func TestWordLayout(t *testing.T) {
	w := bus.Pack(0x0005, true, 0xab)
	test.ExpectEquality(t, uint32(w), uint32(1<<31|0xab<<23|0x05<<9))

	// address is truncated to fourteen bits
	w = bus.Pack(0xffff, false, 0x00)
	test.ExpectEquality(t, w.Address(), uint16(bus.MaxAddress))
	test.ExpectFailure(t, w.IsRead())
}

func TestEventString(t *testing.T) {
	test.ExpectEquality(t, bus.Event{Address: 0x05, Read: true, Data: 0x12}.String(), "read RDR 12")
	test.ExpectEquality(t, bus.Event{Address: 0x20, Data: 0xff}.String(), "write 0020 ff")
}

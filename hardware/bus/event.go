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
	"fmt"

	"github.com/jetsetilly/periphery/hardware/registers"
)

// Event is a decoded bus cycle. There is exactly one Event for every bus
// cycle that targets the control path.
type Event struct {
	Address uint16
	Read    bool
	Data    uint8
}

func (ev Event) String() string {
	dir := "write"
	if ev.Read {
		dir = "read"
	}
	if n, ok := registers.Names[ev.Address]; ok {
		return fmt.Sprintf("%s %s %02x", dir, n, ev.Data)
	}
	return fmt.Sprintf("%s %04x %02x", dir, ev.Address, ev.Data)
}

// Word returns the event packed into a Word.
func (ev Event) Word() Word {
	return Pack(ev.Address, ev.Read, ev.Data)
}

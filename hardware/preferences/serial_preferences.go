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

package preferences

import (
	"github.com/jetsetilly/periphery/prefs"
)

// Special values for the transport preferences. Any other value is treated as
// the path to a serial device.
const (
	TransportNone  = "none"
	TransportStdio = "stdio"
)

// SerialPreferences configure the two serial bridges.
type SerialPreferences struct {
	dsk *prefs.Disk

	// the transport used by the console and auxiliary bridges
	Console prefs.String
	Aux     prefs.String

	// baud rate used when the transport is a serial device. the line is
	// always 8 data bits, no parity, one stop bit
	Baud prefs.Int

	// the size of the ring buffers in each direction. the usable capacity
	// of a ring buffer is one less than its size
	BufferSize prefs.Int
}

func newSerialPreferences(pth string) (*SerialPreferences, error) {
	p := &SerialPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.console", &p.Console)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.aux", &p.Aux)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.buffersize", &p.BufferSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *SerialPreferences) SetDefaults() {
	p.Console.Set(TransportStdio)
	p.Aux.Set(TransportNone)
	p.Baud.Set(115200)
	p.BufferSize.Set(32)
}

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
	"os"

	"github.com/jetsetilly/periphery/hardware/preferences"
)

// Open the transport named by the preference value. The special values
// preferences.TransportNone and preferences.TransportStdio select the Null
// and Console transports. Any other value is the path of a serial device.
func Open(name string, baud int) (Transport, error) {
	switch name {
	case "", preferences.TransportNone:
		return Null{}, nil
	case preferences.TransportStdio:
		c, err := NewConsole(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	t, err := OpenTerm(name, baud)
	if err != nil {
		return nil, err
	}
	return t, nil
}

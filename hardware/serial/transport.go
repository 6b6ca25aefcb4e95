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

// Transport is the far side of a serial bridge. Neither method should block.
type Transport interface {
	// Receive returns the next byte received by the transport. Returns false
	// if no byte is waiting.
	Receive() (uint8, bool)

	// Transmit sends a byte. Returns false if the transport cannot accept the
	// byte at the moment, in which case the byte should be offered again
	// later.
	Transmit(b uint8) bool

	// Close the transport. Transmit and Receive should not be called after
	// Close.
	Close() error
}

// Null implements the Transport interface. It never receives and discards
// everything that is transmitted.
type Null struct{}

// Receive implements the Transport interface.
func (Null) Receive() (uint8, bool) {
	return 0, false
}

// Transmit implements the Transport interface.
func (Null) Transmit(_ uint8) bool {
	return true
}

// Close implements the Transport interface.
func (Null) Close() error {
	return nil
}

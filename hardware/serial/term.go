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

//go:build !windows

package serial

import (
	"fmt"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/periphery/curated"
)

// TransportError is the pattern for errors returned when opening a transport.
const TransportError = "serial: transport: %v"

// the read timeout allows the reader goroutine to notice that the transport
// has been closed
const readTimeout = 100 * time.Millisecond

// Term is a Transport for a serial device, such as a USB serial adaptor. The
// line is set to raw mode, 8 data bits, no parity and one stop bit.
type Term struct {
	*stream
	device string
	t      *term.Term
}

// OpenTerm opens the serial device at the specified baud rate.
func OpenTerm(device string, baud int) (*Term, error) {
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TransportError, fmt.Errorf("%s: %w", device, err))
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		_ = t.Close()
		return nil, curated.Errorf(TransportError, fmt.Errorf("%s: %w", device, err))
	}

	return &Term{
		stream: newStream(t, t, true),
		device: device,
		t:      t,
	}, nil
}

func (t *Term) String() string {
	return t.device
}

// Close implements the Transport interface.
func (t *Term) Close() error {
	t.stop()
	_ = t.t.Restore()
	return t.t.Close()
}

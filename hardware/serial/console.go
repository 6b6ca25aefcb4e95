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
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jetsetilly/periphery/curated"
)

// Console is a Transport for the terminal the program is running in. If the
// input is a terminal it is put into raw mode so that every key press is
// received immediately.
type Console struct {
	*stream
	in    *os.File
	state *term.State
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(in *os.File, out io.Writer) (*Console, error) {
	c := &Console{
		in: in,
	}

	if term.IsTerminal(int(in.Fd())) {
		var err error
		c.state, err = term.MakeRaw(int(in.Fd()))
		if err != nil {
			return nil, curated.Errorf(TransportError, err)
		}
	}

	c.stream = newStream(in, out, false)

	return c, nil
}

// Close implements the Transport interface. The terminal is returned to the
// mode it was in before NewConsole() was called.
//
// The reader goroutine is blocked on the input until the next key press.
func (c *Console) Close() error {
	c.stop()
	if c.state != nil {
		return term.Restore(int(c.in.Fd()), c.state)
	}
	return nil
}

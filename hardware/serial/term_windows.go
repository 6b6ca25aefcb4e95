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

//go:build windows

package serial

import (
	"fmt"

	"github.com/jetsetilly/periphery/curated"
)

// TransportError is the pattern for errors returned when opening a transport.
const TransportError = "serial: transport: %v"

// Term is not supported on windows.
type Term struct {
	Null
}

// OpenTerm always returns an error on windows.
func OpenTerm(device string, _ int) (*Term, error) {
	return nil, curated.Errorf(TransportError, fmt.Errorf("%s: serial devices are not supported on this platform", device))
}

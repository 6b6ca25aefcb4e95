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

package pin

import "sync/atomic"

// Level is a digital output. It records the level of the output and the
// number of times the level has changed. It is safe to read the level from
// any goroutine.
//
// Level can be used as an led.Pin or as an irq.Line.
type Level struct {
	high    atomic.Bool
	changes atomic.Uint64
}

// Set the level of the output.
func (p *Level) Set(high bool) {
	if p.high.Swap(high) != high {
		p.changes.Add(1)
	}
}

// High returns true if the output is high.
func (p *Level) High() bool {
	return p.high.Load()
}

// Changes returns the number of times the level has changed.
func (p *Level) Changes() uint64 {
	return p.changes.Load()
}

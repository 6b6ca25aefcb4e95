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

package reset

import "sync/atomic"

// Line is the reset input. The host is held in reset while the line is
// asserted.
type Line interface {
	Asserted() bool
}

// Switch implements the Line interface. It can be asserted and released from
// any goroutine.
type Switch struct {
	asserted atomic.Bool
}

// Assert the reset line.
func (s *Switch) Assert() {
	s.asserted.Store(true)
}

// Release the reset line.
func (s *Switch) Release() {
	s.asserted.Store(false)
}

// Asserted implements the Line interface.
func (s *Switch) Asserted() bool {
	return s.asserted.Load()
}

// Controller watches the reset line. The device is re-initialised exactly
// once for every assertion of the line, no matter how long the line is held.
type Controller struct {
	line Line

	// the host is held in reset. the device has been re-initialised
	held bool

	reinitialise func()
	release      func()

	// number of times the device has been re-initialised
	count int
}

// NewController is the preferred method of initialisation for the Controller
// type. The reinitialise function is called on the leading edge of an
// assertion and the release function on the trailing edge. The release
// function can be nil.
func NewController(line Line, reinitialise func(), release func()) *Controller {
	return &Controller{
		line:         line,
		reinitialise: reinitialise,
		release:      release,
	}
}

// Step samples the reset line. Returns true if the host is being held in
// reset, in which case the other tasks of the slow path should not run.
func (c *Controller) Step() bool {
	asserted := c.line.Asserted()

	if asserted && !c.held {
		c.held = true
		c.count++
		c.reinitialise()
	} else if !asserted && c.held {
		c.held = false
		if c.release != nil {
			c.release()
		}
	}

	return c.held
}

// Held returns true if the host is being held in reset.
func (c *Controller) Held() bool {
	return c.held
}

// Count returns the number of times the device has been re-initialised.
func (c *Controller) Count() int {
	return c.count
}

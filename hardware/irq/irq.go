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

package irq

import (
	"github.com/jetsetilly/periphery/hardware/registers"
)

// Line is the interrupt output to the host.
type Line interface {
	Set(asserted bool)
}

// Controller drives the interrupt line from the ISR and ICR registers. The
// line is asserted while any enabled source bit of the ISR register is set.
// Bit 7 of the ISR register mirrors the line.
type Controller struct {
	store    *registers.Store
	line     Line
	asserted bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The line can be nil.
func NewController(store *registers.Store, line Line) *Controller {
	return &Controller{
		store: store,
		line:  line,
	}
}

// Reset disables all interrupt sources and releases the line.
func (c *Controller) Reset() {
	c.store.Write(registers.ICR, 0)
	c.store.ClearFlag(registers.ISR, registers.ISRIRQ)
	c.drive(false)
}

// Enable sets the interrupt enable mask. Only the source bits are used.
func (c *Controller) Enable(mask uint8) {
	c.store.Write(registers.ICR, mask&registers.ISRSourceMask)
}

// Step recalculates the interrupt line.
func (c *Controller) Step() {
	pending := c.store.Read(registers.ISR)&c.store.Read(registers.ICR)&registers.ISRSourceMask != 0
	if pending {
		c.store.SetFlag(registers.ISR, registers.ISRIRQ)
	} else {
		c.store.ClearFlag(registers.ISR, registers.ISRIRQ)
	}
	if pending != c.asserted {
		c.drive(pending)
	}
}

func (c *Controller) drive(asserted bool) {
	c.asserted = asserted
	if c.line != nil {
		c.line.Set(asserted)
	}
}

// Asserted returns true if the interrupt line is asserted.
func (c *Controller) Asserted() bool {
	return c.asserted
}

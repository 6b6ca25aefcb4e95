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

// Package dispatch implements the register event dispatcher. Every event
// taken from the event queue is routed to the component that owns the
// address, or written directly to the register store if the address is at or
// above the pass-through boundary.
//
// Routes are held in a Table indexed by address. Adding a register is a
// matter of adding an entry to the table.
package dispatch

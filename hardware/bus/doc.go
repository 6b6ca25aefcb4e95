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

// Package bus implements the fast path of the peripheral controller.
//
// The host CPU drives the bus through a Port. Reads are answered directly from
// the register store, with no work done by the fast path. Bus cycles that need
// attention from the slow path are packed into a Word and collected by the
// Engine, which decodes the Word into an Event and pushes it onto the event
// queue.
//
// The event queue has distinct Producer and Consumer handles. The Engine
// holds the Producer and the slow path holds the Consumer. When the queue is
// full the newest event is dropped and counted.
package bus

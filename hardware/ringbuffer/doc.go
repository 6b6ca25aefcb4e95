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

// Package ringbuffer implements a lock free ring buffer for exactly one
// producer and one consumer. It is used for the event queue between the fast
// path and the slow path, and for the buffers of the serial bridges.
//
// Put() never blocks. A full ring drops the new value and the caller is told
// so by the return value.
package ringbuffer

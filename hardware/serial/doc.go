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

// Package serial implements the serial bridges. There are two bridges, the
// console and the auxiliary port, each with its own data register and ready
// bits in the ISR register.
//
// A bridge is connected to a Transport. The Term transport is a physical
// serial device, the Console transport is the terminal the program is running
// in and the Buffer transport is in memory.
package serial

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

// Package hostclock implements the generator of the clock signal for the host
// CPU. There are eight speeds, each speed being the system clock divided by a
// fixed divider.
//
// The speed is selected by the host writing to the CLK register and is
// visible to the host in bits 0 to 2 of the SCR register.
package hostclock

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

// Package assert contains checks that are only compiled into the program when
// the "assertions" build tag is specified. Without the tag the functions are
// empty and cost nothing.
//
// The Owner type records the goroutine that first claims it and panics if any
// other goroutine subsequently claims it. It is used to check the single
// producer and single consumer discipline of queues shared between the two
// execution contexts of the device.
package assert

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

// Package led implements the status LED. The host selects one of four states
// by writing to the LED bits of the SCR register: off, on, slow blink or fast
// blink.
//
// The state machine never blocks. Blinking is done by comparing the time
// with a deadline on every Step(), the deadline being rearmed every time the
// LED is toggled.
package led

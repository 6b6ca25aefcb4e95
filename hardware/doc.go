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

// Package hardware is the base package for the peripheral controller. The
// Device type contains every component and is the entry point for both the
// fast path and the slow path.
//
// The host is attached to the device through the Port. The host's reset line
// is the ResetLine switch.
//
// The sub-packages contain the components themselves. The register store
// and the address map are in the registers package. The fast path is in the
// bus package and the routing of events is in the dispatch package. The rom,
// serial, led, irq and hostclock packages contain the state machines driven
// by the slow path.
package hardware

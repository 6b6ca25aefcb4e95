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

// Package logger is the central log for the application. Entries are tagged
// with the name of the sub-system making the entry. Consecutive identical
// entries are folded into one entry with a repeat count.
//
// Logging requests are accompanied by a Permission. The environment package
// implements Permission so that logging can be restricted to the main device.
//
// Note that the bus transaction engine never logs. It is not allowed to
// perform I/O.
package logger

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

// Package registers implements the register store and the address map of the
// peripheral controller.
//
// The store is a small array of bytes visible to the host. The first sixteen
// bytes are the named control registers, the remainder is free for the host
// to write to. A read by the host of any address is answered directly from
// the store.
//
// The slow path is the only writer of the store. The fast path reads the
// store through a View, which has no write methods.
package registers

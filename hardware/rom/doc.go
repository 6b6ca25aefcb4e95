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

// Package rom implements the ROM loader. The loader streams a chain of images
// to the host one byte at a time through the RDR register, along with the 24
// bit address of each byte. The host reads RDR to advance to the next byte
// and watches the complete flag in the SCR register to know when the chain has
// been exhausted.
//
// The loader also holds the bootstrap, which is copied into the bootloader
// region of the register store whenever the device is re-initialised. The
// bootstrap is not streamed.
//
// Images are usually loaded from raw binary files but can also be decoded
// from tape recordings with LoadImage().
package rom

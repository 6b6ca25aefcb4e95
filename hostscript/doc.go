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

// Package hostscript runs Lua scripts in place of the host CPU. It is useful
// for exercising the device without real hardware attached to the bus.
//
// A script that loads every byte from the ROM loader and prints it:
//
//	write(reg.SCR, 0x20)
//	wait()
//	while not bit(read(reg.SCR), 0x80) do
//		print(string.format("%06x %02x", read(reg.RBA) * 65536 + read(reg.RAHI) * 256 + read(reg.RALO), read(reg.RDR)))
//		wait()
//	end
//
// The scripting language is Lua 5.1, which has no bitwise operators. Bits are
// tested with the bit() function.
package hostscript

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

// Package tape decodes images recorded in the Kansas City Standard. Images
// are stored as wav or mp3 recordings and decoded into bytes before being
// streamed by the ROM loader.
//
// The recording is 300 baud. A zero bit is four cycles of 1200Hz and a one
// bit is eight cycles of 2400Hz. Each byte is framed by one start bit (zero)
// and two stop bits (one) and is sent least significant bit first. The gaps
// between bytes and the leader are filled with one bits.
//
// Bits are distinguished by counting the number of zero crossings in the bit
// period.
package tape

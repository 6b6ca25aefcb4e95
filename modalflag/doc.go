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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. A mode is a command line argument that selects what the
// program does, each mode having its own set of flags. For example:
//
//	periphery -prefs led.fast::50ms run bios.bin
//	periphery script boot.lua
//	periphery tape -base 0xd000 program.wav program.bin
//
// Arguments are set once with NewArgs() and then parsed one layer at a time
// with Parse(). Flags and sub-modes are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "script", "tape")
//	verbose := md.AddBool("verbose", false, "echo log to terminal")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// The selected mode is then available with Mode(). The flags for the
// selected mode are added after a call to NewMode() and parsed with another
// call to Parse(). The arguments that remain after the flags are available
// with RemainingArgs() and GetArg().
//
// Help is printed automatically for the -help flag and includes the list of
// sub-modes.
package modalflag

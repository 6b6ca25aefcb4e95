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

// Package prefs facilitates the storage of preference values on disk. The
// types Bool, String, Int, Float, Duration and Generic are all safe to access
// from more than one goroutine.
//
// Preferences are added to a Disk instance under a key:
//
//	var interval prefs.Duration
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("led.slow", &interval)
//	err = dsk.Load(true)
//
// Values are stored on disk one per line, as "key :: value". Values can be
// overridden from the command line by pushing a preferences string onto the
// command line stack before calling Load():
//
//	prefs.PushCommandLineStack("led.slow::250ms; serial.console::stdio")
package prefs

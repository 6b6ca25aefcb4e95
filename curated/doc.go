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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the error. Packages that return curated
// errors export the patterns they use so that callers can test for them:
//
//	const ImageTooLarge = "image: %s is too large (%d bytes)"
//
//	err := curated.Errorf(ImageTooLarge, name, n)
//
//	if curated.Is(err, ImageTooLarge) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Curated errors can wrap other curated errors or any other
// error, and uncurated errors in the chain are visible to errors.Is() and
// errors.As() through Unwrap().
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. This means a function can wrap an error with its own prefix without
// worrying whether the wrapped error already carries the same prefix:
//
//	curated.Errorf("rom: %v", curated.Errorf("rom: empty image"))
//
// results in the message "rom: empty image".
package curated

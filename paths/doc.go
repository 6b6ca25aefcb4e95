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

// Package paths contains functions to prepare paths to resources such as the
// preferences file.
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".periphery", is present in the program's current directory then that is
// the base path that will be used. If it is not present then the user's
// config directory is used, as reported by os.UserConfigDir(). In that case,
// on a modern Linux system, the following:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// will return:
//
//	/home/user/.config/periphery/preferences
//
// Directories in the returned path are created if they do not exist.
package paths

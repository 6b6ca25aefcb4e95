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

package preferences

import (
	"github.com/jetsetilly/periphery/prefs"
)

// ROMPreferences name the images used by the ROM loader. An empty path means
// the image is not present.
type ROMPreferences struct {
	dsk *prefs.Disk

	// the bootstrap image is copied into the bootloader region of the
	// register store. it is not streamed
	Bootstrap prefs.String

	// the images streamed by the ROM loader, in order. the base is the
	// effective address of the first byte of the image
	Primary       prefs.String
	PrimaryBase   prefs.Int
	Secondary     prefs.String
	SecondaryBase prefs.Int
}

func newROMPreferences(pth string) (*ROMPreferences, error) {
	p := &ROMPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rom.bootstrap", &p.Bootstrap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rom.primary", &p.Primary)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rom.primary.base", &p.PrimaryBase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rom.secondary", &p.Secondary)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rom.secondary.base", &p.SecondaryBase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *ROMPreferences) SetDefaults() {
	p.Bootstrap.Set("")
	p.Primary.Set("")
	p.PrimaryBase.Set(0xd000)
	p.Secondary.Set("")
	p.SecondaryBase.Set(0x010000)
}

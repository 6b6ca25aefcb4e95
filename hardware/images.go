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

package hardware

import (
	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/hardware/rom"
)

// Images used by the ROM loader.
type Images struct {
	// copied into the bootloader region of the register store
	Bootstrap []uint8

	// streamed in order
	Chain []rom.Image
}

// LoadImages loads the images named in the preferences. Images with an empty
// path are not loaded.
func LoadImages(p *preferences.ROMPreferences) (Images, error) {
	var imgs Images

	if pth := p.Bootstrap.String(); pth != "" {
		img, err := rom.LoadImage(pth, 0)
		if err != nil {
			return Images{}, err
		}
		imgs.Bootstrap = img.Data
	}

	chain := []struct {
		pth  string
		base int
	}{
		{pth: p.Primary.String(), base: p.PrimaryBase.Get().(int)},
		{pth: p.Secondary.String(), base: p.SecondaryBase.Get().(int)},
	}

	for _, c := range chain {
		if c.pth == "" {
			continue
		}
		img, err := rom.LoadImage(c.pth, uint32(c.base))
		if err != nil {
			return Images{}, err
		}
		imgs.Chain = append(imgs.Chain, img)
	}

	return imgs, nil
}

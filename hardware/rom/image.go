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

package rom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/periphery/curated"
	"github.com/jetsetilly/periphery/tape"
)

// ImageError is the pattern for errors returned when loading an image.
const ImageError = "rom: image: %v"

// MaxAddress is the largest effective address that can be published.
const MaxAddress = 0xffffff

// Image is a block of bytes streamed to the host by the Loader. The first byte
// of the image is published at the Base address.
type Image struct {
	Name string
	Base uint32
	Data []uint8
}

func (img Image) String() string {
	return fmt.Sprintf("%s (%d bytes at %06x)", img.Name, len(img.Data), img.Base)
}

// Validate checks that every byte of the image has an address in the 24 bit
// address space.
func (img Image) Validate() error {
	if len(img.Data) == 0 {
		return nil
	}
	if uint64(img.Base)+uint64(len(img.Data))-1 > MaxAddress {
		return curated.Errorf(ImageError, fmt.Errorf("%s extends beyond the address space", img.Name))
	}
	return nil
}

// LoadImage loads the file at pth. Files with a wav or mp3 extension are
// treated as tape recordings and are decoded. All other files are loaded as
// raw binary.
func LoadImage(pth string, base uint32) (Image, error) {
	img := Image{
		Name: filepath.Base(pth),
		Base: base,
	}

	ext := strings.ToLower(filepath.Ext(pth))
	switch ext {
	case ".wav", ".mp3":
		f, err := os.Open(pth)
		if err != nil {
			return Image{}, curated.Errorf(ImageError, err)
		}
		defer f.Close()

		img.Data, err = tape.Decode(f, ext)
		if err != nil {
			return Image{}, curated.Errorf(ImageError, err)
		}
	default:
		var err error
		img.Data, err = os.ReadFile(pth)
		if err != nil {
			return Image{}, curated.Errorf(ImageError, err)
		}
	}

	if err := img.Validate(); err != nil {
		return Image{}, err
	}

	return img, nil
}

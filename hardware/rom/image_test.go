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

package rom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/periphery/curated"
	"github.com/jetsetilly/periphery/hardware/rom"
	"github.com/jetsetilly/periphery/tape"
	"github.com/jetsetilly/periphery/test"
)

func TestLoadBinary(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "bios.bin")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{1, 2, 3}, 0o600))

	img, err := rom.LoadImage(pth, 0xd000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Name, "bios.bin")
	test.ExpectEquality(t, img.Base, uint32(0xd000))
	test.ExpectEquality(t, len(img.Data), 3)
	test.ExpectEquality(t, img.String(), "bios.bin (3 bytes at 00d000)")

	_, err = rom.LoadImage(filepath.Join(t.TempDir(), "missing.bin"), 0)
	test.ExpectSuccess(t, curated.Is(err, rom.ImageError))
}

func TestLoadTape(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "program.wav")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tape.Encode(f, []uint8{0xde, 0xad}, 0))
	test.DemandSuccess(t, f.Close())

	img, err := rom.LoadImage(pth, 0x010000)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(img.Data), 2)
	test.ExpectEquality(t, img.Data[0], uint8(0xde))
	test.ExpectEquality(t, img.Data[1], uint8(0xad))
}

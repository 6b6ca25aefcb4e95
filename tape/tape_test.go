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

package tape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/periphery/curated"
	"github.com/jetsetilly/periphery/tape"
	"github.com/jetsetilly/periphery/test"
)

func encode(t *testing.T, data []uint8, sampleRate int) string {
	t.Helper()

	pth := filepath.Join(t.TempDir(), "image.wav")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	test.DemandSuccess(t, tape.Encode(f, data, sampleRate))
	return pth
}

func decode(t *testing.T, pth string) ([]uint8, error) {
	t.Helper()

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	return tape.Decode(f, filepath.Ext(pth))
}

func TestRoundTrip(t *testing.T) {
	data := []uint8{0x00, 0xff, 0x55, 0xaa, 0x01, 0x80, 0xd0, 0x4c}

	for _, rate := range []int{22050, 44100, 48000} {
		got, err := decode(t, encode(t, data, rate))
		test.DemandSuccess(t, err, rate)
		test.DemandEquality(t, len(got), len(data), rate)
		for i := range data {
			test.ExpectEquality(t, got[i], data[i], rate, i)
		}
	}
}

func TestAllValues(t *testing.T) {
	data := make([]uint8, 256)
	for i := range data {
		data[i] = uint8(i)
	}

	got, err := decode(t, encode(t, data, 0))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(got), len(data))
	for i := range data {
		test.ExpectEquality(t, got[i], data[i], i)
	}
}

func TestNoData(t *testing.T) {
	_, err := decode(t, encode(t, nil, 0))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, tape.TapeError))
}

func TestUnsupported(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "image.ogg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0, 1, 2, 3}, 0o600))
	_, err := decode(t, pth)
	test.ExpectFailure(t, err)

	pth = filepath.Join(t.TempDir(), "image.wav")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0, 1, 2, 3}, 0o600))
	_, err = decode(t, pth)
	test.ExpectFailure(t, err)
}

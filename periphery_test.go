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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/periphery/test"
)

func TestTapeMode(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "image.bin")
	wav := filepath.Join(dir, "image.wav")
	out := filepath.Join(dir, "decoded.bin")

	data := []uint8{0xa9, 0x00, 0x8d, 0x00, 0xd0, 0x60}
	test.DemandSuccess(t, os.WriteFile(bin, data, 0644))

	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"tape", "-encode", bin, wav}, &s), 0)
	test.ExpectEquality(t, s.String(), "")

	s.Reset()
	test.ExpectEquality(t, launch([]string{"TAPE", wav, out}, &s), 0)
	test.ExpectEquality(t, s.String(), "! 6 bytes decoded from image\n")

	got, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(got), string(data))
}

func TestTapeModeArguments(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"TAPE", "image.wav"}, &s), exitMode)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "* error in TAPE mode"))
}

func TestRunModeArguments(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"RUN", "unexpected"}, &s), exitMode)
	test.ExpectSuccess(t, strings.Contains(s.String(), "too many arguments"))
}

func TestPerformanceModeArguments(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "disk"}, &s), exitMode)
	test.ExpectSuccess(t, strings.Contains(s.String(), "unknown profile type"))
}

func TestVersionFlag(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch([]string{"-version"}, &s), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "Periphery"))
}

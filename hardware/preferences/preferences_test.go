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

package preferences_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/prefs"
	"github.com/jetsetilly/periphery/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.HostClock.Get().(int), 7)
	test.ExpectEquality(t, p.EventQueueDepth.Get().(int), 32)
	test.ExpectEquality(t, p.LED.Slow.Get().(time.Duration), 500*time.Millisecond)
	test.ExpectEquality(t, p.LED.Fast.Get().(time.Duration), 100*time.Millisecond)
	test.ExpectEquality(t, p.Serial.Baud.Get().(int), 115200)
	test.ExpectEquality(t, p.Serial.Console.String(), preferences.TransportStdio)
	test.ExpectEquality(t, p.ROM.PrimaryBase.Get().(int), 0xd000)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.LED.Fast.Set("50ms"))
	test.ExpectSuccess(t, p.ROM.Primary.Set("bios.bin"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.LED.Fast.Get().(time.Duration), 50*time.Millisecond)
	test.ExpectEquality(t, q.ROM.Primary.String(), "bios.bin")

	// command line values override the file
	prefs.PushCommandLineStack("device.hostclock::3")
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, q.HostClock.Get().(int), 3)

	q.SetDefaults()
	test.ExpectEquality(t, q.LED.Fast.Get().(time.Duration), 100*time.Millisecond)
}

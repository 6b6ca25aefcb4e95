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

package prefs_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/periphery/prefs"
	"github.com/jetsetilly/periphery/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partically) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// get prefs value that doesn't exist after pushing a parially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")

	// add another command line group
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	var slow prefs.Duration
	var console prefs.String
	test.DemandSuccess(t, dsk.Add("led.slow", &slow))
	test.DemandSuccess(t, dsk.Add("serial.console", &console))

	test.ExpectSuccess(t, slow.Set(time.Second))
	test.ExpectSuccess(t, console.Set("stdio"))
	test.DemandSuccess(t, dsk.Save())

	// values on the command line take precedence over values on disk. keys
	// that don't match a preference are reported as unused
	prefs.PushCommandLineStack("led.slow::250ms; serial.console::none; serial.bogus::1")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "serial.bogus::1")

	test.ExpectEquality(t, slow.Get().(time.Duration), 250*time.Millisecond)
	test.ExpectEquality(t, console.String(), "none")

	// the overrides are not saved unless requested and do not apply to a
	// later load
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, slow.Get().(time.Duration), time.Second)
	test.ExpectEquality(t, console.String(), "stdio")

	// a malformed override fails the load
	prefs.PushCommandLineStack("led.slow::soon")
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

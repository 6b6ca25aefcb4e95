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

package reset_test

import (
	"testing"

	"github.com/jetsetilly/periphery/hardware/reset"
	"github.com/jetsetilly/periphery/test"
)

func TestEdgeTriggered(t *testing.T) {
	var sw reset.Switch
	var reinit, release int

	c := reset.NewController(&sw, func() { reinit++ }, func() { release++ })

	test.ExpectFailure(t, c.Step())
	test.ExpectEquality(t, reinit, 0)

	// held for many passes but re-initialised once
	sw.Assert()
	for range 10 {
		test.ExpectSuccess(t, c.Step())
	}
	test.ExpectEquality(t, reinit, 1)
	test.ExpectEquality(t, release, 0)

	sw.Release()
	test.ExpectFailure(t, c.Step())
	test.ExpectFailure(t, c.Step())
	test.ExpectEquality(t, release, 1)

	// a second assertion re-initialises again
	sw.Assert()
	test.ExpectSuccess(t, c.Step())
	test.ExpectSuccess(t, c.Held())
	test.ExpectEquality(t, reinit, 2)
	test.ExpectEquality(t, c.Count(), 2)
}

func TestNilRelease(t *testing.T) {
	var sw reset.Switch
	c := reset.NewController(&sw, func() {}, nil)
	sw.Assert()
	c.Step()
	sw.Release()
	test.ExpectFailure(t, c.Step())
}

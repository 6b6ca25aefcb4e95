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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/periphery/assert"
	"github.com/jetsetilly/periphery/test"
)

func TestGoroutineID(t *testing.T) {
	main := assert.GoroutineID()
	test.ExpectInequality(t, main, 0)

	other := make(chan uint64)
	go func() {
		other <- assert.GoroutineID()
	}()
	test.ExpectInequality(t, <-other, main)
}

func TestOwnerSameGoroutine(t *testing.T) {
	o := assert.NewOwner("test")
	o.Claim()
	o.Claim()
	o.Release()
	o.Claim()
}

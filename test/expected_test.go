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

package test_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/periphery/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 0.5, 0.5, 0.01)
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	w.Write([]byte("abc"))
	test.ExpectSuccess(t, w.Compare("abc"))
	w.Write([]byte("def"))
	test.ExpectEquality(t, w.String(), "abcdef")
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

func TestExpectEqualityRegisterWidths(t *testing.T) {
	// register values and bus addresses are compared with their own types
	test.ExpectEquality(t, uint8(0x40)|uint8(0x07), uint8(0x47))
	test.ExpectInequality(t, uint8(0x18)&^uint8(0x18), uint8(0x18))
	test.ExpectEquality(t, uint16(0x3fff)&uint16(0x4008), uint16(0x0008))
	test.ExpectSuccess(t, test.ExpectEquality(t, uint8(0x80), uint8(0x80), "complete flag"))
}

func TestCompareWriterConcurrent(t *testing.T) {
	var w test.CompareWriter

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 1000 {
			w.Write([]byte("ab"))
		}
	}()

	// output captured from a running device is read while it is written
	for range 100 {
		s := w.String()
		test.ExpectEquality(t, len(s)%2, 0)
	}
	wg.Wait()

	test.ExpectSuccess(t, w.Compare(strings.Repeat("ab", 1000)))
}

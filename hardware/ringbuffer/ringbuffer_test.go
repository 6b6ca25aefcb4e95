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

package ringbuffer_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/periphery/hardware/ringbuffer"
	"github.com/jetsetilly/periphery/test"
)

func TestEmpty(t *testing.T) {
	r := ringbuffer.New[uint8](4)
	test.ExpectSuccess(t, r.IsEmpty())
	test.ExpectFailure(t, r.IsFull())
	test.ExpectEquality(t, r.Len(), 0)

	_, ok := r.Get()
	test.ExpectFailure(t, ok)
	_, ok = r.Peek()
	test.ExpectFailure(t, ok)
}

func TestCapacity(t *testing.T) {
	r := ringbuffer.New[uint8](4)
	test.ExpectEquality(t, r.Cap(), 3)

	test.ExpectSuccess(t, r.Put(1))
	test.ExpectSuccess(t, r.Put(2))
	test.ExpectSuccess(t, r.Put(3))
	test.ExpectSuccess(t, r.IsFull())
	test.ExpectEquality(t, r.Len(), 3)

	// newest value is dropped
	test.ExpectFailure(t, r.Put(4))
	test.ExpectEquality(t, r.Len(), 3)

	v, ok := r.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(1))
	test.ExpectFailure(t, r.IsFull())

	test.ExpectSuccess(t, r.Put(5))
	for _, e := range []uint8{2, 3, 5} {
		v, ok = r.Get()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, e)
	}
	test.ExpectSuccess(t, r.IsEmpty())
}

func TestMinimumSize(t *testing.T) {
	r := ringbuffer.New[int](0)
	test.ExpectEquality(t, r.Cap(), 1)
	test.ExpectSuccess(t, r.Put(1))
	test.ExpectFailure(t, r.Put(2))
}

func TestWrapAround(t *testing.T) {
	r := ringbuffer.New[int](5)
	n := 0
	for i := range 100 {
		test.ExpectSuccess(t, r.Put(i))
		if i%3 == 2 {
			for !r.IsEmpty() {
				v, _ := r.Get()
				test.ExpectEquality(t, v, n)
				n++
			}
		}
		test.ExpectInequality(t, r.Len(), r.Cap()+1)
	}
	test.ExpectEquality(t, r.Drain(), 100-n)

	r.Put(1)
	r.Reset()
	test.ExpectSuccess(t, r.IsEmpty())
}

func TestConcurrentFIFO(t *testing.T) {
	const count = 10000

	r := ringbuffer.New[int](8)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; {
			if r.Put(i) {
				i++
			}
		}
	}()

	for i := 0; i < count; {
		if v, ok := r.Get(); ok {
			test.ExpectEquality(t, v, i)
			i++
		}
	}
	wg.Wait()
}

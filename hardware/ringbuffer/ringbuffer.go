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

package ringbuffer

import "sync/atomic"

// Ring is a fixed size ring buffer for one producer and one consumer, which
// may be on different goroutines.
//
// The head index is only written by the consumer and the tail index is only
// written by the producer. One slot is always kept empty so that a full ring
// can be distinguished from an empty ring. The usable capacity is therefore
// one less than the size.
type Ring[T any] struct {
	buf  []T
	head atomic.Uint32
	tail atomic.Uint32
}

// MinSize is the smallest size of a ring. It gives a usable capacity of one.
const MinSize = 2

// New is the preferred method of initialisation for the Ring type. A size of
// less than MinSize is treated as MinSize.
func New[T any](size int) *Ring[T] {
	size = max(size, MinSize)
	return &Ring[T]{
		buf: make([]T, size),
	}
}

func (r *Ring[T]) next(i uint32) uint32 {
	i++
	if i >= uint32(len(r.buf)) {
		return 0
	}
	return i
}

// Put v at the end of the ring. Returns false if the ring is full, in which
// case v is dropped. Only the producer should call Put().
func (r *Ring[T]) Put(v T) bool {
	t := r.tail.Load()
	n := r.next(t)
	if n == r.head.Load() {
		return false
	}
	r.buf[t] = v
	r.tail.Store(n)
	return true
}

// Get the oldest value from the ring. Returns false if the ring is empty.
// Only the consumer should call Get().
func (r *Ring[T]) Get() (T, bool) {
	var v T
	h := r.head.Load()
	if h == r.tail.Load() {
		return v, false
	}
	v = r.buf[h]
	r.head.Store(r.next(h))
	return v, true
}

// Peek returns the oldest value in the ring without removing it. Only the
// consumer should call Peek().
func (r *Ring[T]) Peek() (T, bool) {
	var v T
	h := r.head.Load()
	if h == r.tail.Load() {
		return v, false
	}
	return r.buf[h], true
}

// IsEmpty returns true if there are no values in the ring.
func (r *Ring[T]) IsEmpty() bool {
	return r.head.Load() == r.tail.Load()
}

// IsFull returns true if a call to Put() would fail.
func (r *Ring[T]) IsFull() bool {
	return r.next(r.tail.Load()) == r.head.Load()
}

// Len returns the number of values in the ring.
func (r *Ring[T]) Len() int {
	h := int(r.head.Load())
	t := int(r.tail.Load())
	if t >= h {
		return t - h
	}
	return len(r.buf) - h + t
}

// Cap returns the usable capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf) - 1
}

// Drain removes all values from the ring, returning the number removed. It is
// safe for the consumer to call Drain() while the producer is active.
func (r *Ring[T]) Drain() int {
	n := 0
	for {
		if _, ok := r.Get(); !ok {
			return n
		}
		n++
	}
}

// Reset empties the ring. Neither the producer nor the consumer should be
// active when Reset() is called.
func (r *Ring[T]) Reset() {
	r.head.Store(0)
	r.tail.Store(0)
}

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

package bus

import (
	"sync/atomic"

	"github.com/jetsetilly/periphery/assert"
	"github.com/jetsetilly/periphery/hardware/ringbuffer"
)

// queue of events from the fast path to the slow path
type queue struct {
	ring *ringbuffer.Ring[Event]

	// the number of events that have been dropped because the ring was full.
	// only ever incremented by the producer
	dropped atomic.Uint64
}

// Producer is the fast path end of the event queue.
type Producer struct {
	q *queue
}

// Consumer is the slow path end of the event queue.
type Consumer struct {
	q     *queue
	owner *assert.Owner

	// the value of the dropped count the last time it was read by the consumer
	reported uint64
}

// NewQueue creates an event queue with the specified depth. The depth is the
// size of the underlying ring buffer and so the queue can hold one fewer
// events than the depth.
func NewQueue(depth int) (*Producer, *Consumer) {
	q := &queue{
		ring: ringbuffer.New[Event](depth),
	}
	return &Producer{q: q}, &Consumer{q: q, owner: assert.NewOwner("event consumer")}
}

// Push an event onto the queue. If the queue is full the event is dropped and
// the function returns false.
func (p *Producer) Push(ev Event) bool {
	if !p.q.ring.Put(ev) {
		p.q.dropped.Add(1)
		return false
	}
	return true
}

// Pop the oldest event from the queue. Returns false if there are no events.
func (c *Consumer) Pop() (Event, bool) {
	c.owner.Claim()
	return c.q.ring.Get()
}

// Flush discards all events in the queue. Returns the number of events
// discarded.
func (c *Consumer) Flush() int {
	c.owner.Claim()
	return c.q.ring.Drain()
}

// Len returns the number of events waiting in the queue.
func (c *Consumer) Len() int {
	return c.q.ring.Len()
}

// Cap returns the number of events the queue can hold.
func (c *Consumer) Cap() int {
	return c.q.ring.Cap()
}

// Dropped returns the number of events that have been dropped since the
// previous call to Dropped().
func (c *Consumer) Dropped() uint64 {
	c.owner.Claim()
	d := c.q.dropped.Load()
	n := d - c.reported
	c.reported = d
	return n
}

// Release the consumer so that it can be used from a different goroutine.
// Only meaningful when assertions are compiled in.
func (c *Consumer) Release() {
	c.owner.Release()
}

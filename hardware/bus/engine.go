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
	"context"
	"runtime"
	"sync/atomic"

	"github.com/jetsetilly/periphery/hardware/registers"
)

// Decoder is the source of bus words. It stands for the hardware that
// watches the bus and answers host reads autonomously, reporting to the
// engine only those bus cycles that need attention from the slow path.
//
// NextWord() must not block. It returns false if there is no word waiting.
type Decoder interface {
	NextWord() (Word, bool)
}

// Engine is the fast path. It takes words from the Decoder, decodes them and
// pushes the resulting events onto the event queue.
//
// The engine performs no I/O and does not allocate. In particular it never
// logs. Problems are counted and the counts are reported by the slow path.
type Engine struct {
	decoder Decoder
	events  *Producer

	// number of words taken from the decoder
	serviced atomic.Uint64
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(decoder Decoder, events *Producer) *Engine {
	return &Engine{
		decoder: decoder,
		events:  events,
	}
}

// Poll services at most one bus word. Returns true if a word was serviced.
//
// Words for addresses outside the register store are ignored. An event that
// doesn't fit in the queue is dropped.
func (e *Engine) Poll() bool {
	w, ok := e.decoder.NextWord()
	if !ok {
		return false
	}
	if w.Address() < registers.Size {
		e.events.Push(w.Event())
	}
	e.serviced.Add(1)
	return true
}

// Serviced returns the number of words taken from the decoder. A word is
// counted after its event has been pushed onto the queue.
func (e *Engine) Serviced() uint64 {
	return e.serviced.Load()
}

// Run polls the decoder until the context is done. The returned error is the
// context's error.
//
// The goroutine yields to the scheduler when there is nothing to do.
func (e *Engine) Run(ctx context.Context) error {
	done := ctx.Done()
	for {
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		if !e.Poll() {
			runtime.Gosched()
		}
	}
}

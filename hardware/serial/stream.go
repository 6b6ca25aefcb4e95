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

package serial

import (
	"errors"
	"io"
	"os"
	"sync/atomic"

	"github.com/jetsetilly/periphery/hardware/ringbuffer"
)

// the size of the buffers between a stream and its goroutines
const streamBuffer = 256

// stream adapts a blocking reader and writer to the non-blocking Transport
// interface. A goroutine reads from the reader into a ring buffer and
// another goroutine writes to the writer from a channel.
type stream struct {
	rx *ringbuffer.Ring[uint8]
	tx chan uint8

	// the first error encountered by either goroutine
	err atomic.Pointer[error]

	done chan struct{}
}

// if polled is true then a read returning no data is a timeout and the reader
// tries again. otherwise io.EOF ends the stream
func newStream(r io.Reader, w io.Writer, polled bool) *stream {
	s := &stream{
		rx:   ringbuffer.New[uint8](streamBuffer),
		tx:   make(chan uint8, streamBuffer),
		done: make(chan struct{}),
	}

	go func() {
		b := make([]uint8, 1)
		for {
			select {
			case <-s.done:
				return
			default:
			}

			n, err := r.Read(b)
			if n > 0 {
				// the byte is dropped if the ring is full
				s.rx.Put(b[0])
				continue
			}
			if err == nil || errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			if polled && errors.Is(err, io.EOF) {
				continue
			}
			s.fail(err)
			return
		}
	}()

	go func() {
		b := make([]uint8, 1)
		for {
			select {
			case <-s.done:
				return
			case b[0] = <-s.tx:
				if _, err := w.Write(b); err != nil {
					s.fail(err)
					return
				}
			}
		}
	}()

	return s
}

func (s *stream) fail(err error) {
	s.err.CompareAndSwap(nil, &err)
}

// Receive implements the Transport interface.
func (s *stream) Receive() (uint8, bool) {
	return s.rx.Get()
}

// Transmit implements the Transport interface.
func (s *stream) Transmit(b uint8) bool {
	select {
	case s.tx <- b:
		return true
	default:
		return false
	}
}

// Err returns the first error encountered by the stream. After an error the
// stream no longer receives or transmits.
func (s *stream) Err() error {
	if err := s.err.Load(); err != nil {
		return *err
	}
	return nil
}

func (s *stream) stop() {
	close(s.done)
}

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
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/jetsetilly/periphery/test"
)

// writer is safe for the stream's writer goroutine and the test
type writer struct {
	buf chan uint8
}

func (w *writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.buf <- b
	}
	return len(p), nil
}

func TestStream(t *testing.T) {
	w := &writer{buf: make(chan uint8, 16)}
	s := newStream(bytes.NewReader([]byte("abc")), w, false)
	defer s.stop()

	var got []uint8
	deadline := time.Now().Add(time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		if v, ok := s.Receive(); ok {
			got = append(got, v)
		}
	}
	test.ExpectEquality(t, string(got), "abc")

	test.ExpectSuccess(t, s.Transmit('z'))
	select {
	case v := <-w.buf:
		test.ExpectEquality(t, v, uint8('z'))
	case <-time.After(time.Second):
		t.Error("byte was not written")
	}

	// the end of the reader is reported as an error
	for s.Err() == nil && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectSuccess(t, s.Err() == io.EOF)
}

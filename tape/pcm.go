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

package tape

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

func readPCM(r io.ReadSeeker, ext string) (pcm, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return readWAV(r)
	case ".mp3":
		return readMP3(r)
	}
	return pcm{}, fmt.Errorf("unsupported recording format (%s)", ext)
}

func readWAV(r io.ReadSeeker) (pcm, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return pcm{}, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm{}, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// first channel only
	chans := max(int(dec.NumChans), 1)
	p := pcm{
		sampleRate: int(dec.SampleRate),
		data:       make([]float32, 0, len(floatBuf.Data)/chans),
	}
	for i := 0; i < len(floatBuf.Data); i += chans {
		p.data = append(p.data, floatBuf.Data[i])
	}

	return p, nil
}

func readMP3(r io.Reader) (pcm, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm{}, fmt.Errorf("mp3: %w", err)
	}

	p := pcm{
		sampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16 bit little endian stereo. we only want
	// the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			p.data = append(p.data, float32(int16(binary.LittleEndian.Uint16(chunk[i:]))))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return pcm{}, fmt.Errorf("mp3: %w", err)
		}
	}

	return p, nil
}

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
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/periphery/curated"
)

// DefaultSampleRate is the sample rate used by Encode() if no other rate is
// specified.
const DefaultSampleRate = 44100

// length of the mark tone before and after the data, in bit periods
const (
	leader  = Baud
	trailer = Baud / 10
)

// Encode data as a 16 bit mono wav recording. If sampleRate is zero then
// DefaultSampleRate is used.
func Encode(w io.WriteSeeker, data []uint8, sampleRate int) error {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	s := synth{
		sampleRate: float64(sampleRate),
		amplitude:  math.MaxInt16 * 0.8,
	}

	s.tone(MarkFreq, leader)
	for _, v := range data {
		s.tone(SpaceFreq, 1)
		for b := range dataBits {
			if v>>b&0x01 == 0x01 {
				s.tone(MarkFreq, 1)
			} else {
				s.tone(SpaceFreq, 1)
			}
		}
		s.tone(MarkFreq, stopBits)
	}
	s.tone(MarkFreq, trailer)

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           s.data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(TapeError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(TapeError, err)
	}
	return nil
}

// synth is a phase continuous tone generator
type synth struct {
	sampleRate float64
	amplitude  float64
	phase      float64

	// fractional samples carried over from the previous tone
	carry float64

	data []int
}

func (s *synth) tone(freq float64, bits int) {
	n := s.sampleRate*float64(bits)/Baud + s.carry
	samples := int(n)
	s.carry = n - float64(samples)

	step := 2 * math.Pi * freq / s.sampleRate
	for range samples {
		s.data = append(s.data, int(math.Sin(s.phase)*s.amplitude))
		s.phase = math.Mod(s.phase+step, 2*math.Pi)
	}
}

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
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/periphery/curated"
)

// TapeError is the pattern for all errors returned by the package.
const TapeError = "tape: %v"

// Kansas City Standard at 300 baud.
const (
	Baud      = 300
	SpaceFreq = 1200 // a zero bit
	MarkFreq  = 2400 // a one bit

	dataBits = 8
	stopBits = 2
)

// a bit period contains eight zero crossings for a space and sixteen for a
// mark. the threshold is halfway between
const markThreshold = 12

// minimum amplitude of a sample, as a fraction of the loudest sample, for it
// to be considered part of a cycle. quieter samples are noise
const hysteresis = 0.1

// Decode the recording in r. The ext argument is the filename extension of
// the recording and selects the audio format. Supported extensions are ".wav"
// and ".mp3".
func Decode(r io.ReadSeeker, ext string) ([]uint8, error) {
	p, err := readPCM(r, ext)
	if err != nil {
		return nil, curated.Errorf(TapeError, err)
	}
	data, err := decode(p)
	if err != nil {
		return nil, curated.Errorf(TapeError, err)
	}
	return data, nil
}

// pcm is a mono recording
type pcm struct {
	sampleRate int
	data       []float32
}

// crossings returns the index of every sample at which the signal changes
// sign. small excursions either side of zero are ignored
func crossings(p pcm) []int {
	var peak float32
	for _, s := range p.data {
		peak = max(peak, s, -s)
	}
	h := peak * hysteresis

	var c []int
	positive := false
	started := false
	for i, s := range p.data {
		switch {
		case s > h:
			if started && !positive {
				c = append(c, i)
			}
			positive = true
			started = true
		case s < -h:
			if started && positive {
				c = append(c, i)
			}
			positive = false
			started = true
		}
	}
	return c
}

type frameError struct {
	offset int
	sample int
}

func (e frameError) Error() string {
	return fmt.Sprintf("framing error in byte %d at sample %d", e.offset, e.sample)
}

func decode(p pcm) ([]uint8, error) {
	if p.sampleRate < MarkFreq*4 {
		return nil, fmt.Errorf("sample rate of %dHz is too low", p.sampleRate)
	}

	cross := crossings(p)
	if len(cross) == 0 {
		return nil, fmt.Errorf("recording is silent")
	}

	bitLen := float64(p.sampleRate) / Baud

	// the gap between crossings that distinguishes a space from a mark. the
	// half period of a space is twice the half period of a mark
	gap := float64(p.sampleRate) / float64(MarkFreq*2) * 1.5

	// number of crossings in the half open range of samples [from, to)
	count := func(from, to float64) int {
		a := sort.SearchInts(cross, int(from))
		b := sort.SearchInts(cross, int(to))
		return b - a
	}

	var data []uint8

	i := 1
	for i < len(cross) {
		// a start bit is the first space after a mark
		if float64(cross[i]-cross[i-1]) <= gap {
			i++
			continue
		}
		start := float64(cross[i-1])

		// not enough recording for a complete frame
		if start+bitLen*(1+dataBits+stopBits) > float64(len(p.data)) {
			break
		}

		var v uint8
		for b := range dataBits {
			from := start + bitLen*float64(1+b)
			if count(from, from+bitLen) >= markThreshold {
				v |= 0x01 << b
			}
		}

		stop := start + bitLen*(1+dataBits)
		if count(stop, stop+bitLen) < markThreshold {
			return data, frameError{offset: len(data), sample: int(stop)}
		}

		data = append(data, v)

		// resume the search for a start bit in the second stop bit
		i = sort.SearchInts(cross, int(stop+bitLen)) + 1
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no data found")
	}

	return data, nil
}

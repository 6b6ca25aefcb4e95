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

package hostclock

import (
	"fmt"

	"github.com/jetsetilly/periphery/hardware/registers"
)

// SystemClock is the frequency of the clock from which the host clock is
// divided.
const SystemClock = 120000000

// Speed is one of the eight speeds of the host clock.
type Speed uint8

// NumSpeeds is the number of valid Speed values.
const NumSpeeds = 8

// List of valid Speed values.
const (
	Speed10kHz Speed = iota
	Speed100kHz
	Speed500kHz
	Speed1MHz
	Speed2MHz
	Speed4MHz
	Speed6MHz
	Speed8MHz
)

var dividers = [NumSpeeds]int{12000, 1200, 240, 120, 60, 30, 20, 15}

var names = [NumSpeeds]string{"10kHz", "100kHz", "500kHz", "1MHz", "2MHz", "4MHz", "6MHz", "8MHz"}

func (s Speed) String() string {
	if s >= NumSpeeds {
		return "unknown"
	}
	return names[s]
}

// Divider returns the divisor of the system clock for the speed.
func (s Speed) Divider() int {
	return dividers[s%NumSpeeds]
}

// Frequency of the host clock in Hz.
func (s Speed) Frequency() int {
	return SystemClock / s.Divider()
}

// Output is the clock generator hardware.
type Output interface {
	SetDivider(divider int)
}

// Generator is the host clock generator. The selected speed is reflected in
// the SCR register.
type Generator struct {
	store  *registers.Store
	output Output

	// the speed selected by configuration. the speed is returned to this
	// value on reset
	initial Speed
	speed   Speed
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The output can be nil.
func NewGenerator(store *registers.Store, output Output, initial int) (*Generator, error) {
	if initial < 0 || initial >= NumSpeeds {
		return nil, fmt.Errorf("hostclock: speed %d is not valid", initial)
	}
	g := &Generator{
		store:   store,
		output:  output,
		initial: Speed(initial),
	}
	g.Reset()
	return g, nil
}

func (g *Generator) String() string {
	return g.speed.String()
}

// Reset returns the generator to the configured speed.
func (g *Generator) Reset() {
	g.Select(g.initial)
}

// Select a new speed. Only the lowest three bits of the value are used.
func (g *Generator) Select(speed Speed) {
	g.speed = speed & Speed(registers.CLKMask)
	g.store.Write(registers.CLK, uint8(g.speed))
	g.store.SetMasked(registers.SCR, registers.SCRClockMask, uint8(g.speed))
	if g.output != nil {
		g.output.SetDivider(g.speed.Divider())
	}
}

// Speed returns the selected speed.
func (g *Generator) Speed() Speed {
	return g.speed
}

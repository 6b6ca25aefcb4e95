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

package led

import (
	"fmt"
	"time"

	"github.com/jetsetilly/periphery/hardware/registers"
)

// State of the LED as selected by the host.
type State uint8

// List of valid State values. The values are the same as the values written
// to the LED bits of the SCR register.
const (
	Off State = iota
	On
	Slow
	Fast
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	case Slow:
		return "slow"
	case Fast:
		return "fast"
	}
	return "unknown"
}

// Pin is the output that drives the LED.
type Pin interface {
	Set(lit bool)
}

// Clock is the source of time for the blink timer.
type Clock interface {
	Now() time.Time
}

// SystemClock implements the Clock interface using the time package.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// LED is the status LED state machine. A new state is selected with Set() and
// is applied on the next call to Step(). The applied state is reflected in
// the SCR register. Step() must be called regularly for the blink states to
// work.
type LED struct {
	store *registers.Store
	pin   Pin
	clock Clock

	slow time.Duration
	fast time.Duration

	state State

	// the state has been changed but not yet applied
	dirty bool

	lit      bool
	interval time.Duration
	deadline time.Time
}

// NewLED is the preferred method of initialisation for the LED type. The fast
// interval must be shorter than the slow interval.
func NewLED(store *registers.Store, pin Pin, clock Clock, slow time.Duration, fast time.Duration) (*LED, error) {
	if fast <= 0 || slow <= fast {
		return nil, fmt.Errorf("led: fast interval (%v) must be positive and shorter than slow interval (%v)", fast, slow)
	}
	l := &LED{
		store: store,
		pin:   pin,
		clock: clock,
		slow:  slow,
		fast:  fast,
	}
	l.Reset()
	return l, nil
}

func (l *LED) String() string {
	if l.lit {
		return fmt.Sprintf("%s (lit)", l.state)
	}
	return l.state.String()
}

// Reset turns the LED off immediately. Any change selected by Set() that has
// not yet been applied is forgotten.
func (l *LED) Reset() {
	l.state = Off
	l.dirty = false
	l.store.SetMasked(registers.SCR, registers.SCRLEDMask, 0)
	l.drive(false)
}

// Set the state of the LED. Only the lowest two bits of the value are used.
// Selecting the current state does nothing, so a blinking LED is not
// disturbed by the host writing the same state again.
func (l *LED) Set(state State) {
	state &= State(registers.SCRLEDSelect)
	if state == l.state {
		return
	}
	l.state = state
	l.dirty = true
}

// Step applies a changed state or toggles the LED if the blink deadline has
// passed. Never blocks.
func (l *LED) Step() {
	if l.dirty {
		l.apply()
		return
	}

	switch l.state {
	case Slow, Fast:
		now := l.clock.Now()
		if !now.Before(l.deadline) {
			l.drive(!l.lit)
			l.deadline = now.Add(l.interval)
		}
	}
}

func (l *LED) apply() {
	l.dirty = false
	l.store.SetMasked(registers.SCR, registers.SCRLEDMask, uint8(l.state)<<registers.SCRLEDShift)

	switch l.state {
	case Off:
		l.drive(false)
	case On:
		l.drive(true)
	case Slow:
		l.interval = l.slow
		l.drive(true)
		l.deadline = l.clock.Now().Add(l.interval)
	case Fast:
		l.interval = l.fast
		l.drive(true)
		l.deadline = l.clock.Now().Add(l.interval)
	}
}

func (l *LED) drive(lit bool) {
	l.lit = lit
	if l.pin != nil {
		l.pin.Set(lit)
	}
}

// State returns the selected state.
func (l *LED) State() State {
	return l.state
}

// Dirty returns true if the selected state has not yet been applied.
func (l *LED) Dirty() bool {
	return l.dirty
}

// Lit returns true if the LED is currently lit.
func (l *LED) Lit() bool {
	return l.lit
}

// Deadline returns the time of the next toggle. Only meaningful in the blink
// states.
func (l *LED) Deadline() time.Time {
	return l.deadline
}

// Interval returns the time between toggles. Only meaningful in the blink
// states.
func (l *LED) Interval() time.Duration {
	return l.interval
}

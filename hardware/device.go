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

package hardware

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware/bus"
	"github.com/jetsetilly/periphery/hardware/dispatch"
	"github.com/jetsetilly/periphery/hardware/hostclock"
	"github.com/jetsetilly/periphery/hardware/irq"
	"github.com/jetsetilly/periphery/hardware/led"
	"github.com/jetsetilly/periphery/hardware/pin"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/hardware/reset"
	"github.com/jetsetilly/periphery/hardware/rom"
	"github.com/jetsetilly/periphery/hardware/serial"
	"github.com/jetsetilly/periphery/logger"
	"github.com/jetsetilly/periphery/notifications"
)

const logTag = "device"

// Transports for the two serial bridges. A nil transport is the same as
// serial.Null.
type Transports struct {
	Console serial.Transport
	Aux     serial.Transport
}

// Device is the main container for the components of the peripheral
// controller.
//
// The fast path is the bus Engine. Everything else is the slow path. The two
// paths share only the register store, which the fast path reads through a
// View, and the event queue.
type Device struct {
	env *environment.Environment

	Store *registers.Store

	// the host side of the bus
	port *bus.Port

	// fast path
	Engine *bus.Engine

	// slow path
	events     *bus.Consumer
	Dispatcher *dispatch.Dispatcher
	ROM        *rom.Loader
	Console    *serial.Bridge
	Aux        *serial.Bridge
	LED        *led.LED
	IRQ        *irq.Controller
	HostClock  *hostclock.Generator
	Reset      *reset.Controller

	// the reset input and the outputs of the device
	ResetLine *reset.Switch
	LEDPin    *pin.Level
	IRQLine   *pin.Level

	// number of completed passes of the slow path
	passes atomic.Uint64
}

// NewDevice creates a new Device and all its components. The device is in
// the power-on state.
func NewDevice(env *environment.Environment, transports Transports, images Images) (*Device, error) {
	var err error

	dev := &Device{
		env:       env,
		Store:     registers.NewStore(),
		ResetLine: &reset.Switch{},
		LEDPin:    &pin.Level{},
		IRQLine:   &pin.Level{},
	}

	depth := env.Prefs.EventQueueDepth.Get().(int)
	if depth < 2 {
		return nil, fmt.Errorf("device: event queue depth must be at least 2")
	}

	var events *bus.Producer
	events, dev.events = bus.NewQueue(depth)
	dev.port = bus.NewPort(dev.Store.View(), bus.DefaultPortDepth)
	dev.Engine = bus.NewEngine(dev.port, events)

	dev.ROM, err = rom.NewLoader(env, dev.Store, images.Bootstrap, images.Chain...)
	if err != nil {
		return nil, err
	}

	size := env.Prefs.Serial.BufferSize.Get().(int)
	dev.Console = serial.NewBridge(env, dev.Store, serial.ConsoleConfig, transports.Console, size)
	dev.Aux = serial.NewBridge(env, dev.Store, serial.AuxConfig, transports.Aux, size)

	dev.LED, err = led.NewLED(dev.Store, dev.LEDPin, led.SystemClock{},
		env.Prefs.LED.Slow.Get().(time.Duration),
		env.Prefs.LED.Fast.Get().(time.Duration))
	if err != nil {
		return nil, err
	}

	dev.IRQ = irq.NewController(dev.Store, dev.IRQLine)

	dev.HostClock, err = hostclock.NewGenerator(dev.Store, nil, env.Prefs.HostClock.Get().(int))
	if err != nil {
		return nil, err
	}

	dev.Reset = reset.NewController(dev.ResetLine, dev.reinitialise, dev.release)

	dev.Dispatcher = dispatch.NewDispatcher(dev.Store, dev.routes())

	dev.initialise()

	return dev, nil
}

func (dev *Device) String() string {
	return dev.Store.String()
}

// routes is the routing table for the dispatcher
func (dev *Device) routes() dispatch.Table {
	var t dispatch.Table

	t[registers.SCR] = dispatch.Route{
		Name: "SCR",
		Write: func(data uint8) {
			dev.LED.Set(led.State(data & registers.SCRLEDSelect))
			if data&registers.SCRROMReset == registers.SCRROMReset {
				dev.ROM.Reset()
			}
		},
	}
	t[registers.RDR] = dispatch.Route{
		Name: "RDR",
		Read: func(_ uint8) {
			dev.ROM.Next()
		},
	}
	t[registers.ICR] = dispatch.Route{
		Name: "ICR",
		Write: func(data uint8) {
			dev.IRQ.Enable(data)
		},
	}
	t[registers.CDR] = dispatch.Route{
		Name: "CDR",
		Read: func(_ uint8) {
			dev.Console.NextByte()
		},
		Write: func(data uint8) {
			dev.Console.Transmit(data)
		},
	}
	t[registers.SDR] = dispatch.Route{
		Name: "SDR",
		Read: func(_ uint8) {
			dev.Aux.NextByte()
		},
		Write: func(data uint8) {
			dev.Aux.Transmit(data)
		},
	}
	t[registers.CLK] = dispatch.Route{
		Name: "CLK",
		Write: func(data uint8) {
			dev.HostClock.Select(hostclock.Speed(data))
		},
	}

	return t
}

// initialise every component to its power-on state
func (dev *Device) initialise() {
	dev.Store.Clear()
	dev.ROM.Reinitialise()
	dev.Console.Reset()
	dev.Aux.Reset()
	dev.LED.Reset()
	dev.IRQ.Reset()
	dev.HostClock.Reset()
}

// called by the reset controller on the leading edge of the reset line
func (dev *Device) reinitialise() {
	dev.ROM.Reinitialise()
	dev.Console.Reset()
	dev.Aux.Reset()
	dev.LED.Reset()
	dev.IRQ.Reset()
	dev.HostClock.Reset()

	// events issued before the reset are stale
	if n := dev.events.Flush(); n > 0 {
		logger.Logf(dev.env, logTag, "reset: discarded %d events", n)
	}

	logger.Log(dev.env, logTag, "host reset")
	dev.env.Notice(notifications.NotifyHostReset)
}

// called by the reset controller on the trailing edge of the reset line
func (dev *Device) release() {
	logger.Log(dev.env, logTag, "host running")
	dev.env.Notice(notifications.NotifyHostRunning)
}

// Port returns the host side of the bus.
func (dev *Device) Port() *bus.Port {
	return dev.port
}

// Close the serial transports.
func (dev *Device) Close() error {
	err := dev.Console.Close()
	if e := dev.Aux.Close(); err == nil {
		err = e
	}
	return err
}

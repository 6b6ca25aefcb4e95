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

package hostscript

import (
	"context"
	"fmt"
	"io"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/periphery/curated"
	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware"
	"github.com/jetsetilly/periphery/hardware/bus"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/logger"
)

// ScriptError is the pattern for errors returned by a script.
const ScriptError = "hostscript: %v"

const logTag = "script"

// the length of a reset pulse if the script doesn't specify one
const defaultPulse = 10 * time.Millisecond

// Host runs Lua scripts that act as the host CPU. The script drives the bus
// of the device with the following functions:
//
//	read(address)          returns the value at address
//	write(address, value)  writes value to address
//	wait()                 waits until the device has acted on every bus cycle
//	reset([ms])            pulses the reset line
//	sleep(ms)              pauses the script
//	log(message)           adds message to the log
//	bit(value, mask)       returns true if any bit in mask is set in value
//	print(...)             writes to the output of the host
//
// The addresses of the named registers are in the global table "reg". For
// example, reg.RDR.
//
// The fast path and the slow path of the device must be running in other
// goroutines.
type Host struct {
	env    *environment.Environment
	dev    *hardware.Device
	port   *bus.Port
	output io.Writer
}

// NewHost is the preferred method of initialisation for the Host type. The
// output of the Lua print() function is written to output.
func NewHost(env *environment.Environment, dev *hardware.Device, output io.Writer) *Host {
	return &Host{
		env:    env,
		dev:    dev,
		port:   dev.Port(),
		output: output,
	}
}

// Run the script read from src. The name is used in error messages. The
// script stops when the context is done.
func (h *Host) Run(ctx context.Context, name string, src io.Reader) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	h.install(ctx, L)

	fn, err := L.Load(src, name)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (h *Host) install(ctx context.Context, L *lua.LState) {
	reg := L.NewTable()
	for a, n := range registers.Names {
		reg.RawSetString(n, lua.LNumber(a))
	}
	reg.RawSetString("BOOTLOADER", lua.LNumber(registers.BootloaderOrigin))
	reg.RawSetString("VECTORS", lua.LNumber(registers.VectorsOrigin))
	L.SetGlobal("reg", reg)

	L.SetGlobal("read", L.NewFunction(func(L *lua.LState) int {
		a := checkAddress(L, 1)
		L.Push(lua.LNumber(h.port.Read(a)))
		return 1
	}))

	L.SetGlobal("write", L.NewFunction(func(L *lua.LState) int {
		a := checkAddress(L, 1)
		v := L.CheckInt(2)
		if v < 0 || v > 0xff {
			L.ArgError(2, fmt.Sprintf("value out of range: %d", v))
		}
		h.port.Write(a, uint8(v))
		return 0
	}))

	L.SetGlobal("wait", L.NewFunction(func(L *lua.LState) int {
		if err := h.dev.Sync(ctx); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("reset", L.NewFunction(func(L *lua.LState) int {
		pulse := time.Duration(L.OptInt(1, int(defaultPulse/time.Millisecond))) * time.Millisecond
		h.dev.ResetLine.Assert()
		err := h.dev.WaitPass(ctx)
		if err == nil {
			err = sleep(ctx, pulse)
		}
		h.dev.ResetLine.Release()
		if err == nil {
			err = h.dev.WaitPass(ctx)
		}
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("sleep", L.NewFunction(func(L *lua.LState) int {
		d := time.Duration(L.CheckInt(1)) * time.Millisecond
		if err := sleep(ctx, d); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("bit", L.NewFunction(func(L *lua.LState) int {
		v := L.CheckInt(1)
		m := L.CheckInt(2)
		L.Push(lua.LBool(v&m != 0))
		return 1
	}))

	L.SetGlobal("log", L.NewFunction(func(L *lua.LState) int {
		logger.Log(h.env, logTag, L.CheckString(1))
		return 0
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		for i := 1; i <= L.GetTop(); i++ {
			if i > 1 {
				io.WriteString(h.output, "\t")
			}
			io.WriteString(h.output, L.ToStringMeta(L.Get(i)).String())
		}
		io.WriteString(h.output, "\n")
		return 0
	}))
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > bus.MaxAddress {
		L.ArgError(n, fmt.Sprintf("address out of range: %d", a))
	}
	return uint16(a)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

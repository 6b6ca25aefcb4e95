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

package rom_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/hardware/rom"
	"github.com/jetsetilly/periphery/notifications"
	"github.com/jetsetilly/periphery/test"
)

type notices struct {
	complete int
	images   []string
}

func (n *notices) Notify(notice notifications.Notice, data any) error {
	switch notice {
	case notifications.NotifyROMComplete:
		n.complete++
	case notifications.NotifyROMImage:
		n.images = append(n.images, data.(string))
	}
	return nil
}

func newEnvironment(t *testing.T, notify notifications.Notify) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainDevice, p, notify)
	test.DemandSuccess(t, err)
	return env
}

func address(st *registers.Store) uint32 {
	return uint32(st.Read(registers.RBA))<<16 | uint32(st.Read(registers.RAHI))<<8 | uint32(st.Read(registers.RALO))
}

func TestChainedImages(t *testing.T) {
	n := &notices{}
	env := newEnvironment(t, n)
	st := registers.NewStore()

	i1 := rom.Image{Name: "bios", Base: 0xd000, Data: []uint8{0x10, 0x11, 0x12, 0x13}}
	i2 := rom.Image{Name: "kernel", Base: 0x01fffe, Data: []uint8{0x20, 0x21, 0x22}}
	empty := rom.Image{Name: "empty", Base: 0x8000}

	l, err := rom.NewLoader(env, st, nil, i1, empty, i2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Images(), 2)
	test.ExpectEquality(t, l.State(), rom.Unknown)

	// notifications are ignored until a reset
	l.Next()
	l.Step()
	test.ExpectEquality(t, l.State(), rom.Unknown)
	test.ExpectSuccess(t, st.NotSet(registers.SCR, registers.SCRROMDataReady))

	l.Reset()
	test.ExpectEquality(t, l.State(), rom.ResetRequested)
	l.Step()

	type published struct {
		addr uint32
		data uint8
	}
	var expected []published
	for _, img := range []rom.Image{i1, i2} {
		for i, d := range img.Data {
			expected = append(expected, published{addr: img.Base + uint32(i), data: d})
		}
	}

	for i, e := range expected {
		test.ExpectEquality(t, l.State(), rom.ByteReady, i)
		test.ExpectSuccess(t, st.IsSet(registers.SCR, registers.SCRROMDataReady), i)
		test.ExpectSuccess(t, st.NotSet(registers.SCR, registers.SCRROMComplete), i)
		test.ExpectEquality(t, address(st), e.addr, i)
		test.ExpectEquality(t, st.Read(registers.RDR), e.data, i)

		l.Next()
		test.ExpectEquality(t, l.State(), rom.AdvanceRequested, i)
		test.ExpectSuccess(t, st.NotSet(registers.SCR, registers.SCRROMDataReady), i)
		l.Step()
	}

	test.ExpectEquality(t, l.State(), rom.Unknown)
	test.ExpectSuccess(t, st.IsSet(registers.SCR, registers.SCRROMComplete|registers.SCRROMDataReady))
	test.ExpectEquality(t, n.complete, 1)
	test.ExpectEquality(t, len(n.images), 2)
	test.ExpectEquality(t, n.images[1], "kernel")

	// further steps and notifications do nothing
	l.Next()
	l.Step()
	l.Step()
	test.ExpectEquality(t, n.complete, 1)

	// streaming can be restarted
	l.Reset()
	l.Step()
	test.ExpectSuccess(t, st.NotSet(registers.SCR, registers.SCRROMComplete))
	test.ExpectEquality(t, st.Read(registers.RDR), uint8(0x10))
	test.ExpectEquality(t, address(st), uint32(0xd000))
}

func TestNoImages(t *testing.T) {
	n := &notices{}
	st := registers.NewStore()

	l, err := rom.NewLoader(newEnvironment(t, n), st, nil)
	test.DemandSuccess(t, err)

	l.Reset()
	l.Step()
	test.ExpectEquality(t, l.State(), rom.Unknown)
	test.ExpectSuccess(t, st.IsSet(registers.SCR, registers.SCRROMComplete))
	test.ExpectEquality(t, n.complete, 1)
}

func TestBootstrap(t *testing.T) {
	env := newEnvironment(t, nil)
	st := registers.NewStore()

	boot := []uint8{0xa9, 0x00, 0x8d, 0x01, 0x00}
	l, err := rom.NewLoader(env, st, boot)
	test.DemandSuccess(t, err)
	for i, b := range boot {
		test.ExpectEquality(t, st.Read(registers.BootloaderOrigin+uint16(i)), b)
	}

	// the host can overwrite the bootloader region. re-initialisation
	// restores it
	st.Write(registers.BootloaderOrigin, 0xff)
	st.SetFlag(registers.SCR, registers.SCRROMComplete)
	l.Reinitialise()
	test.ExpectEquality(t, st.Read(registers.BootloaderOrigin), uint8(0xa9))
	test.ExpectSuccess(t, st.NotSet(registers.SCR, registers.SCRROMComplete))

	_, err = rom.NewLoader(env, st, make([]uint8, 0x51))
	test.ExpectFailure(t, err)
}

func TestAddressSpace(t *testing.T) {
	env := newEnvironment(t, nil)
	_, err := rom.NewLoader(env, registers.NewStore(), nil, rom.Image{Name: "big", Base: 0xffffff, Data: []uint8{0, 1}})
	test.ExpectFailure(t, err)
}

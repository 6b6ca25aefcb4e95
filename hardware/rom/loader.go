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

package rom

import (
	"fmt"

	"github.com/jetsetilly/periphery/curated"
	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware/registers"
	"github.com/jetsetilly/periphery/logger"
	"github.com/jetsetilly/periphery/notifications"
)

const logTag = "rom"

// State of the Loader.
type State int

// List of valid State values.
const (
	Unknown State = iota
	ResetRequested
	ByteReady
	AdvanceRequested
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case ResetRequested:
		return "reset requested"
	case ByteReady:
		return "byte ready"
	case AdvanceRequested:
		return "advance requested"
	}
	return "invalid"
}

// Cursor is the position of the Loader in the chain of images.
type Cursor struct {
	Image int
	Index int
}

// Loader streams a chain of images to the host one byte at a time. Each byte
// is published to the RDR register along with its address. The host reads
// RDR to request the next byte.
//
// When the last byte of the last image has been read the complete flag is
// set and the loader returns to the Unknown state.
type Loader struct {
	env   *environment.Environment
	store *registers.Store

	// copied into the bootloader region on re-initialisation
	bootstrap []uint8

	// images with no data are not included
	images []Image

	state  State
	cursor Cursor
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The bootstrap data is copied into the bootloader region of the register
// store. The images are streamed in the order they are given. Empty images
// are skipped.
func NewLoader(env *environment.Environment, store *registers.Store, bootstrap []uint8, images ...Image) (*Loader, error) {
	l := &Loader{
		env:       env,
		store:     store,
		bootstrap: bootstrap,
	}

	region := int(registers.BootloaderMemtop-registers.BootloaderOrigin) + 1
	if len(bootstrap) > region {
		return nil, curated.Errorf(ImageError, fmt.Errorf("bootstrap is %d bytes. maximum is %d bytes", len(bootstrap), region))
	}

	for _, img := range images {
		if err := img.Validate(); err != nil {
			return nil, err
		}
		if len(img.Data) == 0 {
			logger.Logf(env, logTag, "skipping empty image: %s", img.Name)
			continue
		}
		l.images = append(l.images, img)
	}

	l.Reinitialise()

	return l, nil
}

func (l *Loader) String() string {
	return fmt.Sprintf("%s: image %d: byte %d", l.state, l.cursor.Image, l.cursor.Index)
}

// Reinitialise returns the loader to the Unknown state and copies the
// bootstrap into the bootloader region. The ROM flags are cleared.
func (l *Loader) Reinitialise() {
	l.state = Unknown
	l.cursor = Cursor{}
	l.store.ClearFlag(registers.SCR, registers.SCRROMDataReady|registers.SCRROMComplete)
	n := l.store.Copy(registers.BootloaderOrigin, l.bootstrap)
	if n > 0 {
		logger.Logf(l.env, logTag, "bootstrap: %d bytes", n)
	}
}

// Reset requests that streaming starts from the first byte of the first
// image. The request is acted upon on the next Step().
func (l *Loader) Reset() {
	l.state = ResetRequested
}

// Next notifies the loader that the host has read the published byte. A
// notification in any state other than ByteReady is ignored.
func (l *Loader) Next() {
	if l.state == ByteReady {
		l.store.ClearFlag(registers.SCR, registers.SCRROMDataReady)
		l.state = AdvanceRequested
	}
}

// Step the state machine.
func (l *Loader) Step() {
	switch l.state {
	case Unknown:
	case ResetRequested:
		l.store.ClearFlag(registers.SCR, registers.SCRROMComplete)
		l.cursor = Cursor{}
		if len(l.images) == 0 {
			l.complete()
			return
		}
		logger.Logf(l.env, logTag, "streaming %s", l.images[0])
		l.env.Notify.Notify(notifications.NotifyROMImage, l.images[0].Name)
		l.publish()
		l.state = ByteReady
	case ByteReady:
	case AdvanceRequested:
		l.cursor.Index++
		if l.cursor.Index >= len(l.images[l.cursor.Image].Data) {
			l.cursor.Image++
			l.cursor.Index = 0
			if l.cursor.Image >= len(l.images) {
				l.complete()
				return
			}
			logger.Logf(l.env, logTag, "streaming %s", l.images[l.cursor.Image])
			l.env.Notify.Notify(notifications.NotifyROMImage, l.images[l.cursor.Image].Name)
		}
		l.publish()
		l.state = ByteReady
	}
}

func (l *Loader) publish() {
	img := l.images[l.cursor.Image]
	addr := img.Base + uint32(l.cursor.Index)

	l.store.Write(registers.RDR, img.Data[l.cursor.Index])
	l.store.Write(registers.RALO, uint8(addr))
	l.store.Write(registers.RAHI, uint8(addr>>8))
	l.store.Write(registers.RBA, uint8(addr>>16))
	l.store.SetFlag(registers.SCR, registers.SCRROMDataReady)
}

func (l *Loader) complete() {
	l.state = Unknown
	l.cursor = Cursor{}
	l.store.SetFlag(registers.SCR, registers.SCRROMComplete|registers.SCRROMDataReady)
	logger.Log(l.env, logTag, "complete")
	l.env.Notice(notifications.NotifyROMComplete)
}

// State returns the current state of the loader.
func (l *Loader) State() State {
	return l.state
}

// Cursor returns the current position in the chain of images.
func (l *Loader) Cursor() Cursor {
	return l.cursor
}

// Images returns the number of images in the chain.
func (l *Loader) Images() int {
	return len(l.images)
}

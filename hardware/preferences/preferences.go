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

package preferences

import (
	"github.com/jetsetilly/periphery/paths"
	"github.com/jetsetilly/periphery/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// Preferences for the device. Grouped into sub-systems, each group is stored
// in the same preferences file.
type Preferences struct {
	dsk *prefs.Disk

	// initial speed of the host clock generator. one of the eight speeds
	// listed in the hostclock package
	HostClock prefs.Int

	// the number of events the queue between the bus engine and the
	// dispatcher can hold
	EventQueueDepth prefs.Int

	// the sub-system preferences
	LED    *LEDPreferences
	Serial *SerialPreferences
	ROM    *ROMPreferences
}

func (p *Preferences) String() string {
	return p.dsk.Path()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty then the default preferences file in the resource path
// is used.
//
// Values are set to the defaults and then loaded from disk.
func NewPreferences(pth string) (*Preferences, error) {
	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Preferences{}
	p.SetDefaults()

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.hostclock", &p.HostClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.eventqueue", &p.EventQueueDepth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	p.LED, err = newLEDPreferences(pth)
	if err != nil {
		return nil, err
	}
	p.Serial, err = newSerialPreferences(pth)
	if err != nil {
		return nil, err
	}
	p.ROM, err = newROMPreferences(pth)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.HostClock.Set(7)
	p.EventQueueDepth.Set(32)
	if p.LED != nil {
		p.LED.SetDefaults()
	}
	if p.Serial != nil {
		p.Serial.SetDefaults()
	}
	if p.ROM != nil {
		p.ROM.SetDefaults()
	}
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(false); err != nil {
		return err
	}
	if err := p.LED.dsk.Load(false); err != nil {
		return err
	}
	if err := p.Serial.dsk.Load(false); err != nil {
		return err
	}
	return p.ROM.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	if err := p.LED.dsk.Save(); err != nil {
		return err
	}
	if err := p.Serial.dsk.Save(); err != nil {
		return err
	}
	return p.ROM.dsk.Save()
}

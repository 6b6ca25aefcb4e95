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
	"time"

	"github.com/jetsetilly/periphery/prefs"
)

// LEDPreferences are the blink intervals of the status LED.
type LEDPreferences struct {
	dsk *prefs.Disk

	// the time between toggles in the slow and fast blink states. the fast
	// interval should be shorter than the slow interval
	Slow prefs.Duration
	Fast prefs.Duration
}

func newLEDPreferences(pth string) (*LEDPreferences, error) {
	p := &LEDPreferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("led.slow", &p.Slow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("led.fast", &p.Fast)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *LEDPreferences) SetDefaults() {
	p.Slow.Set(500 * time.Millisecond)
	p.Fast.Set(100 * time.Millisecond)
}

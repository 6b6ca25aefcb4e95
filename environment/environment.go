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

package environment

import (
	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/notifications"
)

// Label is used to name the environment
type Label string

// MainDevice is the label of the device that is allowed to log.
const MainDevice = Label("")

// Environment is used to provide context for a device. Particularly useful
// when more than one device instance is running in the same process, such as
// during testing
type Environment struct {
	Label Label

	// the device preferences
	Prefs *preferences.Preferences

	// notifications are sent to Notify. never nil after NewEnvironment()
	Notify notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created from the default preferences file. The notify argument can
// also be nil, in which case notifications are discarded.
func NewEnvironment(label Label, prefs *preferences.Preferences, notify notifications.Notify) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Notify: notify,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	if env.Notify == nil {
		env.Notify = notifications.Discard{}
	}

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// device is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.Label == MainDevice
}

// IsDevice checks the environment label and returns true if it matches
func (env *Environment) IsDevice(label Label) bool {
	return env.Label == label
}

// Notice sends a notification with no data.
func (env *Environment) Notice(notice notifications.Notice) {
	_ = env.Notify.Notify(notice, nil)
}

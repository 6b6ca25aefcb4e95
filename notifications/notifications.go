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

package notifications

// Notice describes events that happen on the device that the host process
// might want to present to the user.
type Notice string

// List of defined notifications.
const (
	// the reset line has been asserted and the device has been re-initialised
	NotifyHostReset Notice = "NotifyHostReset"

	// the reset line has been released
	NotifyHostRunning Notice = "NotifyHostRunning"

	// the ROM loader has started streaming a new image. the data is the
	// name of the image
	NotifyROMImage Notice = "NotifyROMImage"

	// the ROM loader has streamed the last byte of the last image
	NotifyROMComplete Notice = "NotifyROMComplete"

	// the event queue was full and one or more events were dropped. the data
	// is the number of dropped events since the previous notification
	NotifyEventsDropped Notice = "NotifyEventsDropped"

	// the serial transport has been disconnected
	NotifySerialClosed Notice = "NotifySerialClosed"
)

// Notify is used for communication between the hardware and the host process.
// The data argument depends on the notice and can be nil.
type Notify interface {
	Notify(notice Notice, data any) error
}

// Discard implements the Notify interface and ignores all notifications.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice, _ any) error {
	return nil
}

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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the goroutine allowed to use a resource.
type Owner struct {
	name string
	id   atomic.Uint64
}

// NewOwner is the preferred method of initialisation for the Owner type.
func NewOwner(name string) *Owner {
	return &Owner{name: name}
}

// Claim the resource for the calling goroutine. The first call records the
// goroutine. Subsequent calls from a different goroutine panic.
func (o *Owner) Claim() {
	id := GoroutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if o.id.Load() != id {
		panic(fmt.Sprintf("assert: %s claimed by goroutine %d but used by goroutine %d", o.name, o.id.Load(), id))
	}
}

// Release forgets the claiming goroutine. The next call to Claim() will
// record a new goroutine.
func (o *Owner) Release() {
	o.id.Store(0)
}

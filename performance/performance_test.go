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

package performance_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/performance"
	"github.com/jetsetilly/periphery/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainDevice, p, nil)
	test.DemandSuccess(t, err)

	dev, err := performance.NewCheckDevice(env)
	test.DemandSuccess(t, err)

	var s strings.Builder
	res, err := performance.Check(context.Background(), &s, dev, performance.ProfileNone, 50*time.Millisecond)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, res.Cycles > 0)
	test.ExpectSuccess(t, res.Cycles%1024 == 0)
	test.ExpectSuccess(t, res.Dispatched <= res.Cycles)
	test.ExpectSuccess(t, res.Duration >= 50*time.Millisecond)
	test.ExpectSuccess(t, strings.Contains(s.String(), "bus cycles"))
}

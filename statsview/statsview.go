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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/periphery/logger"
)

// Launch the stats server in a new goroutine. The charts are sampled every
// interval.
func Launch(output io.Writer, interval time.Duration) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithLinkAddr(Address),
		viewer.WithTimeInterval(int(interval.Milliseconds())),
	)
	mgr := statsview.New()

	go func() {
		mgr.Start()
		logger.Log(logger.Allow, "statsview", "stats server has stopped")
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}

// This file is part of tt06-dj8.
//
// tt06-dj8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tt06-dj8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tt06-dj8.  If not, see <https://www.gnu.org/licenses/>.

// Package dut defines the boundary between the test bench and the device
// under test. The device is opaque. The bench can only drive its input lines
// and observe its output lines.
//
// Implementations in the sub-packages are a scripted stand-in device and a
// device that replays a recorded trace. A co-simulated HDL model would be a
// third implementation.
package dut

import (
	"time"

	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Device is the pin level interface to the device under test.
//
// Changes to the input lines take effect immediately. In particular, a
// transition of the clock from low to high is an active edge and the device
// must update its Outputs before SetClock() returns.
type Device interface {
	// SetInput drives the 8-bit input line
	SetInput(v uint8)

	// SetClock drives the clock line
	SetClock(high bool)

	// SetReset drives the active low reset line. asserted is true when the
	// line is low
	SetReset(asserted bool)

	// Elapse tells the device that simulated time has passed
	Elapse(d time.Duration)

	// Outputs returns the current state of the output lines
	Outputs() pins.Outputs
}

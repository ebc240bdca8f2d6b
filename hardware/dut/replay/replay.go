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

// Package replay implements a device that plays back a recorded dut.Trace.
// The section of the trace is chosen by the input line when reset is
// released and the outputs advance by one entry on every active clock edge.
// When the section is exhausted the final outputs are held.
package replay

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/logger"
)

// Device is the replay implementation of the dut.Device interface.
type Device struct {
	trace   dut.Trace
	section []pins.Outputs
	pos     int
	out     pins.Outputs

	ui       uint8
	clock    bool
	asserted bool
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(trace dut.Trace) *Device {
	return &Device{
		trace:    trace,
		asserted: true,
		out:      pins.Read(0),
	}
}

// Load a trace file and return a replay Device for it.
func Load(filename string) (*Device, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "replay")
	}
	defer f.Close()

	tr, err := dut.ReadTrace(f)
	if err != nil {
		return nil, errors.Wrapf(err, "replay: %s", filename)
	}

	logger.Logf(logger.Allow, "replay", "loaded %d trace sections from %s", len(tr), filename)

	return NewDevice(tr), nil
}

// SetInput implements the dut.Device interface.
func (dev *Device) SetInput(v uint8) {
	dev.ui = v
}

// SetReset implements the dut.Device interface.
func (dev *Device) SetReset(asserted bool) {
	if asserted {
		dev.out = pins.Read(0)
	} else if dev.asserted {
		var ok bool
		dev.section, ok = dev.trace[dev.ui]
		if !ok {
			logger.Logf(logger.Allow, "replay", "no trace for mode %02x", dev.ui)
		}
		dev.pos = 0
	}
	dev.asserted = asserted
}

// SetClock implements the dut.Device interface.
func (dev *Device) SetClock(high bool) {
	edge := high && !dev.clock
	dev.clock = high
	if !edge || dev.asserted {
		return
	}
	if dev.pos < len(dev.section) {
		dev.out = dev.section[dev.pos]
		dev.pos++
	}
}

// Elapse implements the dut.Device interface. Replay is driven by clock
// edges only.
func (dev *Device) Elapse(_ time.Duration) {
}

// Outputs implements the dut.Device interface.
func (dev *Device) Outputs() pins.Outputs {
	return dev.out
}

// Remaining returns the number of entries in the current section that have
// not yet been replayed.
func (dev *Device) Remaining() int {
	return len(dev.section) - dev.pos
}

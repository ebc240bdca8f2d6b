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

package dut

import (
	"time"

	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Recorder wraps a Device and records a Trace of its outputs. The Recorder
// is itself a Device and can be used in place of the device it wraps.
type Recorder struct {
	dev   Device
	trace Trace

	ui       uint8
	clock    bool
	asserted bool
	mode     uint8
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(dev Device) *Recorder {
	return &Recorder{
		dev:   dev,
		trace: make(Trace),
	}
}

// SetInput implements the Device interface.
func (rec *Recorder) SetInput(v uint8) {
	rec.ui = v
	rec.dev.SetInput(v)
}

// SetClock implements the Device interface.
func (rec *Recorder) SetClock(high bool) {
	edge := high && !rec.clock
	rec.clock = high
	rec.dev.SetClock(high)
	if edge && !rec.asserted {
		rec.trace[rec.mode] = append(rec.trace[rec.mode], rec.dev.Outputs())
	}
}

// SetReset implements the Device interface. A new recording for the selected
// mode is started when reset is released.
func (rec *Recorder) SetReset(asserted bool) {
	if rec.asserted && !asserted {
		rec.mode = rec.ui
		rec.trace[rec.mode] = rec.trace[rec.mode][:0]
	}
	rec.asserted = asserted
	rec.dev.SetReset(asserted)
}

// Elapse implements the Device interface.
func (rec *Recorder) Elapse(d time.Duration) {
	rec.dev.Elapse(d)
}

// Outputs implements the Device interface.
func (rec *Recorder) Outputs() pins.Outputs {
	return rec.dev.Outputs()
}

// Trace returns the recording so far.
func (rec *Recorder) Trace() Trace {
	return rec.trace
}

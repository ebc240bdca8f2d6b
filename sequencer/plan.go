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

package sequencer

import (
	"time"

	"github.com/dvxf/tt06-dj8/fixtures"
	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Names of the phases in the default plan.
const (
	PhaseExternal  = "external memory"
	PhaseIndicator = "indicator"
	PhaseCapture   = "bytebeat capture"
)

// DefaultPlan returns the three phases used to verify the DJ8 core.
//
// The external memory phase runs the DJ8Program from the bench for 2000
// cycles and expects the magic bytes in the working store. The indicator
// phase releases reset with the internal image selected and clocks the
// device with three different input values. The capture phase selects the
// bytebeat synthesiser and checks the start of the sample stream.
func DefaultPlan() []Phase {
	return []Phase{
		{
			Name:   PhaseExternal,
			Kind:   External,
			Policy: memorymap.External,
			Reset: Reset{
				Hold:   10 * time.Microsecond,
				Select: pins.SelectExternal,
				Settle: 10 * time.Microsecond,
			},
			Waveform:    Asymmetric(time.Microsecond, 8*time.Microsecond),
			Segments:    []Segment{{Select: pins.SelectExternal, Cycles: 2000}},
			ExpectStore: fixtures.Magic,
		},
		{
			Name:  PhaseIndicator,
			Kind:  Indicator,
			Reset: Reset{
				Hold:   100 * time.Microsecond,
				Select: pins.SelectInternal,
				Settle: 10 * time.Microsecond,
			},
			Waveform: Symmetric(10 * time.Microsecond),
			Segments: []Segment{
				{Select: pins.SelectInternal, Cycles: 300},
				{Select: pins.SelectExternal, Cycles: 300},
				{Select: pins.SelectIndicatorAlt, Cycles: 300},
			},
			IndicatorMask: 0x01,
		},
		{
			Name:  PhaseCapture,
			Kind:  Capture,
			Reset: Reset{
				Hold:   100 * time.Microsecond,
				Select: pins.SelectCapture,
				Settle: 100 * time.Microsecond,
			},
			Waveform:     Sampled(35 * time.Nanosecond),
			Segments:     []Segment{{Select: pins.SelectCapture, Cycles: 8000}},
			ExpectOutput: fixtures.BytebeatPrefix,
		},
	}
}

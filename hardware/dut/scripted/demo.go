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

package scripted

import (
	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// IndicatorMask is the bit of the UO line toggled by the demo device in its
// indicator modes.
const IndicatorMask = uint8(0x01)

// the number of clocks between indicator toggles
const indicatorPeriod = 10

// NewDemo returns a Device with scripts that produce the same bus activity as
// the device does for each mode select value. The scripts do not execute the
// program and so the data written is fixed by the script, not computed from
// the bytes read.
//
// In the external mode the program image is fetched from the image aperture
// at 0x4000, then "DJ8!" is written to the first four bytes of the working
// store. The final byte is written to index 5 and copied through a read of
// the working store. Afterwards, the device spins on the last instruction of
// the image. The bytes served for each read are recorded and can be checked
// with Observed().
//
// In the indicator modes the indicator bit is toggled periodically.
//
// In the capture mode the first five samples of the bytebeat stream are
// written at intervals.
func NewDemo(image []uint8) *Device {
	return NewDevice(map[uint8]Script{
		pins.SelectExternal:     externalScript(image),
		pins.SelectInternal:     indicatorScript(),
		pins.SelectIndicatorAlt: indicatorScript(),
		pins.SelectCapture:      captureScript([]uint8{0, 0, 1, 1, 2}),
	})
}

func externalScript(image []uint8) Script {
	const origin = uint16(0x4000)

	var s Script
	for i := range image {
		s.Cycles = append(s.Cycles, FetchAt(origin+uint16(i)))
	}

	s.Cycles = append(s.Cycles,
		WriteTo(0x00, 'D'),
		WriteTo(0x01, 'J'),
		WriteTo(0x02, '8'),
		WriteTo(0x05, '!'),
		CopyTo(0x0500, 0x03),
	)

	// spin on the final two bytes of the image
	if len(image) >= 2 {
		last := origin + uint16(len(image)-2)
		s.Cycles = append(s.Cycles, FetchAt(last), FetchAt(last+1))
		s.Repeat = 2
	}

	return s
}

func indicatorScript() Script {
	var s Script
	s.Cycles = append(s.Cycles, IdleFor(indicatorPeriod-1)...)
	s.Cycles = append(s.Cycles, ToggleBits(IndicatorMask))
	s.Repeat = len(s.Cycles)
	return s
}

func captureScript(samples []uint8) Script {
	const interval = 200

	var s Script
	for _, v := range samples {
		s.Cycles = append(s.Cycles, IdleFor(interval)...)
		s.Cycles = append(s.Cycles, WriteTo(pins.MaskIndex, v))
	}
	return s
}

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

package scripted_test

import (
	"testing"

	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/dut/scripted"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/test"
)

// releases reset with the mode select value on the input line
func start(dev dut.Device, mode uint8) {
	dev.SetReset(true)
	dev.SetInput(mode)
	dev.SetReset(false)
}

// one full clock cycle ending with the clock low
func clock(dev dut.Device) {
	dev.SetClock(true)
	dev.SetClock(false)
}

func TestImplements(t *testing.T) {
	var dev any = scripted.NewDevice(nil)
	_, ok := dev.(dut.Device)
	test.ExpectSuccess(t, ok)
}

func TestFetch(t *testing.T) {
	dev := scripted.NewDevice(map[uint8]scripted.Script{
		0x00: {Cycles: []scripted.Cycle{scripted.FetchAt(0x4000), scripted.FetchAt(0x4001)}},
	})
	start(dev, 0x00)

	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.Read(0x4000))

	// data for the fetch is taken at the next edge
	dev.SetInput(0xf8)
	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.Read(0x4001))
	dev.SetInput(0xaa)
	clock(dev)

	obs := dev.Observed()
	test.DemandEquality(t, len(obs), 2)
	test.ExpectEquality(t, obs[0].Address, uint16(0x4000))
	test.ExpectEquality(t, obs[0].Data, uint8(0xf8))
	test.ExpectEquality(t, obs[1].Data, uint8(0xaa))

	// the script has ended and no more reads are completed
	clock(dev)
	test.ExpectEquality(t, len(dev.Observed()), 2)
	test.ExpectEquality(t, dev.Edges(), 4)
}

func TestWriteAndCopy(t *testing.T) {
	dev := scripted.NewDevice(map[uint8]scripted.Script{
		0x00: {Cycles: []scripted.Cycle{scripted.WriteTo(0x01, 0x4a), scripted.CopyTo(0x0100, 0x02)}},
	})
	start(dev, 0x00)

	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.WriteAddress(0x01))
	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.WriteData(0x01, 0x4a))

	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.Read(0x0100))
	dev.SetInput(0x4a)
	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.WriteAddress(0x02))
	clock(dev)
	test.ExpectEquality(t, dev.Outputs(), pins.WriteData(0x02, 0x4a))
}

func TestModeSelect(t *testing.T) {
	dev := scripted.NewDemo([]uint8{0x30, 0x25})
	start(dev, pins.SelectCapture)
	test.ExpectEquality(t, dev.Mode(), pins.SelectCapture)

	// edges while reset is asserted are ignored
	dev.SetReset(true)
	clock(dev)
	test.ExpectEquality(t, dev.Edges(), 0)
}

func TestToggle(t *testing.T) {
	dev := scripted.NewDemo(nil)
	start(dev, pins.SelectInternal)

	toggles := 0
	prev := dev.Outputs().UO & scripted.IndicatorMask
	for range 100 {
		clock(dev)
		v := dev.Outputs().UO & scripted.IndicatorMask
		if v != prev {
			toggles++
		}
		prev = v
	}
	test.ExpectEquality(t, toggles, 10)

	// the strobe is never asserted by the indicator script
	test.ExpectSuccess(t, dev.Outputs().Strobe())
}

func TestRepeat(t *testing.T) {
	dev := scripted.NewDevice(map[uint8]scripted.Script{
		0x00: {
			Cycles: []scripted.Cycle{scripted.FetchAt(0x4000), scripted.FetchAt(0x404a), scripted.FetchAt(0x404b)},
			Repeat: 2,
		},
	})
	start(dev, 0x00)

	var seen []uint16
	for range 7 {
		clock(dev)
		seen = append(seen, dev.Outputs().Address())
	}
	test.ExpectEqualitySlice(t, seen, []uint16{0x4000, 0x404a, 0x404b, 0x404a, 0x404b, 0x404a, 0x404b})
}

func TestCycleString(t *testing.T) {
	test.ExpectEquality(t, scripted.FetchAt(0x4000).String(), "fetch 4000")
	test.ExpectEquality(t, scripted.WriteTo(0x01, 0x4a).String(), "write [01] <- 4a")
	test.ExpectEquality(t, scripted.CopyTo(0x0500, 0x03).String(), "copy [03] <- (0500)")
	test.ExpectEquality(t, scripted.ToggleBits(0x81).String(), "toggle 01")
	test.ExpectEquality(t, scripted.Cycle{}.String(), "idle")
}

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

// Package scripted is a stand-in for the device under test. It drives its
// output lines from a Script of bus cycles rather than from a CPU core, which
// makes it possible to exercise the bench without an HDL simulator.
//
// The script is chosen by the value on the input line when reset is
// released. The device advances one clock on every rising edge of the clock
// while reset is not asserted. Data for a read is taken from the input line
// at the rising edge that ends the read.
package scripted

import (
	"time"

	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Observation is a read completed by the device.
type Observation struct {
	Time    time.Duration
	Address uint16
	Data    uint8
}

// a single clock of bus activity
type busState struct {
	out pins.Outputs

	// the state is a read and data should be sampled at the next edge
	read bool

	// the state is the data half of a copy and uses the most recent read
	copyData bool
}

// Device is the scripted implementation of the dut.Device interface.
type Device struct {
	scripts map[uint8]Script

	script  Script
	cycle   int
	pending []busState
	current busState

	ui       uint8
	clock    bool
	asserted bool
	mode     uint8

	now      time.Duration
	lastRead uint8
	observed []Observation
	edges    int
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(scripts map[uint8]Script) *Device {
	dev := &Device{
		scripts:  scripts,
		asserted: true,
	}
	dev.current = busState{out: pins.Read(0)}
	return dev
}

// SetInput implements the dut.Device interface.
func (dev *Device) SetInput(v uint8) {
	dev.ui = v
}

// SetReset implements the dut.Device interface.
func (dev *Device) SetReset(asserted bool) {
	if asserted {
		dev.current = busState{out: pins.Read(0)}
		dev.pending = dev.pending[:0]
	} else if dev.asserted {
		dev.mode = dev.ui
		dev.script = dev.scripts[dev.mode]
		dev.cycle = 0
		dev.observed = dev.observed[:0]
		dev.edges = 0
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

	dev.edges++

	// complete the read presented during the clock that has just ended
	if dev.current.read {
		dev.lastRead = dev.ui
		dev.observed = append(dev.observed, Observation{
			Time:    dev.now,
			Address: dev.current.out.Address(),
			Data:    dev.ui,
		})
	}

	if len(dev.pending) == 0 {
		dev.expand()
	}

	if len(dev.pending) == 0 {
		// nothing more to do. hold outputs but don't read again
		dev.current.read = false
		return
	}

	dev.current = dev.pending[0]
	dev.pending = dev.pending[1:]
	if dev.current.copyData {
		dev.current.out.UIO = dev.lastRead
	}
}

// expand the next cycle of the script into bus states.
func (dev *Device) expand() {
	n := len(dev.script.Cycles)
	if n == 0 {
		return
	}
	if dev.cycle >= n {
		if dev.script.Repeat <= 0 {
			return
		}
		dev.cycle = n - min(dev.script.Repeat, n)
	}

	c := dev.script.Cycles[dev.cycle]
	dev.cycle++

	held := dev.current.out
	held.UO |= pins.MaskStrobe

	switch c.Kind {
	case Idle:
		dev.pending = append(dev.pending, busState{out: held})
	case Fetch:
		dev.pending = append(dev.pending, busState{out: pins.Read(c.Address), read: true})
	case Write:
		dev.pending = append(dev.pending,
			busState{out: pins.WriteAddress(c.Index)},
			busState{out: pins.WriteData(c.Index, c.Data)},
		)
	case Copy:
		dev.pending = append(dev.pending,
			busState{out: pins.Read(c.Address), read: true},
			busState{out: pins.WriteAddress(c.Index)},
			busState{out: pins.WriteData(c.Index, 0), copyData: true},
		)
	case Toggle:
		held.UO ^= c.Mask
		dev.pending = append(dev.pending, busState{out: held})
	}
}

// Elapse implements the dut.Device interface.
func (dev *Device) Elapse(d time.Duration) {
	dev.now += d
}

// Outputs implements the dut.Device interface.
func (dev *Device) Outputs() pins.Outputs {
	return dev.current.out
}

// Mode returns the mode select value latched at the most recent release of
// reset.
func (dev *Device) Mode() uint8 {
	return dev.mode
}

// Observed returns the reads completed since reset was released.
func (dev *Device) Observed() []Observation {
	c := make([]Observation, len(dev.observed))
	copy(c, dev.observed)
	return c
}

// Edges returns the number of active clock edges since reset was released.
func (dev *Device) Edges() int {
	return dev.edges
}

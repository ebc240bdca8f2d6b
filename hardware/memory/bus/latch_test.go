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

package bus_test

import (
	"testing"

	"github.com/dvxf/tt06-dj8/hardware/memory/bus"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/test"
)

func TestWriteHandshake(t *testing.T) {
	l := bus.NewLatch()

	// a read does nothing to the latch
	l, _, ok := l.Step(pins.Read(0x4000))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.State, bus.Idle)

	// strobe falls. address is latched
	l, _, ok = l.Step(pins.WriteAddress(0x03))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.State, bus.AddrLatched)
	test.ExpectEquality(t, l.Address, uint8(0x03))

	// strobe stays low. the index on the lines is not relatched
	l, _, ok = l.Step(pins.WriteAddress(0x05))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.Address, uint8(0x03))

	// strobe rises. data is committed to the latched address, not to the
	// index on the lines at the time of the rise
	l, c, ok := l.Step(pins.WriteData(0x07, 0x21))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bus.Commit{Address: 0x03, Data: 0x21})
	test.ExpectEquality(t, l.State, bus.Idle)

	// strobe stays high
	_, _, ok = l.Step(pins.WriteData(0x07, 0x21))
	test.ExpectFailure(t, ok)
}

func TestStrayRise(t *testing.T) {
	// strobe is low and a write is open when the latch is reset
	l := bus.NewLatch()
	l, _, _ = l.Step(pins.WriteAddress(0x01))
	l = l.Reset()
	test.ExpectEquality(t, l.State, bus.Idle)
	test.ExpectEquality(t, l.Strobe, false)

	// the rise has no preceding fall since the reset
	l, _, ok := l.Step(pins.WriteData(0x01, 0xff))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, l.State, bus.Idle)
}

func TestLatchString(t *testing.T) {
	l := bus.NewLatch()
	test.ExpectEquality(t, l.String(), "idle")
	l, _, _ = l.Step(pins.WriteAddress(0x2a))
	test.ExpectEquality(t, l.String(), "address latched (2a)")
	test.ExpectEquality(t, bus.Commit{Address: 1, Data: 0x44}.String(), "[01] <- 44")
}

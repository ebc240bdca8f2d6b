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

	"github.com/dvxf/tt06-dj8/hardware/memory"
	"github.com/dvxf/tt06-dj8/hardware/memory/bus"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/test"
)

// trace of a program writing "DJ8!" into the working store, sampled twice
// per cycle
func magicTrace() []pins.Outputs {
	var tr []pins.Outputs
	for i, b := range []uint8("DJ8!") {
		idx := uint8(i)
		tr = append(tr,
			pins.Read(0x4000+uint16(i)), pins.Read(0x4000+uint16(i)),
			pins.WriteAddress(idx), pins.WriteAddress(idx),
			pins.WriteData(idx, b), pins.WriteData(idx, b),
		)
	}
	return tr
}

func runTrace(tr []pins.Outputs) *memory.WorkingStore {
	ws := memory.NewWorkingStore()
	em := bus.NewEmulator(memory.NewMap(memory.NewImage(nil), ws), ws)
	for _, o := range tr {
		em.Sample(o)
	}
	return ws
}

func TestEmulator(t *testing.T) {
	ws := memory.NewWorkingStore()
	mem := memory.NewMap(memory.NewImage([]uint8{0x98, 0xb1}), ws)
	em := bus.NewEmulator(mem, ws)

	data, drive := em.Sample(pins.Read(0x4001))
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, data, uint8(0xb1))

	for _, o := range magicTrace() {
		em.Sample(o)
	}
	test.ExpectEqualitySlice(t, ws.Prefix(4), []uint8{0x44, 0x4a, 0x38, 0x21})
	test.ExpectEquality(t, em.Commits(), 4)

	// reads of the working store see the committed bytes
	data, _ = em.Sample(pins.Read(0x0300))
	test.ExpectEquality(t, data, uint8('!'))

	em.Reset()
	test.ExpectEquality(t, em.Commits(), 0)
}

func TestEmulatorIdempotence(t *testing.T) {
	a := runTrace(magicTrace())
	b := runTrace(magicTrace())
	test.ExpectEqualitySlice(t, a.Snapshot(), b.Snapshot())
}

func TestEmulatorStrayRise(t *testing.T) {
	ws := memory.NewWorkingStore()
	em := bus.NewEmulator(nil, ws)

	em.Sample(pins.WriteAddress(0x01))
	em.Reset()
	em.Sample(pins.WriteData(0x01, 0xff))

	test.ExpectEquality(t, em.Commits(), 0)
	test.ExpectEqualitySlice(t, ws.Snapshot(), make([]uint8, 64))
}

func TestTee(t *testing.T) {
	a := memory.NewWorkingStore()
	var seen []bus.Commit
	tee := bus.Tee{a, bus.CommitterFunc(func(address, data uint8) {
		seen = append(seen, bus.Commit{Address: address, Data: data})
	})}

	em := bus.NewEmulator(nil, tee)
	for _, o := range magicTrace() {
		em.Sample(o)
	}
	test.ExpectEqualitySlice(t, a.Prefix(4), []uint8("DJ8!"))
	test.ExpectEqualitySlice(t, seen, []bus.Commit{{0, 'D'}, {1, 'J'}, {2, '8'}, {3, '!'}})
}

func TestAttach(t *testing.T) {
	a := memory.NewWorkingStore()
	b := memory.NewWorkingStore()
	em := bus.NewEmulator(nil, a)

	// open a transaction and switch committer before it completes
	em.Sample(pins.WriteAddress(0x00))
	em.Attach(nil, b)
	em.Sample(pins.WriteData(0x00, 0x44))
	test.ExpectEquality(t, b.Read(0), uint8(0))
	test.ExpectEquality(t, a.Read(0), uint8(0))

	for _, o := range magicTrace() {
		em.Sample(o)
	}
	test.ExpectEqualitySlice(t, b.Prefix(4), []uint8("DJ8!"))
	test.ExpectEqualitySlice(t, a.Prefix(4), []uint8{0, 0, 0, 0})
}

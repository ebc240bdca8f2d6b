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

package sequencer_test

import (
	"testing"
	"time"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/fixtures"
	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/dut/replay"
	"github.com/dvxf/tt06-dj8/hardware/dut/scripted"
	"github.com/dvxf/tt06-dj8/hardware/memory"
	"github.com/dvxf/tt06-dj8/hardware/memory/bus"
	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/sequencer"
	"github.com/dvxf/tt06-dj8/test"
)

func newDemo() (*scripted.Device, *sequencer.Sequencer) {
	dev := scripted.NewDemo(fixtures.DJ8Program)
	return dev, sequencer.NewSequencer(dev, memory.NewImage(fixtures.DJ8Program))
}

func TestDefaultPlan(t *testing.T) {
	_, sq := newDemo()

	res, err := sq.Run(sequencer.DefaultPlan())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Passed())
	test.ExpectEquality(t, len(res.Phases), 3)

	ext, ok := res.Phase(sequencer.PhaseExternal)
	test.DemandSuccess(t, ok)
	test.ExpectEqualitySlice(t, ext.Store[:4], fixtures.Magic)
	test.ExpectEquality(t, ext.Cycles, 2000)
	test.ExpectEquality(t, ext.Samples, 2000*6)
	test.ExpectEquality(t, ext.Commits, 5)
	test.ExpectEquality(t, ext.Policy, "external")

	// 10us reset, 10us settle and 2000 cycles of 20us
	test.ExpectEquality(t, ext.Elapsed, 20*time.Microsecond+2000*20*time.Microsecond)

	ind, ok := res.Phase(sequencer.PhaseIndicator)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ind.Cycles, 900)
	test.ExpectEquality(t, ind.Samples, 0)
	test.ExpectInequality(t, ind.Toggles, 0)

	capt, ok := res.Phase(sequencer.PhaseCapture)
	test.DemandSuccess(t, ok)
	test.ExpectEqualitySlice(t, capt.Output, fixtures.BytebeatPrefix)
	test.ExpectEquality(t, capt.Samples, 8000*2)

	test.ExpectEquality(t, res.Elapsed, sq.Now())
}

func TestExternalPhaseServesImage(t *testing.T) {
	dev, sq := newDemo()

	rep := sq.RunPhase(sequencer.DefaultPlan()[0])
	test.DemandSuccess(t, rep.Err)

	// every byte of the image is fetched from the image aperture
	obs := dev.Observed()
	test.DemandSuccess(t, len(obs) > len(fixtures.DJ8Program))
	for i, b := range fixtures.DJ8Program {
		test.ExpectEquality(t, obs[i].Address, 0x4000+uint16(i), i)
		test.ExpectEquality(t, obs[i].Data, b, i)
	}

	// the copy reads the final byte of the magic back from the working store
	cp := obs[len(fixtures.DJ8Program)]
	test.ExpectEquality(t, cp.Address, uint16(0x0500))
	test.ExpectEquality(t, cp.Data, uint8('!'))
}

func TestExternalPhaseWithoutImage(t *testing.T) {
	// the demo device writes the magic whatever it reads so the phase
	// passes. the reads themselves show the missing image
	dev := scripted.NewDemo(fixtures.DJ8Program)
	sq := sequencer.NewSequencer(dev, memory.NewImage(nil))

	rep := sq.RunPhase(sequencer.DefaultPlan()[0])
	test.ExpectSuccess(t, rep.Err)

	obs := dev.Observed()
	test.DemandSuccess(t, len(obs) > len(fixtures.DJ8Program))
	for i := range fixtures.DJ8Program {
		test.ExpectEquality(t, obs[i].Data, memorymap.Sentinel, i)
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	_, sq := newDemo()

	plan := sequencer.DefaultPlan()
	plan[0].ExpectStore = []uint8("DJ9!")

	res, err := sq.Run(plan)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sequencer.StoreMismatch))
	test.ExpectFailure(t, res.Passed())
	test.ExpectEquality(t, len(res.Phases), 1)
}

func TestOutputMismatch(t *testing.T) {
	_, sq := newDemo()

	plan := sequencer.DefaultPlan()
	plan[2].ExpectOutput = []uint8{0, 0, 1, 2}

	res, err := sq.Run(plan)
	test.ExpectSuccess(t, curated.Is(err, sequencer.OutputMismatch))
	test.ExpectEquality(t, len(res.Phases), 3)
	test.ExpectSuccess(t, res.Phases[0].Err == nil)
	test.ExpectSuccess(t, res.Phases[1].Err == nil)
}

func TestOutputIsPrefix(t *testing.T) {
	_, sq := newDemo()

	plan := sequencer.DefaultPlan()
	plan[2].ExpectOutput = []uint8{0, 0, 1}

	_, err := sq.Run(plan)
	test.ExpectSuccess(t, err)
}

func TestIndicatorStuck(t *testing.T) {
	// a device with no indicator script never toggles
	dev := scripted.NewDevice(map[uint8]scripted.Script{})
	sq := sequencer.NewSequencer(dev, memory.NewImage(nil))

	ph := sequencer.DefaultPlan()[1]
	ph.MinToggles = 1

	_, err := sq.Run([]sequencer.Phase{ph})
	test.ExpectSuccess(t, curated.Is(err, sequencer.IndicatorStuck))

	ph.MinToggles = 0
	_, err = sq.Run([]sequencer.Phase{ph})
	test.ExpectSuccess(t, err)
}

func TestMissingMagicWithSilentDevice(t *testing.T) {
	dev := scripted.NewDevice(map[uint8]scripted.Script{})
	sq := sequencer.NewSequencer(dev, memory.NewImage(fixtures.DJ8Program))

	res, err := sq.Run(sequencer.DefaultPlan())
	test.ExpectSuccess(t, curated.Is(err, sequencer.StoreMismatch))
	test.DemandEquality(t, len(res.Phases), 1)
	test.ExpectEqualitySlice(t, res.Phases[0].Store[:4], []uint8{0, 0, 0, 0})
}

func TestValidation(t *testing.T) {
	_, sq := newDemo()

	plan := sequencer.DefaultPlan()
	plan[1].Segments = nil

	res, err := sq.Run(plan)
	test.ExpectSuccess(t, curated.Is(err, sequencer.InvalidPhase))

	// nothing is run if any phase is invalid
	test.ExpectEquality(t, len(res.Phases), 0)
	test.ExpectEquality(t, sq.Now(), time.Duration(0))

	ph := sequencer.DefaultPlan()[0]
	ph.ExpectOutput = []uint8{0}
	test.ExpectFailure(t, ph.Validate())

	ph = sequencer.DefaultPlan()[0]
	ph.Waveform = sequencer.Waveform{{Clock: true}}
	test.ExpectFailure(t, ph.Validate())

	ph = sequencer.DefaultPlan()[0]
	ph.Name = ""
	test.ExpectFailure(t, ph.Validate())

	// policies only apply to phases that serve reads
	ph = sequencer.DefaultPlan()[2]
	ph.Policy = memorymap.Mirrored
	test.ExpectSuccess(t, curated.Is(ph.Validate(), sequencer.InvalidPhase))
	ph = sequencer.DefaultPlan()[1]
	ph.Policy = memorymap.External
	test.ExpectFailure(t, ph.Validate())

	for _, ph := range sequencer.DefaultPlan() {
		test.ExpectSuccess(t, ph.Validate(), ph.Name)
	}
}

func TestMirroredPolicy(t *testing.T) {
	image := []uint8{0xa5, 0x5a}

	// fetch the image from the bottom of memory and copy a byte from the
	// mirrored working store
	dev := scripted.NewDevice(map[uint8]scripted.Script{
		pins.SelectExternal: {Cycles: []scripted.Cycle{
			scripted.FetchAt(0x0000),
			scripted.FetchAt(0x0001),
			scripted.WriteTo(0x07, 0x3c),
			scripted.CopyTo(0x4700, 0x08),
			scripted.FetchAt(0x0002),
		}},
	})
	sq := sequencer.NewSequencer(dev, memory.NewImage(image))

	ph := sequencer.DefaultPlan()[0]
	ph.Policy = memorymap.Mirrored
	ph.Segments = []sequencer.Segment{{Select: pins.SelectExternal, Cycles: 20}}
	ph.ExpectStore = nil

	rep := sq.RunPhase(ph)
	test.ExpectSuccess(t, rep.Err)
	test.ExpectEquality(t, rep.Policy, "mirrored")

	obs := dev.Observed()
	test.DemandEquality(t, len(obs), 4)
	test.ExpectEquality(t, obs[0].Data, uint8(0xa5))
	test.ExpectEquality(t, obs[1].Data, uint8(0x5a))
	test.ExpectEquality(t, obs[2].Data, uint8(0x3c))
	test.ExpectEquality(t, obs[3].Data, memorymap.Sentinel)
	test.ExpectEquality(t, rep.Store[8], uint8(0x3c))
}

func TestReplayIsIdempotent(t *testing.T) {
	rec := dut.NewRecorder(scripted.NewDemo(fixtures.DJ8Program))
	sq := sequencer.NewSequencer(rec, memory.NewImage(fixtures.DJ8Program))
	a, err := sq.Run(sequencer.DefaultPlan())
	test.DemandSuccess(t, err)

	rp := replay.NewDevice(rec.Trace())
	sq = sequencer.NewSequencer(rp, memory.NewImage(fixtures.DJ8Program))
	b, err := sq.Run(sequencer.DefaultPlan())
	test.DemandSuccess(t, err)

	for i := range a.Phases {
		test.ExpectEqualitySlice(t, b.Phases[i].Store, a.Phases[i].Store, a.Phases[i].Name)
		test.ExpectEqualitySlice(t, b.Phases[i].Output, a.Phases[i].Output, a.Phases[i].Name)
		test.ExpectEquality(t, b.Phases[i].Commits, a.Phases[i].Commits, a.Phases[i].Name)
	}
}

func TestTap(t *testing.T) {
	_, sq := newDemo()

	var tapped []uint8
	sq.AttachTap(bus.CommitterFunc(func(_ uint8, data uint8) {
		tapped = append(tapped, data)
	}))

	_, err := sq.Run(sequencer.DefaultPlan())
	test.DemandSuccess(t, err)
	test.ExpectEqualitySlice(t, tapped, sq.Capture.Sequence())
}

func TestWaveforms(t *testing.T) {
	w := sequencer.Asymmetric(time.Microsecond, 8*time.Microsecond)
	test.ExpectEquality(t, len(w), 6)
	test.ExpectEquality(t, w.Period(), 20*time.Microsecond)
	test.ExpectEquality(t, w.Samples(), 6)
	test.ExpectEquality(t, w[0].String(), "0/1µs/S")

	w = sequencer.Symmetric(10 * time.Microsecond)
	test.ExpectEquality(t, w.Period(), 20*time.Microsecond)
	test.ExpectEquality(t, w.Samples(), 0)

	w, err := sequencer.WaveformByName("Sampled", 35*time.Nanosecond)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Period(), 70*time.Nanosecond)
	test.ExpectEquality(t, w.Samples(), 2)

	_, err = sequencer.WaveformByName("triangle", time.Microsecond)
	test.ExpectFailure(t, err)

	k, err := sequencer.KindByName("CAPTURE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, sequencer.Capture)
}

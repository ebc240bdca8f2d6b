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
	"bytes"
	"time"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/hardware/capture"
	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/memory"
	"github.com/dvxf/tt06-dj8/hardware/memory/bus"
	"github.com/dvxf/tt06-dj8/logger"
)

// Patterns for the errors returned by the end of phase checks.
const (
	StoreMismatch  = "phase %s: working store mismatch: have [% 02x] want [% 02x]"
	OutputMismatch = "phase %s: output sequence mismatch: have [% 02x] want prefix [% 02x]"
	IndicatorStuck = "phase %s: indicator changed %d times, want at least %d"
)

// Sequencer runs phases against a device.
type Sequencer struct {
	dev dut.Device

	// the memory map served to the device in External phases
	Mem *memory.Map

	// the output sequence of Capture phases
	Capture *capture.Sink

	// additional committer that sees every commit in Capture phases
	tap bus.Committer

	em *bus.Emulator

	now time.Duration

	// permission for the logging of individual commits
	Verbose logger.Permission
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type. The working store is created here and lives for as long as the
// Sequencer.
func NewSequencer(dev dut.Device, image *memory.Image) *Sequencer {
	sq := &Sequencer{
		dev:     dev,
		Mem:     memory.NewMap(image, memory.NewWorkingStore()),
		Capture: capture.NewSink(),
	}
	sq.em = bus.NewEmulator(nil, nil)
	sq.Verbose = sq.em.Verbose

	// initial state of the input lines
	sq.dev.SetClock(false)
	sq.dev.SetInput(0)

	return sq
}

// AttachTap adds a committer that sees every commit made in a Capture phase,
// in addition to the capture sink.
func (sq *Sequencer) AttachTap(tap bus.Committer) {
	sq.tap = tap
}

// Now returns the simulated time since the Sequencer was created.
func (sq *Sequencer) Now() time.Duration {
	return sq.now
}

// Run the phases in order. The run stops at the first phase that fails. The
// result contains a report for every phase that was run, including the
// failing phase.
func (sq *Sequencer) Run(phases []Phase) (Result, error) {
	var res Result

	for _, ph := range phases {
		if err := ph.Validate(); err != nil {
			return res, err
		}
	}

	start := sq.now
	for _, ph := range phases {
		rep := sq.RunPhase(ph)
		res.Phases = append(res.Phases, rep)
		res.Elapsed = sq.now - start
		if rep.Err != nil {
			return res, rep.Err
		}
	}

	return res, nil
}

// RunPhase runs a single phase. The phase is not validated. The error from the
// end of phase checks is in the Err field of the report.
func (sq *Sequencer) RunPhase(ph Phase) PhaseReport {
	start := sq.now

	rep := PhaseReport{
		Name: ph.Name,
		Kind: ph.Kind,
	}

	logger.Logf(logger.Allow, "sequencer", "%s: reset with select %02x", ph, ph.Reset.Select)

	switch ph.Kind {
	case External:
		sq.Mem.SetPolicy(ph.Policy)
		rep.Policy = sq.Mem.Policy().String()
		sq.em.Attach(sq.Mem, sq.Mem.Store)
	case Capture:
		sq.Capture.Reset()
		if sq.tap != nil {
			sq.em.Attach(nil, bus.Tee{sq.Capture, sq.tap})
		} else {
			sq.em.Attach(nil, sq.Capture)
		}
	case Indicator:
		sq.em.Attach(nil, nil)
	}
	sq.em.Verbose = sq.Verbose

	sq.reset(ph.Reset)

	indicator := sq.dev.Outputs().UO & ph.IndicatorMask

	for _, seg := range ph.Segments {
		sq.dev.SetInput(seg.Select)

		for range seg.Cycles {
			for _, step := range ph.Waveform {
				sq.dev.SetClock(step.Clock)
				sq.wait(step.Wait)

				if step.Sample && ph.Kind != Indicator {
					rep.Samples++
					if data, drive := sq.em.Sample(sq.dev.Outputs()); drive {
						sq.dev.SetInput(data)
					}
				}

				if ph.IndicatorMask != 0 {
					if v := sq.dev.Outputs().UO & ph.IndicatorMask; v != indicator {
						rep.Toggles++
						indicator = v
					}
				}
			}
		}

		rep.Cycles += seg.Cycles
	}

	rep.Elapsed = sq.now - start
	rep.Store = sq.Mem.Store.Snapshot()
	rep.Commits = sq.em.Commits()
	rep.Indicator = indicator
	if ph.Kind == Capture {
		rep.Output = sq.Capture.Sequence()
	}

	rep.Err = sq.check(ph, rep)

	logger.Logf(logger.Allow, "sequencer", "%s", rep)
	if rep.Err != nil {
		logger.Log(logger.Allow, "sequencer", rep.Err)
	}

	return rep
}

// reset the device and apply the mode select value.
func (sq *Sequencer) reset(r Reset) {
	sq.dev.SetReset(true)
	sq.wait(r.Hold)
	sq.dev.SetInput(r.Select)
	sq.dev.SetReset(false)
	sq.wait(r.Settle)
}

func (sq *Sequencer) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	sq.now += d
	sq.dev.Elapse(d)
}

// check the end of phase expectations.
func (sq *Sequencer) check(ph Phase, rep PhaseReport) error {
	if len(ph.ExpectStore) > 0 {
		have := rep.Store[:len(ph.ExpectStore)]
		logger.Logf(logger.Allow, "sequencer", "%s: store prefix [% 02X] %q", ph.Name, have, have)
		if !bytes.Equal(have, ph.ExpectStore) {
			return curated.Errorf(StoreMismatch, ph.Name, have, ph.ExpectStore)
		}
	}

	if len(ph.ExpectOutput) > 0 {
		logger.Logf(logger.Allow, "sequencer", "%s: %d bytes captured", ph.Name, len(rep.Output))
		if !bytes.HasPrefix(rep.Output, ph.ExpectOutput) {
			return curated.Errorf(OutputMismatch, ph.Name, rep.Output, ph.ExpectOutput)
		}
	}

	if ph.MinToggles > 0 && rep.Toggles < ph.MinToggles {
		return curated.Errorf(IndicatorStuck, ph.Name, rep.Toggles, ph.MinToggles)
	}

	return nil
}

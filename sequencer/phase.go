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
	"fmt"
	"strings"
	"time"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
)

// Kind of phase.
type Kind int

// List of valid Kind values.
const (
	External Kind = iota
	Indicator
	Capture
)

func (k Kind) String() string {
	switch k {
	case External:
		return "external"
	case Indicator:
		return "indicator"
	case Capture:
		return "capture"
	}
	return "undefined"
}

// KindByName returns the Kind with the name. Names are case insensitive.
func KindByName(name string) (Kind, error) {
	for _, k := range []Kind{External, Indicator, Capture} {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return External, fmt.Errorf("sequencer: unknown phase kind (%s)", name)
}

// Reset describes how reset is applied at the start of a phase.
type Reset struct {
	// how long reset is asserted for
	Hold time.Duration

	// value on the input line when reset is released
	Select uint8

	// how long to wait after reset is released
	Settle time.Duration
}

// Segment is a run of clock cycles with a value on the input line.
type Segment struct {
	Select uint8
	Cycles int
}

// Phase is a single test phase.
type Phase struct {
	Name string
	Kind Kind

	// address decoding policy. must be nil for phases other than External,
	// which serve no reads. for External phases nil is the same as
	// memorymap.External
	Policy memorymap.Policy

	Reset    Reset
	Waveform Waveform
	Segments []Segment

	// expected prefix of the working store at the end of the phase
	ExpectStore []uint8

	// expected prefix of the output sequence at the end of the phase
	ExpectOutput []uint8

	// bits of the UO line that make up the indicator and the minimum number
	// of changes required. a MinToggles value of zero disables the check
	IndicatorMask uint8
	MinToggles    int
}

func (ph Phase) String() string {
	return fmt.Sprintf("%s (%s)", ph.Name, ph.Kind)
}

// Cycles returns the total number of clock cycles in the phase.
func (ph Phase) Cycles() int {
	var n int
	for _, s := range ph.Segments {
		n += s.Cycles
	}
	return n
}

// InvalidPhase is the pattern for errors returned by Validate().
const InvalidPhase = "phase %s: %v"

// Validate checks that the phase can be run.
func (ph Phase) Validate() error {
	if ph.Name == "" {
		return curated.Errorf(InvalidPhase, "?", "no name")
	}
	if ph.Kind != External && ph.Kind != Indicator && ph.Kind != Capture {
		return curated.Errorf(InvalidPhase, ph.Name, "undefined kind")
	}
	if len(ph.Waveform) == 0 {
		return curated.Errorf(InvalidPhase, ph.Name, "empty waveform")
	}
	if ph.Waveform.Period() <= 0 {
		return curated.Errorf(InvalidPhase, ph.Name, "waveform has no duration")
	}
	if len(ph.Segments) == 0 {
		return curated.Errorf(InvalidPhase, ph.Name, "no segments")
	}
	for i, s := range ph.Segments {
		if s.Cycles <= 0 {
			return curated.Errorf(InvalidPhase, ph.Name, fmt.Sprintf("segment %d has no cycles", i))
		}
	}
	if len(ph.ExpectStore) > memorymap.StoreSize {
		return curated.Errorf(InvalidPhase, ph.Name, "expected store is larger than the working store")
	}
	if ph.Kind != External && ph.Policy != nil {
		return curated.Errorf(InvalidPhase, ph.Name, "policy can only be given for an external phase")
	}
	if ph.Kind != Capture && len(ph.ExpectOutput) > 0 {
		return curated.Errorf(InvalidPhase, ph.Name, "output can only be expected from a capture phase")
	}
	return nil
}

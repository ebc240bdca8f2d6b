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
)

// PhaseReport is the outcome of a single phase.
type PhaseReport struct {
	Name   string
	Kind   Kind
	Policy string

	Cycles  int
	Samples int

	// simulated time taken by the phase, including reset
	Elapsed time.Duration

	// snapshot of the working store at the end of the phase
	Store []uint8

	// the output sequence. only for capture phases
	Output []uint8

	// number of completed write transactions
	Commits int

	// number of changes of the indicator bits and their final value
	Toggles   int
	Indicator uint8

	// the error returned by the end of phase checks, if any
	Err error
}

func (r PhaseReport) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s): %d cycles, %v", r.Name, r.Kind, r.Cycles, r.Elapsed))
	switch r.Kind {
	case External:
		s.WriteString(fmt.Sprintf(", %s policy, %d commits", r.Policy, r.Commits))
	case Capture:
		s.WriteString(fmt.Sprintf(", %d bytes captured", len(r.Output)))
	case Indicator:
		s.WriteString(fmt.Sprintf(", %d toggles", r.Toggles))
	}
	if r.Err != nil {
		s.WriteString(": FAIL")
	} else {
		s.WriteString(": ok")
	}
	return s.String()
}

// Result of a call to Run().
type Result struct {
	Phases  []PhaseReport
	Elapsed time.Duration
}

// Passed returns true if every phase in the result passed. An empty result
// has not passed.
func (r Result) Passed() bool {
	if len(r.Phases) == 0 {
		return false
	}
	for _, p := range r.Phases {
		if p.Err != nil {
			return false
		}
	}
	return true
}

// Phase returns the report for the named phase.
func (r Result) Phase(name string) (PhaseReport, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseReport{}, false
}

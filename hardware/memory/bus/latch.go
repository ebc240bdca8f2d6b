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

package bus

import (
	"fmt"

	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// State of the write handshake.
type State int

// List of valid State values.
const (
	Idle State = iota
	AddrLatched
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AddrLatched:
		return "address latched"
	}
	return "undefined"
}

// Commit is a completed write transaction.
type Commit struct {
	Address uint8
	Data    uint8
}

func (c Commit) String() string {
	return fmt.Sprintf("[%02x] <- %02x", c.Address, c.Data)
}

// Latch is the edge triggered write latch. It is a value type and Step()
// returns the next state rather than changing the receiver.
//
// The zero value is not ready for use because it records the previous strobe
// as low. Use NewLatch().
type Latch struct {
	State   State
	Address uint8

	// level of the strobe at the previous sample. true is high (inactive)
	Strobe bool
}

// NewLatch returns a Latch with no open transaction and the strobe inactive.
func NewLatch() Latch {
	return Latch{State: Idle, Strobe: true}
}

func (l Latch) String() string {
	if l.State == AddrLatched {
		return fmt.Sprintf("%s (%02x)", l.State, l.Address)
	}
	return l.State.String()
}

// Step advances the latch using the sampled Outputs. If the sample completes
// a write transaction the Commit is returned and the boolean is true.
func (l Latch) Step(out pins.Outputs) (Latch, Commit, bool) {
	strobe := out.Strobe()
	prev := l.Strobe
	l.Strobe = strobe

	switch {
	case prev && !strobe:
		// strobe falling. any open transaction is replaced
		l.State = AddrLatched
		l.Address = out.Index()

	case !prev && strobe:
		// strobe rising. no-op if there was no fall
		if l.State == AddrLatched {
			l.State = Idle
			return l, Commit{Address: l.Address, Data: out.UIO}, true
		}
	}

	return l, Commit{}, false
}

// Reset discards any open transaction. The strobe level is kept because it is
// the level of a physical line and does not change when a phase starts.
func (l Latch) Reset() Latch {
	l.State = Idle
	l.Address = 0
	return l
}

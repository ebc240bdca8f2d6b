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

// Package capture records the bytes written by the device while it streams
// output rather than using the working store. In capture mode the device
// produces a sequence of samples and the address of each write is
// irrelevant.
package capture

import "fmt"

// Sink is an append only Output Sequence. It implements the bus.Committer
// interface.
type Sink struct {
	seq []uint8
}

// NewSink is the preferred method of initialisation for the Sink type.
func NewSink() *Sink {
	return &Sink{seq: make([]uint8, 0, 64)}
}

func (s *Sink) String() string {
	return fmt.Sprintf("%d bytes captured", len(s.seq))
}

// Commit implements the bus.Committer interface. The address is ignored.
func (s *Sink) Commit(_ uint8, data uint8) {
	s.seq = append(s.seq, data)
}

// Sequence returns a copy of the captured bytes.
func (s *Sink) Sequence() []uint8 {
	c := make([]uint8, len(s.seq))
	copy(c, s.seq)
	return c
}

// Len returns the number of captured bytes.
func (s *Sink) Len() int {
	return len(s.seq)
}

// Reset empties the sequence.
func (s *Sink) Reset() {
	s.seq = s.seq[:0]
}

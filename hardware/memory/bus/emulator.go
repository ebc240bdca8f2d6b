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
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/logger"
)

// Emulator emulates the memory subsystem from the point of view of the
// device. It owns the write latch and passes it through Decode() every time
// the bus is sampled.
type Emulator struct {
	reader    Reader
	committer Committer
	latch     Latch

	// number of commits since the last reset
	commits int

	// logging of every commit is expensive during long phases
	Verbose logger.Permission
}

// NewEmulator is the preferred method of initialisation for the Emulator
// type. The reader can be nil if the bus should not serve reads. The
// committer can be nil if writes are to be discarded.
func NewEmulator(reader Reader, committer Committer) *Emulator {
	return &Emulator{
		reader:    reader,
		committer: committer,
		latch:     NewLatch(),
		Verbose:   quiet{},
	}
}

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

// Sample the Outputs of the device. Returns the value to drive onto the input
// line and whether it should be driven at all.
func (em *Emulator) Sample(out pins.Outputs) (uint8, bool) {
	d := Decode(out, em.latch, em.reader)
	em.latch = d.Next

	if d.Committed {
		em.commits++
		if em.committer != nil {
			em.committer.Commit(d.Commit.Address, d.Commit.Data)
		}
		logger.Log(em.Verbose, "bus", d.Commit)
	}

	return d.Data, d.Drive
}

// Attach a new reader and committer. The emulator is reset as though by a
// call to Reset().
func (em *Emulator) Attach(reader Reader, committer Committer) {
	em.reader = reader
	em.committer = committer
	em.Reset()
}

// Reset discards any open write transaction and the commit count.
func (em *Emulator) Reset() {
	em.latch = em.latch.Reset()
	em.commits = 0
}

// Latch returns the current state of the write latch.
func (em *Emulator) Latch() Latch {
	return em.latch
}

// Commits returns the number of completed write transactions since the last
// reset.
func (em *Emulator) Commits() int {
	return em.commits
}

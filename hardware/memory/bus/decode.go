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

import "github.com/dvxf/tt06-dj8/hardware/pins"

// Decoded is the result of a call to Decode().
type Decoded struct {
	// Drive is true if Data should be driven onto the input line
	Drive bool
	Data  uint8

	// Commit is valid if Committed is true
	Committed bool
	Commit    Commit

	// the latch to use for the next sample
	Next Latch
}

// Decode the Outputs of the device. The reader can be nil, in which case
// nothing is driven onto the input line.
//
// Decode has no side effects. The caller is responsible for driving the data
// line, passing the commit to a Committer and keeping the next latch.
func Decode(out pins.Outputs, latch Latch, rd Reader) Decoded {
	var d Decoded

	if rd != nil {
		d.Drive = true
		d.Data = rd.Read(out.Address())
	}

	d.Next, d.Commit, d.Committed = latch.Step(out)

	return d
}

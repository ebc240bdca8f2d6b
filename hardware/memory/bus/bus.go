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

// Reader is implemented by memory that can serve reads from the device.
type Reader interface {
	Read(address uint16) uint8
}

// Committer is implemented by anything that receives completed write
// transactions.
type Committer interface {
	Commit(address uint8, data uint8)
}

// Tee sends each commit to every Committer in the list, in order.
type Tee []Committer

// Commit implements the Committer interface.
func (t Tee) Commit(address uint8, data uint8) {
	for _, c := range t {
		c.Commit(address, data)
	}
}

// CommitterFunc allows a function to be used as a Committer.
type CommitterFunc func(address uint8, data uint8)

// Commit implements the Committer interface.
func (f CommitterFunc) Commit(address uint8, data uint8) {
	f(address, data)
}

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

package memory

import (
	"encoding/hex"

	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
)

// WorkingStore is the mutable memory emulating the external RAM of the
// device. It is zero at creation and is only changed by Commit().
type WorkingStore struct {
	RAM [memorymap.StoreSize]uint8
}

// NewWorkingStore is the preferred method of initialisation for the
// WorkingStore type.
func NewWorkingStore() *WorkingStore {
	return &WorkingStore{}
}

func (ws *WorkingStore) String() string {
	return hex.Dump(ws.RAM[:])
}

// Read returns the byte at index i.
func (ws *WorkingStore) Read(i int) uint8 {
	return ws.RAM[i&int(memorymap.MaskStore)]
}

// Commit implements the bus.Committer interface.
func (ws *WorkingStore) Commit(address uint8, data uint8) {
	ws.RAM[address&uint8(memorymap.MaskStore)] = data
}

// Snapshot returns a copy of the store in its current state.
func (ws *WorkingStore) Snapshot() []uint8 {
	s := make([]uint8, len(ws.RAM))
	copy(s, ws.RAM[:])
	return s
}

// Prefix returns a copy of the first n bytes of the store. The value of n is
// capped to the size of the store.
func (ws *WorkingStore) Prefix(n int) []uint8 {
	n = min(max(n, 0), len(ws.RAM))
	s := make([]uint8, n)
	copy(s, ws.RAM[:n])
	return s
}

// Clear sets every byte in the store to zero.
func (ws *WorkingStore) Clear() {
	clear(ws.RAM[:])
}

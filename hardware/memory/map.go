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
	"fmt"

	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
)

// Map serves reads for the device by applying a memorymap.Policy to the
// image and the working store.
type Map struct {
	Image  *Image
	Store  *WorkingStore
	policy memorymap.Policy
}

// NewMap is the preferred method of initialisation for the Map type. The
// policy defaults to memorymap.External.
func NewMap(image *Image, store *WorkingStore) *Map {
	if store == nil {
		store = NewWorkingStore()
	}
	return &Map{
		Image:  image,
		Store:  store,
		policy: memorymap.External,
	}
}

func (mem *Map) String() string {
	return fmt.Sprintf("%s policy, %d byte image", mem.policy, mem.Image.Len())
}

// SetPolicy selects the address decoding policy. A nil policy selects
// memorymap.External.
func (mem *Map) SetPolicy(policy memorymap.Policy) {
	if policy == nil {
		policy = memorymap.External
	}
	mem.policy = policy
}

// Policy returns the current address decoding policy.
func (mem *Map) Policy() memorymap.Policy {
	return mem.policy
}

// Read implements the bus.Reader interface. Unmapped addresses return
// memorymap.Sentinel.
func (mem *Map) Read(address uint16) uint8 {
	area, idx := mem.policy.Resolve(address, mem.Image.Len())
	switch area {
	case memorymap.Image:
		return mem.Image.Read(idx)
	case memorymap.WorkingStore:
		return mem.Store.Read(idx)
	}
	return memorymap.Sentinel
}

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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Image:
		return "Image"
	case WorkingStore:
		return "WorkingStore"
	}
	return "Unmapped"
}

// The different memory areas visible to the device.
const (
	Unmapped Area = iota
	Image
	WorkingStore
)

// Unmapped reads return this byte. It has no meaning beyond making such
// reads observable in a trace.
const Sentinel = uint8(0x66)

// Memtop is the top most address the device can present.
const Memtop = uint16(0x7fff)

// Address bits relevant to the decoding rules.
const (
	// bit 14 selects between working store and image
	BitAperture = uint16(0x4000)

	// the image is masked to 14 bits in the external aperture
	MaskImage = uint16(0x3fff)

	// the working store is indexed by address bits 13:8
	ShiftStore = 8
	MaskStore  = uint16(0x3f)
)

// StoreSize is the number of bytes in the working store.
const StoreSize = int(MaskStore) + 1

// Policy implementations translate an address into an Area and an index into
// that area's backing store. The index is meaningless for the Unmapped area.
type Policy interface {
	Resolve(address uint16, imageLen int) (Area, int)
	String() string
}

// storeIndex returns the working store index for an address.
func storeIndex(address uint16) int {
	return int((address >> ShiftStore) & MaskStore)
}

type external struct{}

// External is the policy used when the device fetches its program from the
// bench. Note that the image is only checked after the aperture bit and the
// address is masked before it is compared to the image length.
var External Policy = external{}

func (external) String() string {
	return "external"
}

func (external) Resolve(address uint16, imageLen int) (Area, int) {
	address &= Memtop
	if address&BitAperture == 0 {
		return WorkingStore, storeIndex(address)
	}
	if i := int(address & MaskImage); i < imageLen {
		return Image, i
	}
	return Unmapped, 0
}

type mirrored struct{}

// Mirrored is the policy used when the device executes its internal image.
// The image is checked first and the full address is compared to the image
// length without masking.
var Mirrored Policy = mirrored{}

func (mirrored) String() string {
	return "mirrored"
}

func (mirrored) Resolve(address uint16, imageLen int) (Area, int) {
	address &= Memtop
	if int(address) < imageLen {
		return Image, int(address)
	}
	if address&BitAperture == BitAperture {
		return WorkingStore, storeIndex(address)
	}
	return Unmapped, 0
}

// PolicyByName returns the named policy. Names are case insensitive.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "external":
		return External, nil
	case "mirrored", "internal":
		return Mirrored, nil
	}
	return nil, fmt.Errorf("memorymap: unknown policy (%s)", name)
}

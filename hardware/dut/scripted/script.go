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

package scripted

import (
	"fmt"

	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Kind of bus cycle.
type Kind int

// List of valid Kind values.
const (
	Idle Kind = iota
	Fetch
	Write
	Copy
	Toggle
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Fetch:
		return "fetch"
	case Write:
		return "write"
	case Copy:
		return "copy"
	case Toggle:
		return "toggle"
	}
	return "undefined"
}

// Cycle is a single entry in a Script. Depending on the Kind, a cycle may
// take more than one clock cycle on the bus.
//
//	Idle:   one clock. outputs are held
//	Fetch:  one clock. Address is presented for reading
//	Write:  two clocks. strobe falls with Index, rises with Data
//	Copy:   three clocks. Address is read and the data is written to Index
//	Toggle: one clock. the bits of Mask are inverted on the UO line
type Cycle struct {
	Kind    Kind
	Address uint16
	Index   uint8
	Data    uint8
	Mask    uint8
}

func (c Cycle) String() string {
	switch c.Kind {
	case Fetch:
		return fmt.Sprintf("%s %04x", c.Kind, c.Address)
	case Write:
		return fmt.Sprintf("%s [%02x] <- %02x", c.Kind, c.Index, c.Data)
	case Copy:
		return fmt.Sprintf("%s [%02x] <- (%04x)", c.Kind, c.Index, c.Address)
	case Toggle:
		return fmt.Sprintf("%s %02x", c.Kind, c.Mask)
	}
	return c.Kind.String()
}

// Script is a list of cycles. When the end of the list is reached the last
// Repeat cycles are run again, forever. If Repeat is zero the device idles.
type Script struct {
	Cycles []Cycle
	Repeat int
}

// FetchAt returns a Fetch cycle.
func FetchAt(address uint16) Cycle {
	return Cycle{Kind: Fetch, Address: address & pins.MaskAddress}
}

// WriteTo returns a Write cycle.
func WriteTo(index uint8, data uint8) Cycle {
	return Cycle{Kind: Write, Index: index & pins.MaskIndex, Data: data}
}

// CopyTo returns a Copy cycle.
func CopyTo(address uint16, index uint8) Cycle {
	return Cycle{Kind: Copy, Address: address & pins.MaskAddress, Index: index & pins.MaskIndex}
}

// ToggleBits returns a Toggle cycle.
func ToggleBits(mask uint8) Cycle {
	return Cycle{Kind: Toggle, Mask: mask &^ pins.MaskStrobe}
}

// IdleFor returns n Idle cycles.
func IdleFor(n int) []Cycle {
	return make([]Cycle, n)
}

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

package pins

import "fmt"

// Masks for the parts of the Outputs lines.
const (
	MaskStrobe  = uint8(0x80)
	MaskAddress = uint16(0x7fff)
	MaskIndex   = uint8(0x3f)
)

// Mode select values presented on the input line when reset is released.
const (
	SelectExternal     = uint8(0x00)
	SelectIndicatorAlt = uint8(0x01)
	SelectInternal     = uint8(0x40)
	SelectCapture      = uint8(0x60)
)

// Outputs is a snapshot of the lines driven by the device.
type Outputs struct {
	UO  uint8
	UIO uint8
}

func (o Outputs) String() string {
	return fmt.Sprintf("%02x %02x", o.UO, o.UIO)
}

// Strobe returns the level of the write strobe. The strobe is active low so
// a value of true means that no write is in progress.
func (o Outputs) Strobe() bool {
	return o.UO&MaskStrobe == MaskStrobe
}

// Address returns the 15 bit effective address on the bus.
func (o Outputs) Address() uint16 {
	return (uint16(o.UO)<<8 | uint16(o.UIO)) & MaskAddress
}

// Index returns the working store index presented while the strobe falls.
func (o Outputs) Index() uint8 {
	return o.UO & MaskIndex
}

// Inputs is the state of the lines driven by the bench.
type Inputs struct {
	UI     uint8
	Clock  bool
	ResetN bool
}

func (i Inputs) String() string {
	return fmt.Sprintf("ui=%02x clk=%v rst_n=%v", i.UI, i.Clock, i.ResetN)
}

// Read returns the Outputs for a device reading the address.
func Read(address uint16) Outputs {
	address &= MaskAddress
	return Outputs{
		UO:  uint8(address>>8) | MaskStrobe,
		UIO: uint8(address),
	}
}

// WriteAddress returns the Outputs for the first half of a write to the
// working store index. The strobe is low.
func WriteAddress(index uint8) Outputs {
	return Outputs{UO: index & MaskIndex}
}

// WriteData returns the Outputs for the second half of a write. The strobe
// is high and the data is on the bidirectional line.
func WriteData(index uint8, data uint8) Outputs {
	return Outputs{UO: index&MaskIndex | MaskStrobe, UIO: data}
}

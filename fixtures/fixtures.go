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

// Package fixtures holds the input data and expected results used by the
// default test plan. The data is opaque to the bench.
package fixtures

import (
	"os"

	"github.com/pkg/errors"

	"github.com/dvxf/tt06-dj8/logger"
)

// DJ8Program is the program fetched by the device during the external memory
// phase. When run to completion it leaves Magic in the first four bytes of
// the working store.
var DJ8Program = []uint8{
	0xf8, 0xaa, // 0000: movi A, 0xAA
	0xf9, 0xbb, // 0002: movi B, 0xBB
	0x82, 0x20, // 0004: add C,B,A
	0x8d, 0x40, // 0006: addc F,C,A
	0x9d, 0xa4, // 0008: movr F,F,shr
	0xc5, 0x42, // 000A: add F, 0x42
	0xfc, 0x01, // 000C: movi E, 0x01
	0x98, 0xb1, // 000E: movr (EF),F
	0xc4, 0xff, // 0010: add E, 0xFF
	0xfa, 0x06, // 0012: movi C, 0x06
	0xc5, 0xff, // 0014: add F, 0xFF
	0xc2, 0xff, // 0016: add C, 0xFF
	0x20, 0x0a, // 0018: jnz 0014
	0x98, 0xb1, // 001A: movr (EF),F
	0xfe, 0x40, // 001C: movi G, 0x40
	0xff, 0x1c, // 001E: movi H, 0x1C
	0xc7, 0x0c, // 0020: add H, 0x0C
	0xce, 0x00, // 0022: addc G, 0x00
	0x40, 0x00, // 0024: jmp gh
	0x30, 0x13, // 0026: jmp 0026
	0xfe, 0x00, // 0028: movi G, 0x00
	0xff, 0x00, // 002A: movi H, 0x00
	0x98, 0x02, // 002C: movr A,(GH)
	0xfc, 0x01, // 002E: movi E, 0x01
	0xfd, 0x00, // 0030: movi F, 0x00
	0x99, 0x12, // 0032: movr B,(EF)
	0x80, 0x20, // 0034: add A,B,A
	0xc0, 0xaa, // 0036: add A, 0xAA
	0xc6, 0x02, // 0038: add G, 0x02
	0x9f, 0x00, // 003A: movr H,A
	0x98, 0xe1, // 003C: movr (GH),H
	0xfc, 0x40, // 003E: movi E, 0x40
	0xfd, 0x01, // 0040: movi F, 0x01
	0x99, 0x12, // 0042: movr B,(EF)
	0xc1, 0x77, // 0044: add B, 0x77
	0xc6, 0x01, // 0046: add G, 0x01
	0x98, 0x21, // 0048: movr (GH),B
	0x30, 0x25, // 004A: jmp 004A
}

// Magic is the content of the first four bytes of the working store after
// DJ8Program has run.
var Magic = []uint8("DJ8!")

// BytebeatPrefix is the start of the output sequence produced by the device
// in capture mode.
var BytebeatPrefix = []uint8{0, 0, 1, 1, 2}

// LoadImage reads a program image from a file. The file is a flat list of
// bytes with no header.
func LoadImage(filename string) ([]uint8, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "fixtures")
	}
	if len(data) == 0 {
		return nil, errors.Errorf("fixtures: empty image (%s)", filename)
	}
	logger.Logf(logger.Allow, "fixtures", "loaded %d byte image from %s", len(data), filename)
	return data, nil
}

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

package dut

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/hardware/pins"
)

// Trace is a recording of the device outputs after every active clock edge,
// keyed by the mode select value latched when reset was released.
//
// The text format is line based. A line beginning with '#' is a comment. A
// line "mode XX" starts a new section for mode select XX. Every other line
// holds the UO and UIO lines as two hex values:
//
//	# trace recorded from the external memory phase
//	mode 00
//	c0 00
//	c0 01
type Trace map[uint8][]pins.Outputs

// MalformedTrace is the pattern for errors in the text format of a trace.
const MalformedTrace = "trace: line %d: %v"

// ReadTrace parses a trace from the reader.
func ReadTrace(r io.Reader) (Trace, error) {
	tr := make(Trace)

	var mode uint8
	var inSection bool

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		f := strings.Fields(s)
		if len(f) != 2 {
			return nil, curated.Errorf(MalformedTrace, line, "expected two fields")
		}

		if f[0] == "mode" {
			v, err := strconv.ParseUint(f[1], 16, 8)
			if err != nil {
				return nil, curated.Errorf(MalformedTrace, line, err)
			}
			mode = uint8(v)
			inSection = true
			if _, ok := tr[mode]; !ok {
				tr[mode] = make([]pins.Outputs, 0)
			}
			continue
		}

		if !inSection {
			return nil, curated.Errorf(MalformedTrace, line, "outputs before first mode")
		}

		uo, err := strconv.ParseUint(f[0], 16, 8)
		if err != nil {
			return nil, curated.Errorf(MalformedTrace, line, err)
		}
		uio, err := strconv.ParseUint(f[1], 16, 8)
		if err != nil {
			return nil, curated.Errorf(MalformedTrace, line, err)
		}

		tr[mode] = append(tr[mode], pins.Outputs{UO: uint8(uo), UIO: uint8(uio)})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "trace")
	}

	return tr, nil
}

// Write the trace in the text format. Sections are written in order of mode.
func (tr Trace) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, mode := range slices.Sorted(maps.Keys(tr)) {
		fmt.Fprintf(bw, "mode %02x\n", mode)
		for _, o := range tr[mode] {
			fmt.Fprintf(bw, "%02x %02x\n", o.UO, o.UIO)
		}
	}
	return errors.Wrap(bw.Flush(), "trace")
}

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

package replay_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/dut/replay"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/test"
)

const trace = `# two writes
mode 00
00 00
81 44
mode 60
3f 00
bf 02
`

func TestReplay(t *testing.T) {
	tr, err := dut.ReadTrace(strings.NewReader(trace))
	test.DemandSuccess(t, err)

	dev := replay.NewDevice(tr)
	dev.SetReset(true)
	dev.SetInput(0x60)
	dev.SetReset(false)
	test.ExpectEquality(t, dev.Remaining(), 2)

	dev.SetClock(true)
	test.ExpectEquality(t, dev.Outputs(), pins.Outputs{UO: 0x3f, UIO: 0x00})

	// clock high again is not an edge
	dev.SetClock(true)
	test.ExpectEquality(t, dev.Outputs(), pins.Outputs{UO: 0x3f, UIO: 0x00})

	dev.SetClock(false)
	dev.SetClock(true)
	test.ExpectEquality(t, dev.Outputs(), pins.Outputs{UO: 0xbf, UIO: 0x02})

	// final outputs are held
	dev.SetClock(false)
	dev.SetClock(true)
	test.ExpectEquality(t, dev.Outputs(), pins.Outputs{UO: 0xbf, UIO: 0x02})
	test.ExpectEquality(t, dev.Remaining(), 0)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trace.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(trace), 0644))

	dev, err := replay.Load(fn)
	test.DemandSuccess(t, err)

	dev.SetReset(true)
	dev.SetInput(0x00)
	dev.SetReset(false)
	test.ExpectEquality(t, dev.Remaining(), 2)

	_, err = replay.Load(filepath.Join(t.TempDir(), "missing.txt"))
	test.ExpectFailure(t, err)
}

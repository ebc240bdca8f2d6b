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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dvxf/tt06-dj8/test"
)

func TestRunDefault(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{}, out), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "3 phases in"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "external memory (external)"))
}

func TestRecordAndReplay(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "dj8.trace")
	wav := filepath.Join(dir, "bytebeat.wav")
	dump := filepath.Join(dir, "result.dot")

	out := &strings.Builder{}
	test.DemandEquality(t, launch([]string{"RUN", "-record", trace, "-wav", wav}, out), exitOK)

	_, err := os.Stat(wav)
	test.ExpectSuccess(t, err)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"-trace", trace, "-memviz", dump}, out), exitOK)

	_, err = os.Stat(dump)
	test.ExpectSuccess(t, err)
}

func TestRecordError(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "missing", "dj8.trace")

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-record", trace}, out), exitMode)
	test.ExpectSuccess(t, strings.Contains(out.String(), "error in RUN mode: record: "))
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "nop.bin")
	test.DemandSuccess(t, os.WriteFile(image, []uint8{0xea}, 0o644))

	// an image file that can't be found is an error of the mode
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"run", "-image", filepath.Join(dir, "missing.bin")}, out), exitMode)

	// the single byte image is served but the demo device still writes the
	// magic bytes. an impossible expectation from a plan fails the run
	lua := filepath.Join(dir, "plan.lua")
	test.DemandSuccess(t, os.WriteFile(lua, []byte(`
phases = {
	{
		name = "impossible",
		reset = { hold_ns = 1000, select = pins.external, settle_ns = 1000 },
		waveform = { preset = "symmetric", ns = 1000 },
		segments = { { select = pins.external, cycles = 100 } },
		expect_store = "XXXX",
	},
}`), 0o644))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"-image", image, "-plan", lua}, out), exitFail)
	test.ExpectSuccess(t, strings.Contains(out.String(), "working store mismatch"))
}

func TestMap(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"map"}, out), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "4000 -> 404b\tImage"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"map", "-policy", "mirrored"}, out), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "0000 -> 004b\tImage"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"map", "-policy", "banked"}, out), exitMode)
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"version"}, out), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "tt06-dj8 "))
}

func TestArgs(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-help"}, out), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: RUN, MAP, VERSION"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "extra"}, out), exitMode)
}
